package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"driver-planning-backend/internal/cache"
	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/config"
	"driver-planning-backend/internal/database"
	"driver-planning-backend/internal/recurrence"
	"driver-planning-backend/internal/repository"
	"driver-planning-backend/internal/service"
)

// Simple structures that match the YAML seed files
type DriverData struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type PlanningData struct {
	Driver       string `yaml:"driver"`
	Date         string `yaml:"date"`
	ClientName   string `yaml:"client_name"`
	StartTime    string `yaml:"start_time"`
	ReturnTime   string `yaml:"return_time"`
	Note         string `yaml:"note,omitempty"`
	Destination  string `yaml:"destination"`
	LongDistance bool   `yaml:"long_distance"`
	Frequency    []int  `yaml:"frequency,omitempty"`
}

type DriversFile struct {
	Drivers []DriverData `yaml:"drivers"`
}

type PlanningsFile struct {
	Plannings []PlanningData `yaml:"plannings"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	clock, err := calendar.NewSystemClock(cfg.Timezone)
	if err != nil {
		log.Fatalf("Invalid timezone: %v", err)
	}

	if err := loadDataFromYAMLFiles(context.Background(), db, clock, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(ctx context.Context, db *gorm.DB, clock calendar.Clock, dataDir string) error {
	var driversFile DriversFile
	if err := loadYAML(dataDir, "drivers", func(data []byte) error {
		var file DriversFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		driversFile.Drivers = append(driversFile.Drivers, file.Drivers...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load drivers: %w", err)
	}

	var planningsFile PlanningsFile
	if err := loadYAML(dataDir, "plannings", func(data []byte) error {
		var file PlanningsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		planningsFile.Plannings = append(planningsFile.Plannings, file.Plannings...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load plannings: %w", err)
	}

	validate := validator.New()
	planningRepo := repository.NewPlanningRepository(db)
	recurrenceRepo := repository.NewRecurrenceRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	recurrences := service.NewRecurrenceService(recurrenceRepo, repository.NewExcludedDayRepository(db), planningRepo, clock, nil)
	drivers := service.NewDriverService(driverRepo, validate)
	plannings := service.NewPlanningService(planningRepo, recurrenceRepo, driverRepo, recurrences, cache.NewMemoryCache(), clock, validate, nil)

	// Drivers first, plannings reference them by name
	driverIDs := make(map[string]uint)
	driverCreated := 0
	for _, d := range driversFile.Drivers {
		if existing, err := driverRepo.GetByName(ctx, d.Name); err == nil {
			driverIDs[d.Name] = existing.ID
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to query driver %s: %w", d.Name, err)
		}
		driver, err := drivers.Create(ctx, &service.DriverRequest{Name: d.Name, Color: d.Color})
		if err != nil {
			return fmt.Errorf("failed to create driver %s: %w", d.Name, err)
		}
		driverIDs[d.Name] = driver.ID
		driverCreated++
	}
	log.Printf("📋 Drivers: %d created, %d total", driverCreated, len(driversFile.Drivers))

	items := make([]service.CreatePlanningRequest, 0, len(planningsFile.Plannings))
	for _, p := range planningsFile.Plannings {
		driverID, ok := driverIDs[p.Driver]
		if !ok {
			log.Printf("⚠️  Warning: driver %s not found for planning of %s", p.Driver, p.ClientName)
			continue
		}
		date, err := calendar.Parse(p.Date)
		if err != nil {
			log.Printf("⚠️  Warning: invalid date %q for planning of %s", p.Date, p.ClientName)
			continue
		}
		items = append(items, service.CreatePlanningRequest{
			DriverID:     driverID,
			Date:         date,
			ClientName:   p.ClientName,
			StartTime:    p.StartTime,
			ReturnTime:   p.ReturnTime,
			Note:         p.Note,
			Destination:  p.Destination,
			LongDistance: p.LongDistance,
			Frequency:    recurrence.Pattern(p.Frequency),
		})
	}

	result := plannings.AddPlanning(ctx, items)
	for _, failed := range result.Failed {
		log.Printf("⚠️  Warning: failed to create planning of %s: %s", failed.Request.ClientName, failed.Error)
	}
	log.Printf("📋 Plannings: %d created, %d total", len(result.Success), len(planningsFile.Plannings))

	return nil
}

// loadYAML calls fn with the content of every .yaml file under dataDir whose path contains kind
func loadYAML(dataDir, kind string, fn func([]byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(path, kind) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return fn(data)
	})
}
