package main

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"driver-planning-backend/internal/api/routes"
	"driver-planning-backend/internal/archive"
	"driver-planning-backend/internal/cache"
	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/config"
	"driver-planning-backend/internal/database"
	"driver-planning-backend/internal/metrics"
	"driver-planning-backend/internal/repository"
	"driver-planning-backend/internal/service"
)

// app holds the wired dependencies shared by every command
type app struct {
	cfg      *config.Config
	db       *gorm.DB
	archive  *archive.Store
	clock    *calendar.SystemClock
	registry *prometheus.Registry

	plannings   *service.PlanningService
	drivers     *service.DriverService
	notes       *service.NoteService
	calendar    *service.CalendarService
	archiver    *service.ArchiveService
	maintenance *service.StartupRunner
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	clock, err := calendar.NewSystemClock(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	store, err := archive.Open(ctx, cfg.ArchiveDatabasePath)
	if err != nil {
		closeDB(db)
		return nil, err
	}

	a := &app{cfg: cfg, db: db, archive: store, clock: clock}

	var recorder metrics.Recorder = metrics.Nop{}
	if cfg.MetricsEnabled {
		a.registry = prometheus.NewRegistry()
		a.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		prom, err := metrics.NewPromRecorder(a.registry)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		recorder = prom
	}

	validate := validator.New()
	planningCache := cache.NewMemoryCache()

	planningRepo := repository.NewPlanningRepository(db)
	recurrenceRepo := repository.NewRecurrenceRepository(db)
	excludedRepo := repository.NewExcludedDayRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	recurrences := service.NewRecurrenceService(recurrenceRepo, excludedRepo, planningRepo, clock, recorder)
	reconciler := service.NewReconcilerService(recurrenceRepo, planningRepo, recurrences, recorder)

	a.drivers = service.NewDriverService(driverRepo, validate)
	a.notes = service.NewNoteService(noteRepo, clock)
	a.plannings = service.NewPlanningService(planningRepo, recurrenceRepo, driverRepo, recurrences, planningCache, clock, validate, recorder).
		WithArchive(store)
	a.calendar = service.NewCalendarService(planningRepo, a.drivers, clock, clock.Location)
	a.archiver = service.NewArchiveService(planningRepo, store, clock, cfg.ArchiveRetentionDays, recorder)
	a.maintenance = service.NewStartupRunner(recurrences, reconciler, planningCache)

	return a, nil
}

func (a *app) services() *routes.Services {
	svc := &routes.Services{
		Plannings:   a.plannings,
		Drivers:     a.drivers,
		Notes:       a.notes,
		Calendar:    a.calendar,
		Maintenance: a.maintenance,
		Archive:     a.archiver,
		ArchivePing: a.archive,
	}
	if a.registry != nil {
		svc.Gatherer = a.registry
	}
	return svc
}

// Close releases both databases
func (a *app) Close() {
	if a.archive != nil {
		if err := a.archive.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close archive database")
		}
	}
	closeDB(a.db)
}

func closeDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}
}
