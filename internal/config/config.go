package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"

	apperrors "driver-planning-backend/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Planning calendar
	Timezone string `mapstructure:"TIMEZONE"`

	// Archive of old plannings
	ArchiveDatabasePath  string `mapstructure:"ARCHIVE_DATABASE_PATH"`
	ArchiveRetentionDays int    `mapstructure:"ARCHIVE_RETENTION_DAYS"`

	// Maintenance
	MaintenanceCron  string `mapstructure:"MAINTENANCE_CRON"`
	StartupReconcile bool   `mapstructure:"STARTUP_RECONCILE"`

	// Metrics
	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "driver_planning")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	viper.SetDefault("TIMEZONE", "Europe/Paris")

	viper.SetDefault("ARCHIVE_DATABASE_PATH", "archive.db")
	viper.SetDefault("ARCHIVE_RETENTION_DAYS", 30)

	// Every night at 03:25 local time
	viper.SetDefault("MAINTENANCE_CRON", "25 3 * * *")
	viper.SetDefault("STARTUP_RECONCILE", true)

	viper.SetDefault("METRICS_ENABLED", true)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" && config.DatabaseURL == "" {
		return apperrors.NewConfigurationError("database name is required")
	}

	if _, err := time.LoadLocation(config.Timezone); err != nil {
		return apperrors.NewConfigurationError(fmt.Sprintf("TIMEZONE %q is not a known location", config.Timezone))
	}

	if config.ArchiveRetentionDays <= 0 {
		return apperrors.NewConfigurationError("ARCHIVE_RETENTION_DAYS must be positive")
	}

	if config.MaintenanceCron != "" {
		if _, err := cron.ParseStandard(config.MaintenanceCron); err != nil {
			return apperrors.NewConfigurationError(fmt.Sprintf("MAINTENANCE_CRON %q is invalid: %v", config.MaintenanceCron, err))
		}
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
