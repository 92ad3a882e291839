package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "driver-planning-backend/internal/errors"
)

func validConfig() *Config {
	return &Config{
		Environment:          "development",
		DatabaseName:         "driver_planning",
		Timezone:             "Europe/Paris",
		ArchiveRetentionDays: 30,
		MaintenanceCron:      "25 3 * * *",
	}
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, validate(validConfig()))
	})

	t.Run("unknown timezone", func(t *testing.T) {
		cfg := validConfig()
		cfg.Timezone = "Mars/Olympus"
		err := validate(cfg)
		assert.Error(t, err)
		assert.True(t, apperrors.IsConfiguration(err))
	})

	t.Run("non positive retention", func(t *testing.T) {
		cfg := validConfig()
		cfg.ArchiveRetentionDays = 0
		assert.True(t, apperrors.IsConfiguration(validate(cfg)))
	})

	t.Run("invalid cron expression", func(t *testing.T) {
		cfg := validConfig()
		cfg.MaintenanceCron = "every night"
		assert.True(t, apperrors.IsConfiguration(validate(cfg)))
	})

	t.Run("empty cron disables the schedule", func(t *testing.T) {
		cfg := validConfig()
		cfg.MaintenanceCron = ""
		assert.NoError(t, validate(cfg))
	})
}

func TestBuildDatabaseURL(t *testing.T) {
	cfg := &Config{
		DatabaseUser:     "postgres",
		DatabasePassword: "secret",
		DatabaseHost:     "db",
		DatabasePort:     "5432",
		DatabaseName:     "driver_planning",
		DatabaseSSLMode:  "disable",
	}
	assert.Equal(t, "postgres://postgres:secret@db:5432/driver_planning?sslmode=disable", buildDatabaseURL(cfg))
}

func TestEnvironmentHelpers(t *testing.T) {
	assert.True(t, (&Config{Environment: "development"}).IsDevelopment())
	assert.True(t, (&Config{Environment: "production"}).IsProduction())
	assert.False(t, (&Config{Environment: "production"}).IsDevelopment())
}
