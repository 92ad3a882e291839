package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "recurrence"}
		assert.Equal(t, "recurrence not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "planning"}
		err2 := &NotFoundError{Entity: "planning"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrPlanningNotFound, ErrRecurrenceNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("modify recurrence 4: %w", ErrRecurrenceNotFound)
		assert.True(t, errors.Is(wrapped, ErrRecurrenceNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrDriverNotFound))
		assert.False(t, IsNotFound(ErrNoTemplateFound))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "driver already exists with this name", ErrDriverExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "driver"}
		assert.Equal(t, "driver already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrDriverExists))
		assert.False(t, IsAlreadyExists(ErrDriverNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := NewValidationError("date", "must be dd/MM/yyyy")
		assert.Equal(t, "validation error: date - must be dd/MM/yyyy", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := NewValidationError("", "bad input")
		assert.Equal(t, "validation error: bad input", err.Error())
	})

	t.Run("invalid pattern is a validation error", func(t *testing.T) {
		wrapped := fmt.Errorf("create recurrence: %w", ErrInvalidPattern)
		assert.True(t, IsValidation(wrapped))
		assert.True(t, errors.Is(wrapped, ErrInvalidPattern))
	})
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")

	t.Run("wraps the cause", func(t *testing.T) {
		err := NewStoreError("insert plannings", cause)
		assert.Equal(t, "store: insert plannings: connection refused", err.Error())
		assert.True(t, errors.Is(err, cause))
		assert.True(t, IsStore(fmt.Errorf("add planning: %w", err)))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, NewStoreError("noop", nil))
	})

	t.Run("IsStore helper", func(t *testing.T) {
		assert.False(t, IsStore(ErrPlanningNotFound))
	})
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("TIMEZONE is invalid")
	assert.Equal(t, "TIMEZONE is invalid", err.Error())
	assert.True(t, IsConfiguration(err))
}
