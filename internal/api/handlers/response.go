package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"driver-planning-backend/internal/calendar"
	apperrors "driver-planning-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
}

// MessageResponse represents a plain outcome message
type MessageResponse struct {
	Message string `json:"message"`
}

// respondError maps domain errors to HTTP statuses
func respondError(c *gin.Context, message string, err error) {
	var validationErrs validator.ValidationErrors
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsValidation(err), errors.As(err, &validationErrs):
		status = http.StatusBadRequest
	case apperrors.IsAlreadyExists(err), errors.Is(err, apperrors.ErrMaintenanceRunning):
		status = http.StatusConflict
	}
	c.JSON(status, ErrorResponse{Error: message, Details: err.Error()})
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + param})
		return 0, false
	}
	return uint(id), true
}

// dateQuery reads an optional dd/MM/yyyy query parameter; absent means the zero date
func dateQuery(c *gin.Context, key string) (calendar.Date, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return calendar.Date{}, true
	}
	date, err := calendar.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + key, Details: err.Error()})
		return calendar.Date{}, false
	}
	return date, true
}
