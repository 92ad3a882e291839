package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"driver-planning-backend/internal/api/handlers"
	"driver-planning-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	t.Run("live", func(t *testing.T) {
		h := testutils.SetupHTTPTest()
		h.Router.GET("/health/live", handlers.NewHealthHandler(nil, nil).Live)

		testutils.AssertStatus(t, h.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK)
	})

	t.Run("unhealthy without database", func(t *testing.T) {
		h := testutils.SetupHTTPTest()
		archive := pingerFunc(func(context.Context) error { return errors.New("locked") })
		h.Router.GET("/health", handlers.NewHealthHandler(nil, archive).Health)

		var got handlers.HealthResponse
		testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &got)
		assert.Equal(t, "unhealthy", got.Status)
		assert.Equal(t, "error: not configured", got.Services["database"])
		assert.Equal(t, "error: locked", got.Services["archive"])
	})
}
