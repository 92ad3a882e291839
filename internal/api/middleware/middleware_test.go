package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"driver-planning-backend/internal/config"
	"driver-planning-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	return router
}

func TestRequestID(t *testing.T) {
	router := newRouter(RequestID())
	var seenID, seenUser interface{}
	router.GET("/", func(c *gin.Context) {
		seenID = c.Request.Context().Value(logger.RequestIDKey)
		seenUser = c.Request.Context().Value(logger.UserKey)
		c.Status(http.StatusOK)
	})

	t.Run("generates an id", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, recorder.Header().Get(RequestIDHeader))
		assert.Equal(t, recorder.Header().Get(RequestIDHeader), seenID)
		assert.Nil(t, seenUser)
	})

	t.Run("keeps the caller id and user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		req.Header.Set(UserHeader, "dispatcher")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, "abc-123", recorder.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", seenID)
		assert.Equal(t, "dispatcher", seenUser)
	})
}

func TestRecovery(t *testing.T) {
	router := newRouter(Recovery())
	router.GET("/", func(c *gin.Context) { panic("boom") })

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, recorder.Body.String())
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"https://planning.example.org"}}
	router := newRouter(CORS(cfg))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://planning.example.org")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, "https://planning.example.org", recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://elsewhere.example.org")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://planning.example.org")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}
