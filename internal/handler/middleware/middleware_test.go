//go:build unit

package middleware_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"hotel-booking-core/internal/handler/httperr"
	"hotel-booking-core/internal/handler/middleware"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewLogger(config.NewTestConfig().Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	return engine
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	engine := newEngine()
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, httperr.RequestID(c))
	})

	t.Run("mints an id when none is sent", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/ping", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		id := rec.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("reuses a valid incoming id", func(t *testing.T) {
		incoming := uuid.NewString()
		rec := httptest.PerformRequestWithHeaders(t, engine, http.MethodGet, "/ping", nil, map[string]string{middleware.RequestIDHeader: incoming})
		assert.Equal(t, incoming, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("replaces a malformed incoming id", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, engine, http.MethodGet, "/ping", nil, map[string]string{middleware.RequestIDHeader: "not-a-uuid"})
		assert.NotEqual(t, "not-a-uuid", rec.Header().Get(middleware.RequestIDHeader))
	})
}

func TestErrorHandling(t *testing.T) {
	engine := newEngine()
	engine.GET("/panic", func(*gin.Context) { panic("boom") })
	engine.GET("/conflict", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errs.New("taken"), "Room is taken", gin.H{"reason": "ALREADY_BOOKED"})
	})
	engine.GET("/private", func(c *gin.Context) {
		_ = c.Error(errs.New("connection reset"))
	})
	engine.GET("/empty", func(*gin.Context) {})

	t.Run("panics become 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/panic", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("public errors keep their detail", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/conflict", nil)
		body := httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Room is taken")
		assert.Equal(t, "ALREADY_BOOKED", body.Detail["reason"])
	})

	t.Run("error bodies carry the request id", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/conflict", nil)
		var body httperr.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.RequestID)
		assert.Equal(t, rec.Header().Get(middleware.RequestIDHeader), body.RequestID)
	})

	t.Run("private errors are not exposed", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/private", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})

	t.Run("handlers writing nothing keep their status", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/empty", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestBodyLimit(t *testing.T) {
	engine := newEngine()
	engine.POST("/echo", middleware.BodyLimit(16), func(c *gin.Context) {
		var body map[string]string
		if err := c.ShouldBindJSON(&body); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
		c.JSON(http.StatusOK, body)
	})

	t.Run("small body passes", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodPost, "/echo", map[string]string{"a": "b"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("large body is rejected", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodPost, "/echo", map[string]string{"a": strings.Repeat("x", 64)})
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}
