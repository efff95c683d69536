//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"hotel-booking-core/internal/handler/api"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name       string
		ping       pingerFunc
		expectCode int
	}{
		{
			name:       "database reachable",
			ping:       func(context.Context) error { return nil },
			expectCode: http.StatusOK,
		},
		{
			name:       "database down",
			ping:       func(context.Context) error { return errs.New("connection refused") },
			expectCode: http.StatusServiceUnavailable,
		},
		{
			name: "ping gets a deadline",
			ping: func(ctx context.Context) error {
				if _, ok := ctx.Deadline(); !ok {
					return errs.New("no deadline")
				}
				return nil
			},
			expectCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/health", api.NewHealthHandlerWithPinger(tc.ping).Health)

			rec := httptest.PerformRequest(t, engine, http.MethodGet, "/health", nil)

			assert.Equal(t, tc.expectCode, rec.Code)
			if tc.expectCode != http.StatusOK {
				httptest.AssertErrorResponse(t, rec, tc.expectCode, "Database unavailable")
			}
		})
	}
}
