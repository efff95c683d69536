package api

import (
	"context"
	"net/http"
	"time"

	"hotel-booking-core/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

const healthTimeout = 2 * time.Second

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(pool *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{db: pool}
}

func NewHealthHandlerWithPinger(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// @Summary Health check
// @Description Reports whether the service can reach PostgreSQL
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} httperr.Response
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Database unavailable", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
