package middleware

import (
	"log/slog"
	"slices"

	"hotel-booking-core/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	// the request id header is always allowed and exposed
	expose := cfg.ExposeHeaders
	if !slices.Contains(expose, RequestIDHeader) {
		expose = append(slices.Clone(expose), RequestIDHeader)
	}
	allow := cfg.AllowHeaders
	if !slices.Contains(allow, RequestIDHeader) {
		allow = append(slices.Clone(allow), RequestIDHeader)
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allow,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "expose_headers", expose)
	return cors.New(corsCfg)
}
