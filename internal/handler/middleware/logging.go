package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"hotel-booking-core/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// LoggingMiddleware assigns the request id and logs one line when the request
// starts and one when it completes.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := requestIDFrom(c)
		c.Set(httperr.RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		attrs := requestAttrs(c, requestID)
		l.logger.LogAttrs(c.Request.Context(), slog.LevelDebug, "Request started", attrs...)

		c.Next()

		status := c.Writer.Status()
		attrs = append(attrs,
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
		)
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}
		l.logger.LogAttrs(c.Request.Context(), completionLevel(status), "Request completed", attrs...)
	}
}

// route and booking/room id are only known after routing, which gin has done
// before the middleware chain runs.
func requestAttrs(c *gin.Context, requestID string) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("request_id", requestID),
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("client_ip", c.ClientIP()),
	}
	if route := c.FullPath(); route != "" {
		attrs = append(attrs, slog.String("route", route))
	}
	if id := c.Param("id"); id != "" {
		attrs = append(attrs, slog.String("resource_id", id))
	}
	return attrs
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// requestIDFrom reuses a well-formed incoming id and mints one otherwise.
func requestIDFrom(c *gin.Context) string {
	if incoming := c.GetHeader(RequestIDHeader); incoming != "" {
		if id, err := uuid.Parse(incoming); err == nil {
			return id.String()
		}
	}
	return uuid.NewString()
}
