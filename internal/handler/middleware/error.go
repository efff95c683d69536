package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"hotel-booking-core/internal/handler/httperr"
	"hotel-booking-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const panicStackLines = 16

// ErrorHandler renders the most recent public error when a handler recorded
// one without writing a body itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if last := c.Errors.ByType(gin.ErrorTypePublic).Last(); last != nil {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		switch status := c.Writer.Status(); {
		case len(c.Errors) == 0 && status != http.StatusOK:
			c.Status(status)
			c.Writer.WriteHeaderNow()
		case len(c.Errors) > 0:
			c.JSON(http.StatusInternalServerError, httperr.InternalError(c))
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			// created here so the recorded stack includes the panicking frames
			err := errs.Newf("panic: %s", fmt.Sprint(rec))
			slog.Error("recovered from panic",
				slog.String("error", err.Error()),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("request_id", httperr.RequestID(c)),
				slog.Any("stack", errs.ExtractStackLines(err, panicStackLines)),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.InternalError(c))
		}()
		c.Next()
	}
}
