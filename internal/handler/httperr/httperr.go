// Package httperr defines the JSON error body shared by handlers and middleware.
package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the current request id.
const RequestIDKey = "request_id"

type Message struct {
	Message string `json:"message"`
}

// Response is rendered as {"error":{"message"}, "detail", "request_id"}.
type Response struct {
	Status    int     `json:"-"`
	Error     Message `json:"error"`
	Detail    any     `json:"detail,omitempty"`
	RequestID string  `json:"request_id,omitempty"`
}

func NewResponse(c *gin.Context, status int, msg string, detail any) Response {
	return Response{
		Status:    status,
		Error:     Message{Message: msg},
		Detail:    detail,
		RequestID: RequestID(c),
	}
}

// InternalError is the body used when nothing more specific is known.
func InternalError(c *gin.Context) Response {
	return NewResponse(c, http.StatusInternalServerError, "Internal server error", nil)
}

// AbortWithError records err on the context for logging and writes the public
// response. err is never exposed to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr.AbortWithError: nil error")
	}

	resp := NewResponse(c, status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
