package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope for all failure responses. Success bodies are
// the plain JSON shapes of each endpoint; only errors are wrapped, since the
// status code is the binding contract.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error writes an error response with the given status code.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// BadRequest writes a 400 error.
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// NotFound writes a 404 error.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	Error(c, 404, message)
}

// UnprocessableEntity writes a 422 error for malformed parameters or bodies.
func UnprocessableEntity(c *gin.Context, message string) {
	Error(c, 422, message)
}

// InternalServerError writes a 500 error.
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	Error(c, 500, message)
}
