package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the error body of every JSON route.
type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"error"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// Abort writes the error and stops the middleware chain.
func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// Business writes be with its own status.
func Business(c *gin.Context, be BusinessError, message string) {
	status := be.Status
	if status == 0 {
		status = http.StatusBadRequest
	}
	Write(c, status, be.Code, message)
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func PayloadTooLarge(c *gin.Context, code, message string) {
	Write(c, http.StatusRequestEntityTooLarge, code, message)
}

// Internal never leaks error details; callers log them.
func Internal(c *gin.Context) {
	Write(c, http.StatusInternalServerError, "internal_error", "Error interno")
}
