package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/mapa-clientes/internal/httperr"
)

const CodeBodyTooLarge = "body_too_large"

// BodyLimit caps request bodies at limit bytes. Requests that declare a
// larger body are rejected up front; the rest fail when the handler reads
// past the limit (see IsBodyTooLarge).
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}

		if c.Request.ContentLength > limit {
			httperr.Abort(c, http.StatusRequestEntityTooLarge, CodeBodyTooLarge, "Cuerpo de la solicitud demasiado grande")
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

func IsBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
