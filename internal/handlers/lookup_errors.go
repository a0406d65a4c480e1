package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/mapa-clientes/internal/domain/client"
	"github.com/BruksfildServices01/mapa-clientes/internal/dto"
	"github.com/BruksfildServices01/mapa-clientes/internal/httperr"
)

// lookupMessages holds the user-facing text of the input errors, which
// differs per route family.
type lookupMessages struct {
	missingParams string
	emptyList     string
}

func (m lookupMessages) text(code string) string {
	switch code {
	case domain.CodeMissingParams:
		return m.missingParams
	case domain.CodeEmptyList:
		return m.emptyList
	case domain.CodeTooManyCodes:
		return fmt.Sprintf("Demasiados clientes. Máximo: %d", domain.MaxBulkCodes)
	case domain.CodeNotFound:
		return "Cliente no encontrado"
	}
	return code
}

// writeLookupError maps lookup outcomes onto the HTTP contract. Business
// errors carry their own status; anything else is a logged 500.
func writeLookupError(c *gin.Context, err error, msg lookupMessages) {
	if ue, ok := domain.AsUnmappable(err); ok {
		writeUnmappable(c, ue)
		return
	}

	if be, ok := httperr.AsBusiness(err); ok {
		httperr.Business(c, be, msg.text(be.Code))
		return
	}

	zap.L().Error("lookup failed",
		zap.String("path", c.FullPath()),
		zap.Error(err))
	_ = c.Error(err)
	httperr.Internal(c)
}

func writeUnmappable(c *gin.Context, ue *domain.UnmappableError) {
	const msg = "Cliente sin coordenadas válidas"

	if ue.Generation == domain.Legacy {
		c.JSON(http.StatusUnprocessableEntity, dto.LegacyUnmappableDTO{
			Error:  msg,
			Code:   domain.CodeUnmappable,
			Codigo: ue.Key.Code,
		})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, dto.UnmappableDTO{
		Error:   msg,
		Code:    domain.CodeUnmappable,
		CD:      ue.Key.CD,
		Cliente: ue.Key.Code,
	})
}
