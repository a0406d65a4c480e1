package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/mapa-clientes/internal/dto"
	"github.com/BruksfildServices01/mapa-clientes/internal/httperr"
	"github.com/BruksfildServices01/mapa-clientes/internal/httpresp"
	"github.com/BruksfildServices01/mapa-clientes/internal/middleware"
	ucClient "github.com/BruksfildServices01/mapa-clientes/internal/usecase/client"
)

// ======================================================
// HANDLER
// ======================================================

// ClientHandler serves both API generations: the partitioned one keyed by
// (cd, cliente) and the legacy one keyed by codigo.
type ClientHandler struct {
	findPartitioned *ucClient.FindClient
	bulkPartitioned *ucClient.FindClients
	findLegacy      *ucClient.FindClient
	bulkLegacy      *ucClient.FindClients
}

func NewClientHandler(
	findPartitioned *ucClient.FindClient,
	bulkPartitioned *ucClient.FindClients,
	findLegacy *ucClient.FindClient,
	bulkLegacy *ucClient.FindClients,
) *ClientHandler {
	return &ClientHandler{
		findPartitioned: findPartitioned,
		bulkPartitioned: bulkPartitioned,
		findLegacy:      findLegacy,
		bulkLegacy:      bulkLegacy,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PorClientesRequest struct {
	CD       string `json:"cd"`
	Clientes []any  `json:"clientes"`
}

type PorCodigosRequest struct {
	Codigos []any `json:"codigos"`
}

// ======================================================
// SINGLE LOOKUPS
// ======================================================

// Buscar handles GET /clientes/buscar?cd=&cliente=.
func (h *ClientHandler) Buscar(c *gin.Context) {
	loc, err := h.findPartitioned.Execute(c.Request.Context(), ucClient.Query{
		CD:   c.Query("cd"),
		Code: c.Query("cliente"),
	})
	if err != nil {
		writeLookupError(c, err, lookupMessages{
			missingParams: "Se requiere ?cd=...&cliente=...",
		})
		return
	}

	httpresp.OK(c, dto.NewClientDTO(loc.Record, loc.Lat, loc.Lng))
}

// ByCodigo handles GET /clientes/:codigo.
func (h *ClientHandler) ByCodigo(c *gin.Context) {
	loc, err := h.findLegacy.Execute(c.Request.Context(), ucClient.Query{
		Code: c.Param("codigo"),
	})
	if err != nil {
		writeLookupError(c, err, lookupMessages{
			missingParams: "Código requerido",
		})
		return
	}

	httpresp.OK(c, dto.NewLegacyClientDTO(loc.Record, loc.Lat, loc.Lng))
}

// ======================================================
// BULK LOOKUPS
// ======================================================

// PorClientes handles POST /clientes/por-clientes.
func (h *ClientHandler) PorClientes(c *gin.Context) {
	var req PorClientesRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.bulkPartitioned.Execute(c.Request.Context(), ucClient.BulkQuery{
		CD:    req.CD,
		Codes: req.Clientes,
	})
	if err != nil {
		writeLookupError(c, err, lookupMessages{
			missingParams: "Se requiere { cd }",
			emptyList:     "Se requiere { clientes: [] }",
		})
		return
	}

	out := dto.ClientBulkDTO{
		CD:               res.CD,
		TotalSolicitados: res.Requested,
		TotalEncontrados: res.Found,
		TotalMostrables:  res.RenderableCount(),
		NoEncontrados:    res.NotFound,
		SinCoordenadas:   res.Unmappable,
		Clientes:         make([]dto.ClientDTO, 0, len(res.Renderable)),
	}
	for _, loc := range res.Renderable {
		out.Clientes = append(out.Clientes, dto.NewClientDTO(loc.Record, loc.Lat, loc.Lng))
	}

	httpresp.OK(c, out)
}

// PorCodigos handles POST /clientes/por-codigos.
func (h *ClientHandler) PorCodigos(c *gin.Context) {
	var req PorCodigosRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.bulkLegacy.Execute(c.Request.Context(), ucClient.BulkQuery{
		Codes: req.Codigos,
	})
	if err != nil {
		writeLookupError(c, err, lookupMessages{
			emptyList: "Se requiere { codigos: [] }",
		})
		return
	}

	out := dto.LegacyBulkDTO{
		TotalSolicitados: res.Requested,
		TotalEncontrados: res.Found,
		TotalMostrables:  res.RenderableCount(),
		NoEncontrados:    res.NotFound,
		SinCoordenadas:   res.Unmappable,
		Clientes:         make([]dto.LegacyClientDTO, 0, len(res.Renderable)),
	}
	for _, loc := range res.Renderable {
		out.Clientes = append(out.Clientes, dto.NewLegacyClientDTO(loc.Record, loc.Lat, loc.Lng))
	}

	httpresp.OK(c, out)
}

// ======================================================
// HELPERS
// ======================================================

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if middleware.IsBodyTooLarge(err) {
			httperr.PayloadTooLarge(c, middleware.CodeBodyTooLarge, "Cuerpo de la solicitud demasiado grande")
			return false
		}
		httperr.BadRequest(c, "invalid_request", "JSON inválido")
		return false
	}
	return true
}
