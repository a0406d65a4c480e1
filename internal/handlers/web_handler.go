package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/mapa-clientes/internal/domain/client"
	"github.com/BruksfildServices01/mapa-clientes/internal/dto"
	"github.com/BruksfildServices01/mapa-clientes/internal/httperr"
	"github.com/BruksfildServices01/mapa-clientes/internal/middleware"
	"github.com/BruksfildServices01/mapa-clientes/internal/presenter"
	ucClient "github.com/BruksfildServices01/mapa-clientes/internal/usecase/client"
)

const themeMaxAge = 365 * 24 * 60 * 60

// WebHandler serves the map page and the marker endpoints its script calls.
// It works on the partitioned generation.
type WebHandler struct {
	find *ucClient.FindClient
	bulk *ucClient.FindClients
}

func NewWebHandler(find *ucClient.FindClient, bulk *ucClient.FindClients) *WebHandler {
	return &WebHandler{find: find, bulk: bulk}
}

type MarcadoresRequest struct {
	CD    string `json:"cd" form:"cd"`
	Texto string `json:"texto" form:"texto"`
}

type MarcadoresResponse struct {
	presenter.MarkerSet
	Estado         string   `json:"estado"`
	NoEncontrados  []string `json:"noEncontrados"`
	SinCoordenadas []string `json:"sinCoordenadas"`
}

// Page handles GET /.
func (h *WebHandler) Page(c *gin.Context) {
	stored, _ := c.Cookie(presenter.ThemeCookie)

	c.HTML(http.StatusOK, "mapa.html", gin.H{
		"Theme":     presenter.Theme(stored),
		"CDs":       domain.DistributionCenters,
		"DefaultCD": domain.DefaultCenter,
	})
}

// ToggleTheme handles POST /web/tema.
func (h *WebHandler) ToggleTheme(c *gin.Context) {
	stored, _ := c.Cookie(presenter.ThemeCookie)
	next := presenter.ToggleTheme(stored)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(presenter.ThemeCookie, next, themeMaxAge, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"tema": next})
}

// Marcadores handles POST /web/marcadores with either a JSON body
// {cd, texto} or a multipart form carrying cd and an "archivo" file.
func (h *WebHandler) Marcadores(c *gin.Context) {
	req, ok := h.readMarcadores(c)
	if !ok {
		return
	}

	codes := presenter.ParseCodes(req.Texto)
	res, err := h.bulk.Execute(c.Request.Context(), ucClient.BulkQuery{
		CD:    req.CD,
		Codes: domain.Strings(codes),
	})
	if err != nil {
		writeLookupError(c, err, lookupMessages{
			missingParams: "Selecciona un CD",
			emptyList:     "No hay clientes válidos",
		})
		return
	}

	clients := make([]presenter.Client, 0, len(res.Renderable))
	for _, loc := range res.Renderable {
		cl, ok := toPresented(dto.NewClientDTO(loc.Record, loc.Lat, loc.Lng))
		if ok {
			clients = append(clients, cl)
		}
	}

	c.JSON(http.StatusOK, MarcadoresResponse{
		MarkerSet:      presenter.Markers(clients),
		Estado:         presenter.StatusMessage(len(clients), len(res.NotFound), len(res.Unmappable)),
		NoEncontrados:  res.NotFound,
		SinCoordenadas: res.Unmappable,
	})
}

// Cliente handles GET /web/cliente?cd=&cliente=.
func (h *WebHandler) Cliente(c *gin.Context) {
	loc, err := h.find.Execute(c.Request.Context(), ucClient.Query{
		CD:   c.Query("cd"),
		Code: c.Query("cliente"),
	})
	if err != nil {
		writeLookupError(c, err, lookupMessages{
			missingParams: "Se requiere CD y cliente",
		})
		return
	}

	cl, ok := toPresented(dto.NewClientDTO(loc.Record, loc.Lat, loc.Lng))
	if !ok {
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, MarcadoresResponse{
		MarkerSet:      presenter.Markers([]presenter.Client{cl}),
		Estado:         "Cliente encontrado",
		NoEncontrados:  []string{},
		SinCoordenadas: []string{},
	})
}

func (h *WebHandler) readMarcadores(c *gin.Context) (MarcadoresRequest, bool) {
	var req MarcadoresRequest

	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return req, bindJSON(c, &req)
	}

	if err := c.ShouldBind(&req); err != nil {
		if middleware.IsBodyTooLarge(err) {
			httperr.PayloadTooLarge(c, middleware.CodeBodyTooLarge, "Archivo demasiado grande")
			return req, false
		}
		httperr.BadRequest(c, "invalid_request", "Formulario inválido")
		return req, false
	}

	fh, err := c.FormFile("archivo")
	if err != nil {
		if req.Texto != "" {
			return req, true
		}
		httperr.BadRequest(c, "missing_file", "Selecciona un archivo .txt o .csv")
		return req, false
	}

	f, err := fh.Open()
	if err != nil {
		zap.L().Warn("upload not readable", zap.Error(err))
		httperr.BadRequest(c, "invalid_file", "Error leyendo el archivo")
		return req, false
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Error leyendo el archivo")
		return req, false
	}
	req.Texto = string(raw)
	return req, true
}

func toPresented(v dto.ClientDTO) (presenter.Client, bool) {
	m, err := presenter.ToMap(v)
	if err != nil {
		zap.L().Error("client not presentable", zap.Error(err))
		return presenter.Client{}, false
	}
	return presenter.Normalize(m)
}
