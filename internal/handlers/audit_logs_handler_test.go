package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/mapa-clientes/internal/audit"
	"github.com/BruksfildServices01/mapa-clientes/internal/models"
	"github.com/BruksfildServices01/mapa-clientes/internal/timezone"
)

type fakeAuditLister struct {
	got  audit.Filter
	logs []models.AuditLog
	err  error
}

func (f *fakeAuditLister) List(_ context.Context, flt audit.Filter) ([]models.AuditLog, int64, error) {
	f.got = flt
	return f.logs, int64(len(f.logs)), f.err
}

func auditRouter(store AuditLister) *gin.Engine {
	r := gin.New()
	r.GET("/debug/auditoria", NewAuditLogsHandler(store, timezone.DefaultTimezone).List)
	return r
}

func TestAuditLogs_Filters(t *testing.T) {
	store := &fakeAuditLister{logs: []models.AuditLog{{Action: audit.ActionClientNotFound, CD: "AV46", Code: "1001"}}}
	r := auditRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/debug/auditoria?page=3&limit=10&action=client_not_found&schema=cd&cd=AV46&from=2026-01-01&to=2026-01-31", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 3, body["page"])
	assert.EqualValues(t, 10, body["limit"])
	assert.EqualValues(t, 1, body["total"])
	assert.Len(t, body["data"], 1)

	assert.Equal(t, 20, store.got.Offset)
	assert.Equal(t, 10, store.got.Limit)
	assert.Equal(t, "client_not_found", store.got.Action)
	assert.Equal(t, "cd", store.got.Generation)
	assert.Equal(t, "AV46", store.got.CD)

	loc := timezone.Location(timezone.DefaultTimezone)
	require.NotNil(t, store.got.From)
	require.NotNil(t, store.got.To)
	assert.True(t, store.got.From.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, loc)))
	assert.True(t, store.got.To.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, loc)))
}

func TestAuditLogs_DefaultsAndErrors(t *testing.T) {
	store := &fakeAuditLister{}
	r := auditRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/auditoria?limit=9999&from=ayer", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50, store.got.Limit)
	assert.Equal(t, 0, store.got.Offset)
	assert.Nil(t, store.got.From)
	assert.JSONEq(t, `{"page":1,"limit":50,"total":0,"data":[]}`, w.Body.String())

	store.err = errors.New("db down")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/auditoria", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}
