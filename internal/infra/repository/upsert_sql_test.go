package repository

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/BruksfildServices01/mapa-clientes/internal/domain/client"
)

// sqlCapture keeps every statement gorm traces.
type sqlCapture struct {
	mu    sync.Mutex
	stmts []string
}

func (s *sqlCapture) LogMode(logger.LogLevel) logger.Interface     { return s }
func (s *sqlCapture) Info(context.Context, string, ...interface{})  {}
func (s *sqlCapture) Warn(context.Context, string, ...interface{})  {}
func (s *sqlCapture) Error(context.Context, string, ...interface{}) {}

func (s *sqlCapture) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stmts = append(s.stmts, sql)
}

func (s *sqlCapture) last(t *testing.T) string {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.stmts)
	return s.stmts[len(s.stmts)-1]
}

// dryRunDB builds statements without a server.
func dryRunDB(t *testing.T) (*gorm.DB, *sqlCapture) {
	t.Helper()
	capture := &sqlCapture{}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 user=mapa dbname=mapa_clientes sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 capture,
	})
	require.NoError(t, err)
	return db, capture
}

// splitUpsert returns the INSERT part and the DO UPDATE SET part.
func splitUpsert(t *testing.T, sql string) (string, string) {
	t.Helper()
	i := strings.Index(sql, "DO UPDATE SET")
	require.GreaterOrEqual(t, i, 0, sql)
	return sql[:i], sql[i:]
}

func TestClientUpsert_KeepsCreatedAt(t *testing.T) {
	db, capture := dryRunDB(t)

	res, err := NewClientGormRepository(db).Upsert(context.Background(), []domain.Record{sampleRecord()})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Executed)

	insert, update := splitUpsert(t, capture.last(t))
	assert.Contains(t, insert, `ON CONFLICT ("cd","cliente")`)
	assert.Contains(t, insert, `"created_at"`)
	assert.Contains(t, update, `"updated_at"="excluded"."updated_at"`)
	assert.Contains(t, update, `"latitud"="excluded"."latitud"`)
	assert.NotContains(t, update, "created_at")
}

func TestLegacyUpsert_KeepsCreatedAt(t *testing.T) {
	db, capture := dryRunDB(t)

	rec := sampleRecord()
	rec.CD = ""
	res, err := NewLegacyClientGormRepository(db).Upsert(context.Background(), []domain.Record{rec})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Executed)

	insert, update := splitUpsert(t, capture.last(t))
	assert.Contains(t, insert, `ON CONFLICT ("codigo")`)
	assert.Contains(t, insert, `"created_at"`)
	assert.Contains(t, update, `"updated_at"="excluded"."updated_at"`)
	assert.Contains(t, update, `"extras"="excluded"."extras"`)
	assert.NotContains(t, update, "created_at")
}
