package audit

import (
	"context"

	"github.com/rotisserie/eris"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/mapa-clientes/internal/models"
)

const (
	ActionClientNotFound   = "client_not_found"
	ActionClientUnmappable = "client_unmappable"
	ActionBulkLookup       = "bulk_lookup"
	ActionImportCompleted  = "import_completed"
)

type Event struct {
	Action     string
	Generation string
	CD         string
	Code       string
	Metadata   map[string]any
}

// Recorder persists audit events.
type Recorder interface {
	Log(ctx context.Context, ev Event) error
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	row := models.AuditLog{
		Action:     ev.Action,
		Generation: ev.Generation,
		CD:         ev.CD,
		Code:       ev.Code,
		Metadata:   datatypes.JSONMap(ev.Metadata),
	}
	if row.Metadata == nil {
		row.Metadata = datatypes.JSONMap{}
	}

	if err := l.db.WithContext(ctx).Create(&row).Error; err != nil {
		return eris.Wrap(err, "audit: insert")
	}
	return nil
}
