package audit

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/BruksfildServices01/mapa-clientes/internal/models"
)

type Filter struct {
	Action     string
	Generation string
	CD         string
	From       *time.Time
	To         *time.Time

	Limit  int
	Offset int
}

// List returns audit rows newest first and the total matching the filter.
func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	q := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Generation != "" {
		q = q.Where("generation = ?", f.Generation)
	}
	if f.CD != "" {
		q = q.Where("cd = ?", f.CD)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, eris.Wrap(err, "audit: count")
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&logs).Error; err != nil {
		return nil, 0, eris.Wrap(err, "audit: list")
	}
	return logs, total, nil
}
