package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IndexSpec describes an index the application relies on.
type IndexSpec struct {
	Name    string
	Table   string
	Columns []string
	Unique  bool
}

type indexState struct {
	Exists bool
	Unique bool
}

// EnsureIndex makes sure spec exists with the right uniqueness. A
// same-named index without the unique flag is dropped and recreated, which
// keeps index setup idempotent across schema changes.
func EnsureIndex(ctx context.Context, db *gorm.DB, spec IndexSpec) error {
	if len(spec.Columns) == 0 {
		return eris.Errorf("db: index %s has no columns", spec.Name)
	}

	state, err := lookupIndex(ctx, db, spec.Name)
	if err != nil {
		return err
	}

	if state.Exists && spec.Unique && !state.Unique {
		zap.L().Warn("replacing non-unique index",
			zap.String("index", spec.Name),
			zap.String("table", spec.Table),
		)
		if err := db.WithContext(ctx).Exec(dropIndexSQL(spec)).Error; err != nil {
			return eris.Wrapf(err, "db: drop index %s", spec.Name)
		}
	}

	if err := db.WithContext(ctx).Exec(createIndexSQL(spec)).Error; err != nil {
		return eris.Wrapf(err, "db: create index %s", spec.Name)
	}
	return nil
}

func lookupIndex(ctx context.Context, db *gorm.DB, name string) (indexState, error) {
	var rows []struct {
		Unique bool `gorm:"column:indisunique"`
	}
	err := db.WithContext(ctx).Raw(`
		SELECT ix.indisunique
		FROM pg_class c
		JOIN pg_index ix ON ix.indexrelid = c.oid
		WHERE c.relname = ? AND c.relkind = 'i'
	`, name).Scan(&rows).Error
	if err != nil {
		return indexState{}, eris.Wrapf(err, "db: inspect index %s", name)
	}
	if len(rows) == 0 {
		return indexState{}, nil
	}
	return indexState{Exists: true, Unique: rows[0].Unique}, nil
}

func createIndexSQL(spec IndexSpec) string {
	kind := "INDEX"
	if spec.Unique {
		kind = "UNIQUE INDEX"
	}
	cols := make([]string, len(spec.Columns))
	for i, c := range spec.Columns {
		cols[i] = pgx.Identifier{c}.Sanitize()
	}
	return fmt.Sprintf(
		"CREATE %s IF NOT EXISTS %s ON %s (%s)",
		kind,
		pgx.Identifier{spec.Name}.Sanitize(),
		pgx.Identifier{spec.Table}.Sanitize(),
		strings.Join(cols, ", "),
	)
}

func dropIndexSQL(spec IndexSpec) string {
	return fmt.Sprintf("DROP INDEX IF EXISTS %s", pgx.Identifier{spec.Name}.Sanitize())
}
