package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/mapa-clientes/internal/domain/client"
)

// upsertUnordered writes rows as one INSERT .. ON CONFLICT DO UPDATE. When
// the batch statement fails, every row is retried alone so a single bad
// row does not block its siblings.
func upsertUnordered[T any](
	ctx context.Context,
	db *gorm.DB,
	onConflict clause.OnConflict,
	rows []T,
	keyOf func(T) domain.Key,
) (domain.BatchResult, error) {

	res := domain.BatchResult{}
	if len(rows) == 0 {
		return res, nil
	}

	err := db.WithContext(ctx).Clauses(onConflict).Create(&rows).Error
	if err == nil {
		res.Executed = len(rows)
		return res, nil
	}
	if ctx.Err() != nil {
		return res, eris.Wrap(ctx.Err(), "repository: upsert cancelled")
	}

	zap.L().Warn("batch upsert failed, retrying row by row",
		zap.Int("rows", len(rows)),
		zap.Error(err),
	)

	for i := range rows {
		row := rows[i]
		if rowErr := db.WithContext(ctx).Clauses(onConflict).Create(&row).Error; rowErr != nil {
			if ctx.Err() != nil {
				return res, eris.Wrap(ctx.Err(), "repository: upsert cancelled")
			}
			if res.Errors == nil {
				res.Errors = make(map[domain.Key]error)
			}
			res.Failed++
			res.Errors[keyOf(row)] = classify(rowErr)
			continue
		}
		res.Executed++
	}

	return res, nil
}

// classify keeps the SQLSTATE of driver errors visible in import reports.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	if isIntegrityViolation(pgErr) {
		return eris.Wrapf(err, "integrity violation (sqlstate %s)", pgErr.Code)
	}
	return eris.Wrapf(err, "sqlstate %s", pgErr.Code)
}

// isIntegrityViolation reports SQLSTATE class 23 errors.
func isIntegrityViolation(pgErr *pgconn.PgError) bool {
	return strings.HasPrefix(pgErr.Code, "23")
}
