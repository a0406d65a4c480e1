package repository

import (
	"context"
	"errors"

	"github.com/rotisserie/eris"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbpkg "github.com/BruksfildServices01/mapa-clientes/internal/db"
	domain "github.com/BruksfildServices01/mapa-clientes/internal/domain/client"
	"github.com/BruksfildServices01/mapa-clientes/internal/models"
)

var LegacyIndexes = []dbpkg.IndexSpec{
	{Name: "codigo_unique", Table: "clientes_legacy", Columns: []string{"codigo"}, Unique: true},
	{Name: "idx_legacy_barrio", Table: "clientes_legacy", Columns: []string{"barrio"}},
	{Name: "idx_legacy_telefono", Table: "clientes_legacy", Columns: []string{"telefono"}},
}

var legacyUpdateColumns = []string{
	"nombre", "barrio", "poblacion", "telefono", "lat", "lng",
	"extras", "source", "updated_at",
}

type LegacyClientGormRepository struct {
	db *gorm.DB
}

func NewLegacyClientGormRepository(db *gorm.DB) *LegacyClientGormRepository {
	return &LegacyClientGormRepository{db: db}
}

func (r *LegacyClientGormRepository) Generation() domain.Generation {
	return domain.Legacy
}

func (r *LegacyClientGormRepository) Get(
	ctx context.Context,
	key domain.Key,
) (*domain.Record, error) {

	var m models.LegacyClient
	err := r.db.WithContext(ctx).
		Where("codigo = ?", key.Code).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrap(err, "repository: get legacy client")
	}

	rec := legacyToRecord(m)
	return &rec, nil
}

func (r *LegacyClientGormRepository) List(
	ctx context.Context,
	_ string,
	codes []string,
) ([]domain.Record, error) {

	if len(codes) == 0 {
		return nil, nil
	}

	var rows []models.LegacyClient
	if err := r.db.WithContext(ctx).
		Where("codigo IN ?", codes).
		Find(&rows).Error; err != nil {
		return nil, eris.Wrap(err, "repository: list legacy clients")
	}

	out := make([]domain.Record, 0, len(rows))
	for _, m := range rows {
		out = append(out, legacyToRecord(m))
	}
	return out, nil
}

func (r *LegacyClientGormRepository) EnsureIndexes(ctx context.Context) error {
	for _, spec := range LegacyIndexes {
		if err := dbpkg.EnsureIndex(ctx, r.db, spec); err != nil {
			return err
		}
	}
	return nil
}

func (r *LegacyClientGormRepository) Upsert(
	ctx context.Context,
	records []domain.Record,
) (domain.BatchResult, error) {

	rows := make([]models.LegacyClient, 0, len(records))
	for _, rec := range records {
		rows = append(rows, legacyFromRecord(rec))
	}

	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "codigo"}},
		DoUpdates: clause.AssignmentColumns(legacyUpdateColumns),
	}

	return upsertUnordered(ctx, r.db, onConflict, rows, func(m models.LegacyClient) domain.Key {
		return domain.Key{Code: m.Codigo}
	})
}

func (r *LegacyClientGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.LegacyClient{}).Count(&n).Error; err != nil {
		return 0, eris.Wrap(err, "repository: count legacy clients")
	}
	return n, nil
}

func legacyToRecord(m models.LegacyClient) domain.Record {
	return domain.Record{
		Code:         m.Codigo,
		Name:         m.Nombre,
		Neighborhood: m.Barrio,
		City:         m.Poblacion,
		Phone:        m.Telefono,
		Lat:          m.Lat,
		Lng:          m.Lng,
		Extras:       map[string]any(m.Extras),
		Source:       m.Source.Data(),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func legacyFromRecord(rec domain.Record) models.LegacyClient {
	return models.LegacyClient{
		Codigo:    rec.Code,
		Nombre:    rec.Name,
		Barrio:    rec.Neighborhood,
		Poblacion: rec.City,
		Telefono:  rec.Phone,
		Lat:       rec.Lat,
		Lng:       rec.Lng,
		Extras:    extrasMap(rec.Extras),
		Source:    datatypes.NewJSONType(rec.Source),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

var _ domain.Repository = (*LegacyClientGormRepository)(nil)
