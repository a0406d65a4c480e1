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

// ClientIndex is the identity index of the partitioned schema.
var ClientIndex = dbpkg.IndexSpec{
	Name:    "cd_cliente_unique",
	Table:   "clientes",
	Columns: []string{"cd", "cliente"},
	Unique:  true,
}

// clientUpdateColumns is everything but the identity and created_at.
var clientUpdateColumns = []string{
	"nombre", "barrio", "poblacion", "telefono",
	"latitud", "longitud",
	"zt", "com", "zona_venta", "distrito", "entrega_free", "dia_flex",
	"valor_minimo_flex", "valor_flex", "cerveza", "nabs", "mkp", "cobro", "nps",
	"extras", "source", "updated_at",
}

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) Generation() domain.Generation {
	return domain.Partitioned
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *ClientGormRepository) Get(
	ctx context.Context,
	key domain.Key,
) (*domain.Record, error) {

	var m models.Client
	err := r.db.WithContext(ctx).
		Where("cd = ? AND cliente = ?", key.CD, key.Code).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrap(err, "repository: get client")
	}

	rec := clientToRecord(m)
	return &rec, nil
}

func (r *ClientGormRepository) List(
	ctx context.Context,
	cd string,
	codes []string,
) ([]domain.Record, error) {

	if len(codes) == 0 {
		return nil, nil
	}

	var rows []models.Client
	if err := r.db.WithContext(ctx).
		Where("cd = ? AND cliente IN ?", cd, codes).
		Find(&rows).Error; err != nil {
		return nil, eris.Wrap(err, "repository: list clients")
	}

	out := make([]domain.Record, 0, len(rows))
	for _, m := range rows {
		out = append(out, clientToRecord(m))
	}
	return out, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *ClientGormRepository) EnsureIndexes(ctx context.Context) error {
	return dbpkg.EnsureIndex(ctx, r.db, ClientIndex)
}

func (r *ClientGormRepository) Upsert(
	ctx context.Context,
	records []domain.Record,
) (domain.BatchResult, error) {

	rows := make([]models.Client, 0, len(records))
	for _, rec := range records {
		rows = append(rows, clientFromRecord(rec))
	}

	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "cd"}, {Name: "cliente"}},
		DoUpdates: clause.AssignmentColumns(clientUpdateColumns),
	}

	return upsertUnordered(ctx, r.db, onConflict, rows, func(m models.Client) domain.Key {
		return domain.Key{CD: m.CD, Code: m.Cliente}
	})
}

func (r *ClientGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Client{}).Count(&n).Error; err != nil {
		return 0, eris.Wrap(err, "repository: count clients")
	}
	return n, nil
}

// --------------------------------------------------
// Mapping
// --------------------------------------------------

func clientToRecord(m models.Client) domain.Record {
	return domain.Record{
		CD:           m.CD,
		Code:         m.Cliente,
		Name:         m.Nombre,
		Neighborhood: m.Barrio,
		City:         m.Poblacion,
		Phone:        m.Telefono,
		Lat:          m.Latitud,
		Lng:          m.Longitud,
		Commercial: domain.Commercial{
			ZT:              m.ZT,
			COM:             m.COM,
			ZonaVenta:       m.ZonaVenta,
			Distrito:        m.Distrito,
			EntregaFREE:     m.EntregaFREE,
			DiaFlex:         m.DiaFlex,
			ValorMinimoFlex: m.ValorMinimoFlex,
			ValorFlex:       m.ValorFlex,
			Cerveza:         m.Cerveza,
			NABS:            m.NABS,
			MKP:             m.MKP,
			Cobro:           m.Cobro,
			NPS:             m.NPS,
		},
		Extras:    map[string]any(m.Extras),
		Source:    m.Source.Data(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func clientFromRecord(rec domain.Record) models.Client {
	c := rec.Commercial
	return models.Client{
		CD:              rec.CD,
		Cliente:         rec.Code,
		Nombre:          rec.Name,
		Barrio:          rec.Neighborhood,
		Poblacion:       rec.City,
		Telefono:        rec.Phone,
		Latitud:         rec.Lat,
		Longitud:        rec.Lng,
		ZT:              c.ZT,
		COM:             c.COM,
		ZonaVenta:       c.ZonaVenta,
		Distrito:        c.Distrito,
		EntregaFREE:     c.EntregaFREE,
		DiaFlex:         c.DiaFlex,
		ValorMinimoFlex: c.ValorMinimoFlex,
		ValorFlex:       c.ValorFlex,
		Cerveza:         c.Cerveza,
		NABS:            c.NABS,
		MKP:             c.MKP,
		Cobro:           c.Cobro,
		NPS:             c.NPS,
		Extras:          extrasMap(rec.Extras),
		Source:          datatypes.NewJSONType(rec.Source),
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}

func extrasMap(m map[string]any) datatypes.JSONMap {
	if m == nil {
		return datatypes.JSONMap{}
	}
	return datatypes.JSONMap(m)
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
