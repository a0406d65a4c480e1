package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/mapa-clientes/internal/domain/client"
)

// Client is a document of the partitioned schema, keyed by (cd, cliente).
// Indexes are managed by the repository, not by AutoMigrate.
type Client struct {
	ID uint `gorm:"primaryKey" json:"-"`

	CD      string `gorm:"column:cd;size:20;not null" json:"CD"`
	Cliente string `gorm:"column:cliente;size:50;not null" json:"Cliente"`

	Nombre    string `gorm:"column:nombre" json:"Nombre"`
	Barrio    string `gorm:"column:barrio" json:"Barrio"`
	Poblacion string `gorm:"column:poblacion" json:"Poblacion"`
	Telefono  string `gorm:"column:telefono" json:"Telefono"`

	Latitud  string `gorm:"column:latitud" json:"Latitud"`
	Longitud string `gorm:"column:longitud" json:"Longitud"`

	ZT              string `gorm:"column:zt" json:"ZT"`
	COM             string `gorm:"column:com" json:"COM"`
	ZonaVenta       string `gorm:"column:zona_venta" json:"ZonaVenta"`
	Distrito        string `gorm:"column:distrito" json:"Distrito"`
	EntregaFREE     string `gorm:"column:entrega_free" json:"EntregaFREE"`
	DiaFlex         string `gorm:"column:dia_flex" json:"DiaFlex"`
	ValorMinimoFlex string `gorm:"column:valor_minimo_flex" json:"ValorMinimoFlex"`
	ValorFlex       string `gorm:"column:valor_flex" json:"ValorFlex"`
	Cerveza         string `gorm:"column:cerveza" json:"Cerveza"`
	NABS            string `gorm:"column:nabs" json:"NABS"`
	MKP             string `gorm:"column:mkp" json:"MKP"`
	Cobro           string `gorm:"column:cobro" json:"Cobro"`
	NPS             string `gorm:"column:nps" json:"NPS"`

	Extras datatypes.JSONMap                      `gorm:"column:extras;type:jsonb" json:"extras"`
	Source datatypes.JSONType[client.Provenance] `gorm:"column:source;type:jsonb" json:"source"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Client) TableName() string {
	return "clientes"
}
