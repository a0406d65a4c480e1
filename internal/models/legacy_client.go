package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/mapa-clientes/internal/domain/client"
)

// LegacyClient is a document of the flat schema, keyed by codigo alone.
// Everything beyond the core fields lives in Extras.
type LegacyClient struct {
	ID uint `gorm:"primaryKey" json:"-"`

	Codigo    string `gorm:"column:codigo;size:50;not null" json:"codigo"`
	Nombre    string `gorm:"column:nombre" json:"nombre"`
	Barrio    string `gorm:"column:barrio" json:"barrio"`
	Poblacion string `gorm:"column:poblacion" json:"poblacion"`
	Telefono  string `gorm:"column:telefono" json:"telefono"`

	Lat string `gorm:"column:lat" json:"lat"`
	Lng string `gorm:"column:lng" json:"lng"`

	Extras datatypes.JSONMap                      `gorm:"column:extras;type:jsonb" json:"extras"`
	Source datatypes.JSONType[client.Provenance] `gorm:"column:source;type:jsonb" json:"source"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (LegacyClient) TableName() string {
	return "clientes_legacy"
}
