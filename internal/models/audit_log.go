package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action     string `gorm:"size:50;not null;index" json:"action"`
	Generation string `gorm:"size:10" json:"generation"`
	CD         string `gorm:"size:20" json:"cd"`
	Code       string `gorm:"size:50" json:"code"`

	Metadata datatypes.JSONMap `gorm:"type:jsonb" json:"metadata"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
