package db

import (
	"context"

	"gorm.io/gorm"
)

// Status is what the debug endpoint reports about the store. It never
// carries the connection string.
type Status struct {
	Database string `json:"db"`
	Ready    bool   `json:"ready"`
}

type Probe struct {
	db *gorm.DB
}

func NewProbe(db *gorm.DB) *Probe {
	return &Probe{db: db}
}

func (p *Probe) Status(ctx context.Context) Status {
	var st Status
	if err := Ping(ctx, p.db); err != nil {
		return st
	}
	st.Ready = true
	_ = p.db.WithContext(ctx).Raw("SELECT current_database()").Scan(&st.Database).Error
	return st
}
