package db

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/mapa-clientes/internal/config"
	"github.com/BruksfildServices01/mapa-clientes/internal/models"
)

// Open connects to the store. The returned handle is the single long-lived
// connection pool of the process; release it with Close.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, eris.Wrap(err, "db: connect")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, eris.Wrap(err, "db: get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// Migrate creates or extends the tables. Indexes are ensured separately by
// the client repositories so that a non-unique leftover can be replaced.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Client{},
		&models.LegacyClient{},
		&models.AuditLog{},
	); err != nil {
		return eris.Wrap(err, "db: migrate")
	}
	return nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return eris.Wrap(err, "db: get sql.DB")
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return eris.Wrap(err, "db: get sql.DB")
	}
	return sqlDB.Close()
}
