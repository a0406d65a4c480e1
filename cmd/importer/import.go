package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/mapa-clientes/internal/audit"
	"github.com/BruksfildServices01/mapa-clientes/internal/config"
	dbpkg "github.com/BruksfildServices01/mapa-clientes/internal/db"
	domain "github.com/BruksfildServices01/mapa-clientes/internal/domain/client"
	"github.com/BruksfildServices01/mapa-clientes/internal/importer"
	"github.com/BruksfildServices01/mapa-clientes/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/mapa-clientes/internal/infra/repository"
)

var (
	importFile      string
	importTemplate  string
	importSchema    string
	importBatchSize int
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Upsert spreadsheet rows into the client store",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if cfg.DBUrl == "" {
			return config.ErrMissingDatabaseURL
		}

		in, err := prepare(ctx, cfg.AWS,
			orDefault(importFile, cfg.Import.File),
			orDefault(importTemplate, cfg.Import.TemplatePath),
			importSchema,
		)
		if err != nil {
			return err
		}

		db, err := dbpkg.Open(cfg)
		if err != nil {
			return err
		}
		defer dbpkg.Close(db)

		if err := dbpkg.Migrate(db); err != nil {
			return err
		}

		batchSize := cfg.Import.BatchSize
		if importBatchSize > 0 {
			batchSize = importBatchSize
		}

		opts := importer.Options{
			BatchSize: batchSize,
			Timezone:  cfg.Timezone,
			Audit:     audit.New(db),
		}
		if inv := invalidator(ctx); inv != nil {
			opts.Cache = inv
		}

		rep, err := importer.New(writerFor(in.gen, db), opts).Run(ctx, in.sheet, in.tpl)
		if err != nil {
			return err
		}

		zap.L().Info("import finished",
			zap.String("run_id", rep.RunID),
			zap.String("schema", string(rep.Generation)),
			zap.String("file", rep.File),
			zap.String("sheet", rep.Sheet),
			zap.Int("rows_read", rep.RowsRead),
			zap.Any("skipped", rep.Skipped),
			zap.Int("operations", rep.Operations),
			zap.Int("failed", rep.Failed),
			zap.Int64("total", rep.Total),
			zap.Duration("duration", rep.Duration),
		)
		return nil
	},
}

func writerFor(gen domain.Generation, db *gorm.DB) domain.Writer {
	if gen == domain.Legacy {
		return infraRepo.NewLegacyClientGormRepository(db)
	}
	return infraRepo.NewClientGormRepository(db)
}

// invalidator returns the lookup cache when redis is configured and
// reachable. Without it the API keeps serving cached entries until they
// expire.
func invalidator(ctx context.Context) importer.Invalidator {
	if cfg.Redis.URL == "" {
		return nil
	}
	rdb, err := cache.NewRedis(ctx, cfg.Redis.URL)
	if err != nil {
		zap.L().Warn("lookup cache not reachable, entries expire on their own", zap.Error(err))
		return nil
	}
	return cache.NewRedisLookupCache(rdb, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
}

func init() {
	importCmd.Flags().StringVar(&importFile, "file", "", "spreadsheet path or s3://bucket/key (default from IMPORT_FILE)")
	importCmd.Flags().StringVar(&importTemplate, "template", "", "import template path (default from IMPORT_TEMPLATE)")
	importCmd.Flags().StringVar(&importSchema, "schema", "", "cd or legacy (default from template, else cd)")
	importCmd.Flags().IntVar(&importBatchSize, "batch-size", 0, "rows per upsert batch (default from IMPORT_BATCH_SIZE)")
	rootCmd.AddCommand(importCmd)
}
