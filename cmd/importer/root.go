package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/mapa-clientes/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "importer",
	Short: "Loads client spreadsheets into the store",
	Long:  "Validates client spreadsheets against an import template and upserts their rows into the partitioned or legacy client tables.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadOffline()
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
