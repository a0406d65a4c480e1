package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/mapa-clientes/internal/config"
	"github.com/BruksfildServices01/mapa-clientes/internal/template"
)

var (
	validateFile     string
	validateTemplate string
	validateSchema   string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check spreadsheet headers against an import template",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := runValidate(
			cmd.Context(),
			cfg.AWS,
			orDefault(validateFile, cfg.Import.File),
			orDefault(validateTemplate, cfg.Import.TemplatePath),
			validateSchema,
		)
		return err
	},
}

func runValidate(ctx context.Context, aws config.AWSConfig, file, tplPath, schema string) (template.Report, error) {
	in, err := prepare(ctx, aws, file, tplPath, schema)
	if err != nil {
		return in.report, err
	}
	zap.L().Info("required headers present", zap.Strings("required", in.tpl.Required))
	return in.report, nil
}

func init() {
	validateCmd.Flags().StringVar(&validateFile, "file", "", "spreadsheet path or s3://bucket/key (default from IMPORT_FILE)")
	validateCmd.Flags().StringVar(&validateTemplate, "template", "", "import template path (default from IMPORT_TEMPLATE)")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "cd or legacy (default from template, else cd)")
	rootCmd.AddCommand(validateCmd)
}
