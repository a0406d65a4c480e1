package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BruksfildServices01/mapa-clientes/internal/timezone"
)

var ErrMissingDatabaseURL = eris.New("config: DATABASE_URL is required")

type Config struct {
	DBUrl          string
	ServerPort     string
	Timezone       string
	BodyLimitBytes int64
	CORSOrigins    []string

	Log    LogConfig
	Redis  RedisConfig
	AWS    AWSConfig
	Import ImportConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// RedisConfig enables the lookup cache when URL is set.
type RedisConfig struct {
	URL        string
	TTLSeconds int
}

// AWSConfig is used to read spreadsheets from s3:// sources.
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

type ImportConfig struct {
	BatchSize    int
	File         string
	TemplatePath string
}

// Load reads .env (if present), an optional config.yaml and the
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	return load(true)
}

// LoadOffline is Load for commands that never open the store.
func LoadOffline() (*Config, error) {
	return load(false)
}

func load(requireDB bool) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "3000")
	v.SetDefault("timezone", timezone.DefaultTimezone)
	v.SetDefault("body_limit_bytes", 1<<20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("cache.ttl_seconds", 300)
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("import.batch_size", 1000)
	v.SetDefault("import.file", "data/Clientes.xlsx")
	v.SetDefault("import.template", "plantilla.v1.json")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	cfg := &Config{
		DBUrl:          v.GetString("database_url"),
		ServerPort:     v.GetString("port"),
		Timezone:       v.GetString("timezone"),
		BodyLimitBytes: v.GetInt64("body_limit_bytes"),
		CORSOrigins:    splitList(v.GetString("cors_origins")),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Redis: RedisConfig{
			URL:        v.GetString("redis_url"),
			TTLSeconds: v.GetInt("cache.ttl_seconds"),
		},
		AWS: AWSConfig{
			Region:          v.GetString("aws.region"),
			AccessKeyID:     v.GetString("aws.access_key_id"),
			SecretAccessKey: v.GetString("aws.secret_access_key"),
			Endpoint:        v.GetString("aws.endpoint"),
		},
		Import: ImportConfig{
			BatchSize:    v.GetInt("import.batch_size"),
			File:         v.GetString("import.file"),
			TemplatePath: v.GetString("import.template"),
		},
	}

	if requireDB && cfg.DBUrl == "" {
		return nil, ErrMissingDatabaseURL
	}
	if !timezone.IsValid(cfg.Timezone) {
		return nil, eris.Errorf("config: invalid TIMEZONE %q", cfg.Timezone)
	}
	if cfg.Import.BatchSize <= 0 {
		cfg.Import.BatchSize = 1000
	}

	return cfg, nil
}

// splitList reads comma-separated env values such as CORS_ORIGINS.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
