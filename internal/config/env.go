package config

import (
	"os"

	"github.com/joho/godotenv"
)

var envBindings = []struct {
	key string
	dst func(*Config) *string
}{
	{"STOCK_DATA_FILE", func(c *Config) *string { return &c.DataFile }},
	{"STOCK_STORAGE", func(c *Config) *string { return &c.Storage }},
	{"STOCK_DATABASE_FILE", func(c *Config) *string { return &c.DatabaseFile }},
	{"STOCK_EXPORT_FORMAT", func(c *Config) *string { return &c.ExportFormat }},
	{"STOCK_EXPORT_DIR", func(c *Config) *string { return &c.ExportDir }},
	{"STOCK_LOG_LEVEL", func(c *Config) *string { return &c.LogLevel }},
	{"STOCK_LOG_FORMAT", func(c *Config) *string { return &c.LogFormat }},
	{"STOCK_LOG_FILE", func(c *Config) *string { return &c.LogFile }},
	{"STOCK_METRICS_FILE", func(c *Config) *string { return &c.MetricsFile }},
}

// dotenvFile is the file loaded into the environment before parseEnv reads it.
var dotenvFile = ".env"

// parseEnv overlays cfg with STOCK_* variables. godotenv.Load never
// overrides variables that are already set, and a missing .env is fine.
func parseEnv(cfg *Config) {
	_ = godotenv.Load(dotenvFile)

	for _, b := range envBindings {
		if v, ok := os.LookupEnv(b.key); ok {
			*b.dst(cfg) = v
		}
	}
}
