package config

import (
	"fmt"
	"strings"
)

const (
	StorageJSON   = "json"
	StorageSQLite = "sqlite"
)

// Config holds runtime settings for the stockkeeper CLI.
type Config struct {
	DataFile     string
	Storage      string
	DatabaseFile string
	ExportFormat string
	ExportDir    string
	LogLevel     string
	LogFormat    string
	LogFile      string
	MetricsFile  string
}

// LoadDefaults populates c with defaults that reproduce the single-file setup.
func (c *Config) LoadDefaults() {
	c.DataFile = "warehouse_data.json"
	c.Storage = StorageJSON
	c.DatabaseFile = "warehouse.db"
	c.ExportFormat = "xlsx"
	c.ExportDir = "."
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.LogFile = ""
	c.MetricsFile = ""
}

// Validate rejects values the rest of the program cannot act on.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageJSON, StorageSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q (want json or sqlite)", c.Storage)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	if c.Storage == StorageJSON && c.DataFile == "" {
		return fmt.Errorf("data file must not be empty")
	}
	if c.Storage == StorageSQLite && c.DatabaseFile == "" {
		return fmt.Errorf("database file must not be empty")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays JSON,
// environment and flags in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
