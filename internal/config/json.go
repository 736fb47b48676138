package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/stockkeeper/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields let
// absent keys be told apart from empty strings.
type JsonConfig struct {
	DataFile     *string `json:"data_file"`
	Storage      *string `json:"storage"`
	DatabaseFile *string `json:"database_file"`
	ExportFormat *string `json:"export_format"`
	ExportDir    *string `json:"export_dir"`
	LogLevel     *string `json:"log_level"`
	LogFormat    *string `json:"log_format"`
	LogFile      *string `json:"log_file"`
	MetricsFile  *string `json:"metrics_file"`
}

// parseJson overlays cfg with the file named by -c / -config. It is a no-op
// when neither flag is given and panics on read or decode errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	set(&cfg.DataFile, jc.DataFile)
	set(&cfg.Storage, jc.Storage)
	set(&cfg.DatabaseFile, jc.DatabaseFile)
	set(&cfg.ExportFormat, jc.ExportFormat)
	set(&cfg.ExportDir, jc.ExportDir)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.LogFormat, jc.LogFormat)
	set(&cfg.LogFile, jc.LogFile)
	set(&cfg.MetricsFile, jc.MetricsFile)
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
