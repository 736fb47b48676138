package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	origDotenv := dotenvFile
	t.Cleanup(func() { dotenvFile = origDotenv })

	dir := t.TempDir()

	t.Run("real environment", func(t *testing.T) {
		dotenvFile = filepath.Join(dir, "absent.env")
		unsetEnv(t, "STOCK_DATA_FILE", "STOCK_STORAGE", "STOCK_LOG_FILE")
		t.Setenv("STOCK_DATA_FILE", "/data/env.json")
		t.Setenv("STOCK_STORAGE", "sqlite")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "/data/env.json", cfg.DataFile)
		assert.Equal(t, "sqlite", cfg.Storage)
		assert.Equal(t, "", cfg.LogFile)
	})

	t.Run("dotenv file fills unset keys only", func(t *testing.T) {
		dotenvFile = filepath.Join(dir, "test.env")
		require.NoError(t, os.WriteFile(dotenvFile,
			[]byte("STOCK_EXPORT_DIR=/exports\nSTOCK_LOG_FORMAT=json\n"), 0o600))

		unsetEnv(t, "STOCK_EXPORT_DIR", "STOCK_LOG_FORMAT")
		t.Setenv("STOCK_LOG_FORMAT", "text")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "/exports", cfg.ExportDir)
		assert.Equal(t, "text", cfg.LogFormat, "real env wins over .env")
	})
}
