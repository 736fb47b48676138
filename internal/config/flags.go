package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/stockkeeper/internal/flagx"
)

var knownFlags = []string{"-d", "-s", "-db", "-e", "-o", "-l", "-lf", "-log", "-m"}

// parseFlags populates Config from command-line flags. os.Args is filtered
// through flagx.FilterArgs first so -c / -config never reach this flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataFile, "d", cfg.DataFile, "path to the JSON data file")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage driver: json or sqlite")
	fs.StringVar(&cfg.DatabaseFile, "db", cfg.DatabaseFile, "path to the SQLite database file")
	fs.StringVar(&cfg.ExportFormat, "e", cfg.ExportFormat, "export format: xlsx, csv or none")
	fs.StringVar(&cfg.ExportDir, "o", cfg.ExportDir, "directory for exported files")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "lf", cfg.LogFormat, "log format: text or json")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file (empty means stderr)")
	fs.StringVar(&cfg.MetricsFile, "m", cfg.MetricsFile, "Prometheus textfile written after every change (empty disables)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
