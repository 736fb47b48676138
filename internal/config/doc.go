// Package config loads runtime configuration for the stockkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c or -config.
//  3. Environment variables (see parseEnv). A .env file in the working
//     directory is loaded first when present; real environment wins over it.
//  4. Command-line flags (see parseFlags), which override everything above.
//
// Supported flags
//
//	-d   string   path to the JSON data file
//	-s   string   storage driver: json | sqlite
//	-db  string   path to the SQLite database file
//	-e   string   export format: xlsx | csv | none
//	-o   string   directory for exported files
//	-l   string   log level: debug | info | warn | error
//	-lf  string   log format: text | json
//	-log string   log file (empty means stderr)
//	-m   string   Prometheus textfile for inventory gauges (empty disables)
//
// Environment
//
//	STOCK_DATA_FILE, STOCK_STORAGE, STOCK_DATABASE_FILE, STOCK_EXPORT_FORMAT,
//	STOCK_EXPORT_DIR, STOCK_LOG_LEVEL, STOCK_LOG_FORMAT, STOCK_LOG_FILE,
//	STOCK_METRICS_FILE
//
// # JSON schema
//
//	{
//	  "data_file": "warehouse_data.json",
//	  "storage": "json",
//	  "database_file": "warehouse.db",
//	  "export_format": "xlsx",
//	  "export_dir": ".",
//	  "log_level": "warn",
//	  "log_format": "text",
//	  "log_file": "",
//	  "metrics_file": ""
//	}
//
// Keys missing from the file leave the earlier value untouched.
package config
