package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/stockkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/stockkeeper/internal/cli"
	"github.com/dmitrijs2005/stockkeeper/internal/config"
	"github.com/dmitrijs2005/stockkeeper/internal/export"
	"github.com/dmitrijs2005/stockkeeper/internal/filex"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
	"github.com/dmitrijs2005/stockkeeper/internal/metrics"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/records"
	"github.com/dmitrijs2005/stockkeeper/internal/services"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "stockkeeper: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	logOut, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, logOut)
	if err != nil {
		return err
	}
	// stderr cannot be synced on some platforms; the error is not actionable.
	defer func() { _ = logging.Sync(logger) }()

	repo, err := records.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	capability := export.Resolve(cfg.ExportFormat)
	if !capability.Available {
		logger.Warn(ctx, "export disabled", "reason", capability.Reason)
	}

	recorder := metrics.NewRecorder(cfg.MetricsFile)
	inv := services.NewInventoryService(repo, logger, services.WithObserver(recorder))
	app := cli.NewApp(cfg, inv, capability, logger, os.Stdin, os.Stdout)

	return app.Run(ctx)
}

// openLog returns stderr when path is empty, otherwise the file opened for
// appending.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
