package records

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/stockkeeper/internal/config"
	"github.com/dmitrijs2005/stockkeeper/internal/dbx"
	"github.com/dmitrijs2005/stockkeeper/internal/filex"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
)

// New returns the repository selected by cfg.Storage.
func New(ctx context.Context, cfg *config.Config, log logging.Logger) (Repository, error) {
	switch cfg.Storage {
	case config.StorageJSON:
		return NewJSONRepository(cfg.DataFile, log), nil
	case config.StorageSQLite:
		if err := filex.EnsureParentDir(cfg.DatabaseFile); err != nil {
			return nil, err
		}
		db, err := dbx.OpenSQLite(ctx, cfg.DatabaseFile)
		if err != nil {
			return nil, err
		}
		return NewSQLiteRepository(db, log), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage)
	}
}
