package records

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/stockkeeper/internal/dbx"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
	"github.com/dmitrijs2005/stockkeeper/internal/migrations"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

// SQLiteRepository stores the list in the records table. The position column
// keeps the list order.
type SQLiteRepository struct {
	db  *sql.DB
	log logging.Logger
}

func NewSQLiteRepository(db *sql.DB, log logging.Logger) *SQLiteRepository {
	return &SQLiteRepository{db: db, log: log.With("store", "sqlite")}
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Ensure creates the schema if needed.
func (r *SQLiteRepository) Ensure(ctx context.Context) error {
	if err := RunMigrations(ctx, r.db); err != nil {
		return err
	}
	r.log.Debug(ctx, "schema up to date")
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) ([]models.Record, error) {
	query := `select id, date, material_kind, spool_size, cross_section, color,
		storage_conditions, status, remaining
		from records order by position`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer rows.Close()

	result := []models.Record{}
	for rows.Next() {
		var rec models.Record
		if err := rows.Scan(
			&rec.ID, &rec.Date, &rec.MaterialKind, &rec.SpoolSize, &rec.CrossSection,
			&rec.Color, &rec.StorageConditions, &rec.Status, &rec.Remaining,
		); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.log.Debug(ctx, "store loaded", "records", len(result))
	return result, nil
}

// Save deletes every row and inserts list in order, all in one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, list []models.Record) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `delete from records`); err != nil {
			return fmt.Errorf("failed to clear records: %w", err)
		}

		query := `insert into records (id, position, date, material_kind, spool_size,
			cross_section, color, storage_conditions, status, remaining)
			values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

		for i, rec := range list {
			if _, err := tx.ExecContext(ctx, query,
				rec.ID, i, rec.Date, rec.MaterialKind, rec.SpoolSize,
				rec.CrossSection, rec.Color, rec.StorageConditions, rec.Status, rec.Remaining,
			); err != nil {
				return fmt.Errorf("failed to insert record %s: %w", rec.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.log.Debug(ctx, "store saved", "records", len(list))
	return nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
