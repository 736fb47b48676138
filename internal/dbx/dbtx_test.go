package dbx

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSpools(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "spools.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE spools (position INTEGER PRIMARY KEY, material TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO spools(position, material) VALUES (0, 'PLA')`)
	require.NoError(t, err)
	return db
}

func materials(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query(`SELECT material FROM spools ORDER BY position`)
	require.NoError(t, err)
	defer rows.Close()

	var out []string
	for rows.Next() {
		var m string
		require.NoError(t, rows.Scan(&m))
		out = append(out, m)
	}
	require.NoError(t, rows.Err())
	return out
}

// rewrite replaces the table contents the way the record store saves.
func rewrite(list ...string) func(ctx context.Context, tx DBTX) error {
	return func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM spools`); err != nil {
			return err
		}
		for i, m := range list {
			if _, err := tx.ExecContext(ctx, `INSERT INTO spools(position, material) VALUES (?, ?)`, i, m); err != nil {
				return err
			}
		}
		return nil
	}
}

func TestWithTx(t *testing.T) {
	disk := errors.New("disk full")

	tests := []struct {
		name    string
		fn      func(ctx context.Context, tx DBTX) error
		wantErr bool
		errIs   error
		want    []string
	}{
		{
			name: "commit keeps the new contents",
			fn:   rewrite("PETG", "ABS"),
			want: []string{"PETG", "ABS"},
		},
		{
			name: "error after writes rolls back",
			fn: func(ctx context.Context, tx DBTX) error {
				if err := rewrite("TPU")(ctx, tx); err != nil {
					return err
				}
				return disk
			},
			wantErr: true,
			errIs:   disk,
			want:    []string{"PLA"},
		},
		{
			name: "failing statement rolls back",
			fn: func(ctx context.Context, tx DBTX) error {
				if err := rewrite("ASA")(ctx, tx); err != nil {
					return err
				}
				_, err := tx.ExecContext(ctx, `INSERT INTO spools(position, material) VALUES (0, NULL)`)
				return err
			},
			wantErr: true,
			want:    []string{"PLA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := openSpools(t)

			err := WithTx(context.Background(), db, nil, tt.fn)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, materials(t, db))
		})
	}
}

func TestWithTx_PanicRollsBackAndPropagates(t *testing.T) {
	db := openSpools(t)

	assert.PanicsWithValue(t, "spool jammed", func() {
		_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
			require.NoError(t, rewrite("Nylon")(ctx, tx))
			panic("spool jammed")
		})
	})
	assert.Equal(t, []string{"PLA"}, materials(t, db))
}

func TestWithTx_BeginOnClosedDB(t *testing.T) {
	db := openSpools(t)
	require.NoError(t, db.Close())

	called := false
	err := WithTx(context.Background(), db, nil, func(context.Context, DBTX) error {
		called = true
		return nil
	})
	require.ErrorContains(t, err, "begin tx")
	assert.False(t, called)
}

func TestOpenSQLite(t *testing.T) {
	t.Run("single connection", func(t *testing.T) {
		db := openSpools(t)
		assert.Equal(t, 1, db.Stats().MaxOpenConnections)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "x.db"))
		require.Error(t, err)
	})
}
