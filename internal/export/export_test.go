package export

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

func sample() []models.Record {
	return []models.Record{
		{ID: "1", Date: "01.01.2024", MaterialKind: "PLA", SpoolSize: "1", CrossSection: "1.75",
			Color: "Красный", StorageConditions: "dry", Status: "Added", Remaining: "1 кг"},
		{ID: "2", Date: "02.01.2024", MaterialKind: "PETG, clear", SpoolSize: "0.75",
			Status: "In use", Remaining: "0.3 кг"},
	}
}

func wantRows() [][]string {
	rows := [][]string{Header()}
	for _, r := range sample() {
		rows = append(rows, r.Values())
	}
	return rows
}

func TestHeader(t *testing.T) {
	assert.Equal(t, []string{"date", "material_kind", "spool_size", "cross_section",
		"color", "storage_conditions", "status", "remaining"}, Header())
}

func TestDefaultPath(t *testing.T) {
	now := time.Date(2024, time.July, 9, 8, 7, 6, 0, time.UTC)
	assert.Equal(t, filepath.Join("out", "warehouse_20240709-080706.xlsx"), DefaultPath("out", FormatXLSX, now))
}

func TestXLSXExporter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "stock.xlsx")

	require.NoError(t, XLSXExporter{}.Export(context.Background(), path, sample()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	// excelize drops trailing empty cells when reading back
	want := wantRows()
	require.Len(t, rows, len(want))
	for i := range want {
		for j, v := range rows[i] {
			assert.Equal(t, want[i][j], v, "row %d col %d", i, j)
		}
	}
	assert.Equal(t, "Красный", rows[1][4])
}

func TestXLSXExporter_EmptyListWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, XLSXExporter{}.Export(context.Background(), path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{Header()}, rows)
}

func TestCSVExporter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock.csv")

	require.NoError(t, CSVExporter{}.Export(context.Background(), path, sample()))

	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()

	rows, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, wantRows(), rows)
}

func TestExporters_FailOnBadPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	for _, e := range []Exporter{XLSXExporter{}, CSVExporter{}} {
		t.Run(e.Format(), func(t *testing.T) {
			err := e.Export(context.Background(), filepath.Join(blocker, "out."+e.Format()), sample())
			require.Error(t, err)
		})
	}
}

func TestExporters_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, e := range []Exporter{XLSXExporter{}, CSVExporter{}} {
		err := e.Export(ctx, filepath.Join(t.TempDir(), "x."+e.Format()), sample())
		require.ErrorIs(t, err, context.Canceled)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		format    string
		available bool
		want      string
	}{
		{"xlsx", true, FormatXLSX},
		{" XLSX ", true, FormatXLSX},
		{"csv", true, FormatCSV},
		{"none", false, ""},
		{"", false, ""},
		{"ods", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			c := Resolve(tt.format)
			assert.Equal(t, tt.available, c.Available)
			if tt.available {
				require.NotNil(t, c.Exporter)
				assert.Equal(t, tt.want, c.Exporter.Format())
				assert.NoError(t, c.Err())
				return
			}
			assert.Nil(t, c.Exporter)
			assert.NotEmpty(t, c.Reason)
			assert.ErrorIs(t, c.Err(), common.ErrExportUnavailable)
		})
	}
}
