package records

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

func sampleRecords() []models.Record {
	return []models.Record{
		{ID: "a", Date: "01.01.2024", MaterialKind: "PLA", SpoolSize: "1", CrossSection: "1.75",
			Color: "Red", StorageConditions: "dry", Status: "Added", Remaining: "1 кг"},
		{ID: "b", Date: "02.01.2024", MaterialKind: "PETG", SpoolSize: "0.75", CrossSection: "1.75",
			Color: "Прозрачный", StorageConditions: "", Status: "In use", Remaining: "0.3 кг"},
		{ID: "c", Date: "03.01.2024", MaterialKind: "PLA", SpoolSize: "1", CrossSection: "1.75",
			Color: "Red", StorageConditions: "dry", Status: "Added", Remaining: "1 кг"},
	}
}

func newJSONRepo(t *testing.T) (*JSONRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "warehouse_data.json")
	return NewJSONRepository(path, logging.NewNop()), path
}

func TestJSONRepository_EnsureCreatesEmptyList(t *testing.T) {
	repo, path := newJSONRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Ensure(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	list, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestJSONRepository_EnsureKeepsExistingFile(t *testing.T) {
	repo, path := newJSONRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleRecords()))
	require.NoError(t, repo.Ensure(ctx))

	list, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestJSONRepository_RoundTripPreservesOrderAndValues(t *testing.T) {
	repo, _ := newJSONRepo(t)
	ctx := context.Background()
	want := sampleRecords()

	require.NoError(t, repo.Save(ctx, want))
	got, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestJSONRepository_SaveWritesReadableUTF8(t *testing.T) {
	repo, path := newJSONRepo(t)

	require.NoError(t, repo.Save(context.Background(), sampleRecords()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Прозрачный")
	assert.Contains(t, string(data), "\n  {")
}

func TestJSONRepository_SaveNilWritesEmptyArray(t *testing.T) {
	repo, path := newJSONRepo(t)

	require.NoError(t, repo.Save(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestJSONRepository_LoadLegacyFile(t *testing.T) {
	repo, path := newJSONRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	legacy := `[
  {"Дата": "10.05.2023", "Вид материала": "PLA", "Размер катушки, вес кг.": "1",
   "Сечение": "1.75", "Цвет": "Белый", "Условия хранения": "коробка",
   "Статус": "Используется", "Остаток": "0,4 кг"}
]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	list, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.Equal(t, "", list[0].ID)
	assert.Equal(t, "PLA", list[0].MaterialKind)
	assert.Equal(t, "In use", list[0].Status)
	assert.Equal(t, "0,4 кг", list[0].Remaining)
}

func TestJSONRepository_LoadErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed", func(t *testing.T) {
		repo, path := newJSONRepo(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(`[{"date": `), 0o600))

		_, err := repo.Load(ctx)
		require.ErrorIs(t, err, common.ErrCorruptStore)
	})

	t.Run("empty file", func(t *testing.T) {
		repo, path := newJSONRepo(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		_, err := repo.Load(ctx)
		require.ErrorIs(t, err, common.ErrCorruptStore)
	})

	t.Run("missing file", func(t *testing.T) {
		repo, _ := newJSONRepo(t)

		_, err := repo.Load(ctx)
		require.Error(t, err)
		require.NotErrorIs(t, err, common.ErrCorruptStore)
	})
}

func TestJSONRepository_SaveFailsWhenDirIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	repo := NewJSONRepository(filepath.Join(blocker, "data.json"), logging.NewNop())
	require.Error(t, repo.Save(context.Background(), sampleRecords()))
	require.Error(t, repo.Ensure(context.Background()))
}
