package records

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/filex"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

// JSONRepository stores the list as an indented JSON array in one file.
type JSONRepository struct {
	path string
	log  logging.Logger
}

func NewJSONRepository(path string, log logging.Logger) *JSONRepository {
	return &JSONRepository{path: path, log: log.With("store", "json", "path", path)}
}

// Ensure writes "[]" to the file if it does not exist.
func (r *JSONRepository) Ensure(ctx context.Context) error {
	ok, err := filex.Exists(r.path)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	if err := filex.WriteFileAtomic(r.path, []byte("[]\n"), 0o600); err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	r.log.Info(ctx, "created empty store")
	return nil
}

// Load decodes the file. Malformed content is reported as
// common.ErrCorruptStore.
func (r *JSONRepository) Load(ctx context.Context) ([]models.Record, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	var list []models.Record
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrCorruptStore, r.path, err)
	}

	r.log.Debug(ctx, "store loaded", "records", len(list))
	return list, nil
}

// Save overwrites the file with the whole list.
func (r *JSONRepository) Save(ctx context.Context, list []models.Record) error {
	if list == nil {
		list = []models.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(list); err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	if err := filex.WriteFileAtomic(r.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write store: %w", err)
	}

	r.log.Debug(ctx, "store saved", "records", len(list))
	return nil
}

func (r *JSONRepository) Close() error { return nil }
