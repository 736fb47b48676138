// Package export writes the full record list to a spreadsheet file.
//
// The available format is decided once at startup by Resolve; callers ask
// the returned Capability whether export can run at all instead of trying
// and failing.
package export

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
	FormatNone = "none"
)

// Exporter writes one header row (schema field names) followed by one row
// per record, values verbatim.
type Exporter interface {
	Format() string
	Export(ctx context.Context, path string, list []models.Record) error
}

// Header is the first row of every export.
func Header() []string {
	out := make([]string, len(models.Fields))
	for i, f := range models.Fields {
		out[i] = string(f)
	}
	return out
}

// DefaultPath names an export file in dir stamped with now.
func DefaultPath(dir, format string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("warehouse_%s.%s", now.Format("20060102-150405"), format))
}
