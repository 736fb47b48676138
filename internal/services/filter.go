package services

import (
	"strings"

	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

// FilterMode tells which query produced the current view.
type FilterMode int

const (
	FilterNone FilterMode = iota
	FilterField
	FilterGlobal
)

// FilterState describes the active query. Field is set only for FilterField.
type FilterState struct {
	Mode  FilterMode
	Field models.Field
	Query string
}

func (f FilterState) String() string {
	switch f.Mode {
	case FilterField:
		return string(f.Field) + " contains " + `"` + f.Query + `"`
	case FilterGlobal:
		return `any field contains "` + f.Query + `"`
	default:
		return "none"
	}
}

// FilterByField returns the records whose value at field contains query,
// ignoring case. Order is preserved. An empty query selects everything.
func FilterByField(list []models.Record, field models.Field, query string) []models.Record {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Record, 0, len(list))
	for _, r := range list {
		if q == "" || strings.Contains(strings.ToLower(r.Get(field)), q) {
			out = append(out, r)
		}
	}
	return out
}

// SearchAll returns the records where any schema value contains query,
// ignoring case. Order is preserved. An empty query selects everything.
func SearchAll(list []models.Record, query string) []models.Record {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Record, 0, len(list))
	for _, r := range list {
		if q == "" || anyValueContains(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func anyValueContains(r models.Record, lowerQuery string) bool {
	for _, v := range r.Values() {
		if strings.Contains(strings.ToLower(v), lowerQuery) {
			return true
		}
	}
	return false
}
