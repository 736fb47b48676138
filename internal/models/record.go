// Package models defines the stock record, its fixed schema and the
// quantity helpers used by the inventory service.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the format of the date pre-filled for new records.
const DateLayout = "02.01.2006"

// Record is one stock entry. All schema values are strings; ID is an opaque
// identifier assigned when the record is first stored.
type Record struct {
	ID                string `json:"id"`
	Date              string `json:"date" validate:"required"`
	MaterialKind      string `json:"material_kind" validate:"required"`
	SpoolSize         string `json:"spool_size"`
	CrossSection      string `json:"cross_section"`
	Color             string `json:"color"`
	StorageConditions string `json:"storage_conditions"`
	Status            string `json:"status"`
	Remaining         string `json:"remaining" validate:"required"`
}

// NewRecord returns a blank record dated now with the "Added" status.
func NewRecord(now time.Time) Record {
	return Record{
		Date:   now.Format(DateLayout),
		Status: string(StatusAdded),
	}
}

func (r *Record) ptr(f Field) *string {
	switch f {
	case FieldDate:
		return &r.Date
	case FieldMaterialKind:
		return &r.MaterialKind
	case FieldSpoolSize:
		return &r.SpoolSize
	case FieldCrossSection:
		return &r.CrossSection
	case FieldColor:
		return &r.Color
	case FieldStorageConditions:
		return &r.StorageConditions
	case FieldStatus:
		return &r.Status
	case FieldRemaining:
		return &r.Remaining
	}
	return nil
}

// Get returns the value of f, or "" for a field outside the schema.
func (r Record) Get(f Field) string {
	if p := r.ptr(f); p != nil {
		return *p
	}
	return ""
}

// Set assigns v to f.
func (r *Record) Set(f Field, v string) error {
	p := r.ptr(f)
	if p == nil {
		return fmt.Errorf("set %q: unknown field", f)
	}
	*p = v
	return nil
}

// Values lists the schema values in Fields order.
func (r Record) Values() []string {
	out := make([]string, len(Fields))
	for i, f := range Fields {
		out[i] = r.Get(f)
	}
	return out
}

// Normalize trims every value and canonicalises the status label.
func (r *Record) Normalize() {
	for _, f := range Fields {
		p := r.ptr(f)
		*p = strings.TrimSpace(*p)
	}
	r.Status = NormalizeStatus(r.Status)
}

// Weight is the parsed remaining quantity.
func (r Record) Weight() decimal.Decimal {
	return ParseWeight(r.Remaining)
}

// Consume takes ConsumeStep from the remaining quantity. A record at or
// below DepletedThreshold becomes depleted with DepletedRemaining.
func (r *Record) Consume() {
	w := ParseWeight(r.Remaining)
	if w.LessThanOrEqual(DepletedThreshold) {
		r.Remaining = DepletedRemaining
		r.Status = string(StatusDepleted)
		return
	}
	r.Remaining = FormatWeight(w.Sub(ConsumeStep))
	r.Status = string(StatusInUse)
}

// UnmarshalJSON accepts current keys and legacy column titles. Unknown keys
// are ignored and missing ones stay empty. Numbers keep their literal text;
// other non-string values are rendered with fmt. A current key wins over its
// legacy alias.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	*r = Record{ID: stringify(raw["id"])}
	for title, f := range legacyColumns {
		if v, ok := raw[title]; ok {
			*r.ptr(f) = stringify(v)
		}
	}
	for _, f := range Fields {
		if v, ok := raw[string(f)]; ok {
			*r.ptr(f) = stringify(v)
		}
	}
	r.Status = NormalizeStatus(r.Status)
	return nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
