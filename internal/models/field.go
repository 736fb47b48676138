package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
)

// Field names one column of the record schema. The string value is the
// storage key and the export header.
type Field string

const (
	FieldDate              Field = "date"
	FieldMaterialKind      Field = "material_kind"
	FieldSpoolSize         Field = "spool_size"
	FieldCrossSection      Field = "cross_section"
	FieldColor             Field = "color"
	FieldStorageConditions Field = "storage_conditions"
	FieldStatus            Field = "status"
	FieldRemaining         Field = "remaining"
)

// Fields is the full schema in display and export order.
var Fields = []Field{
	FieldDate,
	FieldMaterialKind,
	FieldSpoolSize,
	FieldCrossSection,
	FieldColor,
	FieldStorageConditions,
	FieldStatus,
	FieldRemaining,
}

// FilterFields are the fields offered for single-field filtering.
var FilterFields = []Field{
	FieldMaterialKind,
	FieldSpoolSize,
	FieldCrossSection,
	FieldColor,
	FieldStatus,
	FieldRemaining,
}

// IdentityFields locate a record regardless of its status and remaining
// quantity.
var IdentityFields = []Field{
	FieldDate,
	FieldMaterialKind,
	FieldSpoolSize,
	FieldCrossSection,
	FieldColor,
	FieldStorageConditions,
}

var labels = map[Field]string{
	FieldDate:              "Date",
	FieldMaterialKind:      "Material",
	FieldSpoolSize:         "Spool size, kg",
	FieldCrossSection:      "Cross-section",
	FieldColor:             "Color",
	FieldStorageConditions: "Storage conditions",
	FieldStatus:            "Status",
	FieldRemaining:         "Remaining",
}

// legacyColumns maps column titles written by older data files.
var legacyColumns = map[string]Field{
	"Дата":                    FieldDate,
	"Вид материала":           FieldMaterialKind,
	"Размер катушки, вес кг.": FieldSpoolSize,
	"Сечение":                 FieldCrossSection,
	"Цвет":                    FieldColor,
	"Условия хранения":        FieldStorageConditions,
	"Статус":                  FieldStatus,
	"Остаток":                 FieldRemaining,
}

// Label is the human-readable column title.
func (f Field) Label() string {
	if l, ok := labels[f]; ok {
		return l
	}
	return string(f)
}

func (f Field) Valid() bool {
	_, ok := labels[f]
	return ok
}

// Filterable reports whether f is in FilterFields.
func (f Field) Filterable() bool {
	for _, ff := range FilterFields {
		if ff == f {
			return true
		}
	}
	return false
}

// ParseField resolves a storage key, a legacy column title or a label
// (case-insensitive) to a Field.
func ParseField(s string) (Field, error) {
	s = strings.TrimSpace(s)
	if f, ok := lookupField(s); ok {
		return f, nil
	}
	for _, f := range Fields {
		if strings.EqualFold(s, string(f)) || strings.EqualFold(s, f.Label()) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownField, s)
}

// lookupField is the exact-match path used when decoding stored keys.
func lookupField(key string) (Field, bool) {
	if f := Field(key); f.Valid() {
		return f, true
	}
	f, ok := legacyColumns[key]
	return f, ok
}
