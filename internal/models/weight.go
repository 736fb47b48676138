package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

const WeightUnit = "кг"

var (
	// ConsumeStep is the quantity taken by one consume action, in kg.
	ConsumeStep = decimal.RequireFromString("0.1")
	// DepletedThreshold is the remaining quantity at or below which a
	// consume action marks the record depleted.
	DepletedThreshold = decimal.RequireFromString("0.1")
)

// DepletedRemaining is written to a record that has been used up.
const DepletedRemaining = "0 " + WeightUnit

// unit tokens are stripped longest first so "кг" is not left as "к".
var weightReplacer = strings.NewReplacer(
	"кг", "",
	"kg", "",
	"г", "",
	"g", "",
	",", ".",
)

// ParseWeight extracts the numeric magnitude from a quantity string such as
// "0,9 кг". Unit tokens are removed without conversion, the decimal comma is
// accepted, and only the first token counts. Anything unparsable yields zero.
func ParseWeight(s string) decimal.Decimal {
	parts := strings.Fields(weightReplacer.Replace(strings.ToLower(s)))
	if len(parts) == 0 {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(parts[0])
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatWeight renders d with one decimal place and the kg unit, rounding
// half away from zero.
func FormatWeight(d decimal.Decimal) string {
	return d.StringFixed(1) + " " + WeightUnit
}
