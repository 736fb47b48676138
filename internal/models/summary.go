package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Summary is the status line shown under the table.
type Summary struct {
	Count int
	Total decimal.Decimal
}

func (s Summary) String() string {
	return fmt.Sprintf("Records: %d | Total remaining: %s", s.Count, FormatWeight(s.Total))
}
