package services

import (
	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

// Summarize counts list and sums the parsed remaining quantities.
func Summarize(list []models.Record) models.Summary {
	total := decimal.Zero
	for _, r := range list {
		total = total.Add(r.Weight())
	}
	return models.Summary{Count: len(list), Total: total}
}
