package records

import (
	"context"

	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

// Repository reads and writes the complete record list.
type Repository interface {
	// Ensure prepares an empty store if none exists yet.
	Ensure(ctx context.Context) error

	// Load returns every stored record in saved order.
	Load(ctx context.Context) ([]models.Record, error)

	// Save replaces the stored list with records.
	Save(ctx context.Context, records []models.Record) error

	Close() error
}
