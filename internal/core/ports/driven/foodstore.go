package driven

import (
	"context"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
)

// FoodStore gives access to the full nutrition catalog.
// The catalog is small enough to rank in full on every search; it is
// refreshed out-of-band (file reload, periodic sync), not per query.
type FoodStore interface {
	// All returns every food item in the catalog.
	All(ctx context.Context) ([]domain.FoodItem, error)
}
