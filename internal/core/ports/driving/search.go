package driving

import (
	"context"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
)

// FoodSearchService ranks the nutrition catalog against a query.
type FoodSearchService interface {
	// Search returns food items ordered by ascending rank, at most
	// limit entries. An empty query returns an empty result.
	Search(ctx context.Context, query string, limit int) ([]domain.FoodMatch, error)
}

// ShopSearchService searches the aggregated affiliate catalogs.
type ShopSearchService interface {
	// Search returns at most count products ordered by ascending
	// adjusted rank. A provider fetch failure fails the search; a
	// partial pool would silently bias the ranking.
	Search(ctx context.Context, query string, count int) ([]domain.ProductMatch, error)
}
