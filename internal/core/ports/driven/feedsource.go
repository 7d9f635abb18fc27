package driven

import (
	"context"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
)

// FeedSource lists the full product feed of one provider, used by
// sync to refresh the local catalog snapshot.
type FeedSource interface {
	// Name returns the provider identifier.
	Name() string

	// ListProducts returns one page of the feed. A page shorter than
	// limit marks the end of the feed.
	ListProducts(ctx context.Context, skip, limit int) ([]domain.Product, error)
}

// CatalogWriter persists synced feed products.
type CatalogWriter interface {
	// SaveProducts upserts a batch of products.
	SaveProducts(ctx context.Context, products []domain.Product) error

	// DeleteProvider clears one provider's products before a full
	// re-sync.
	DeleteProvider(ctx context.Context, provider string) error
}
