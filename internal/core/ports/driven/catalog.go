package driven

import (
	"context"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
)

// CatalogProvider fetches candidate products from one backing catalog.
// Each affiliate feed backend (local snapshot, remote feed API)
// implements this interface; results are already normalised into the
// domain.Product shape.
type CatalogProvider interface {
	// Name returns the provider identifier used in logs and results.
	Name() string

	// FetchProducts returns a window of products that loosely match
	// the query. Providers pre-filter broadly (any query word,
	// substring level); all real ranking happens after the merge.
	// The window is bounded by skip and limit as a guardrail against
	// runaway scan cost.
	FetchProducts(ctx context.Context, query string, skip, limit int) ([]domain.Product, error)
}
