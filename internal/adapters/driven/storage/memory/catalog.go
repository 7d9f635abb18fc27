package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ports/driven"
)

// Ensure CatalogProvider implements the interface.
var _ driven.CatalogProvider = (*CatalogProvider)(nil)

// CatalogProvider is an in-memory implementation of
// driven.CatalogProvider backed by a fixed product slice.
type CatalogProvider struct {
	name string

	mu       sync.RWMutex
	products []domain.Product
}

// NewCatalogProvider creates an in-memory provider with the given name.
func NewCatalogProvider(name string, products []domain.Product) *CatalogProvider {
	p := &CatalogProvider{name: name}
	p.Replace(products)
	return p
}

// Name returns the provider identifier.
func (p *CatalogProvider) Name() string { return p.name }

// Replace swaps the product set.
func (p *CatalogProvider) Replace(products []domain.Product) {
	copied := make([]domain.Product, len(products))
	copy(copied, products)

	p.mu.Lock()
	p.products = copied
	p.mu.Unlock()
}

// FetchProducts returns the skip/limit window of products whose name,
// category or description contains any query word, case-insensitive.
// The broad pre-filter mirrors what the feed backends do; real
// ranking happens after the merge.
func (p *CatalogProvider) FetchProducts(_ context.Context, query string, skip, limit int) ([]domain.Product, error) {
	words := strings.Fields(strings.ToLower(query))

	p.mu.RLock()
	defer p.mu.RUnlock()

	matched := make([]domain.Product, 0, limit)
	seen := 0
	for _, product := range p.products {
		if !containsAnyWord(product, words) {
			continue
		}
		if seen < skip {
			seen++
			continue
		}
		matched = append(matched, product)
		if limit > 0 && len(matched) >= limit {
			break
		}
	}
	return matched, nil
}

func containsAnyWord(p domain.Product, words []string) bool {
	if len(words) == 0 {
		return false
	}
	haystack := strings.ToLower(p.Name + " " + p.Category + " " + p.Description)
	for _, word := range words {
		if strings.Contains(haystack, word) {
			return true
		}
	}
	return false
}
