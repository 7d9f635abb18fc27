package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ports/driven"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ports/driving"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ranking"
	"github.com/madkurv-labs/varesearch-cli/internal/logger"
)

// Ensure ShopSearchService implements the interface.
var _ driving.ShopSearchService = (*ShopSearchService)(nil)

// ShopSearchService fans a query out to every configured catalog
// provider, ranks the merged pool, applies the diversity adjustment
// and caches the canonical result set.
type ShopSearchService struct {
	providers []driven.CatalogProvider
	cache     driven.ResultCache
	settings  domain.ShopSettings
	scorer    *ranking.Scorer
	adjuster  *ranking.Adjuster
}

// NewShopSearchService creates a shop search service. The cache is
// optional; without one every search recomputes.
func NewShopSearchService(
	providers []driven.CatalogProvider,
	cache driven.ResultCache,
	settings domain.ShopSettings,
	cfg ranking.Config,
	adjustCfg ranking.AdjusterConfig,
) *ShopSearchService {
	return &ShopSearchService{
		providers: providers,
		cache:     cache,
		settings:  settings,
		scorer:    ranking.NewScorer(cfg),
		adjuster:  ranking.NewAdjuster(adjustCfg, settings),
	}
}

// Search returns at most count adjusted matches for the query.
//
// Internally the ranking always runs at the canonical count so one
// cached list can serve any smaller request by truncation. Only
// requests for exactly the canonical count are cache-eligible; every
// other count bypasses the cache and recomputes.
func (s *ShopSearchService) Search(ctx context.Context, query string, count int) ([]domain.ProductMatch, error) {
	logger.Section("Shop Search")
	logger.Debug("Query: %q, count: %d", query, count)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.ProductMatch{}, nil
	}
	if len(s.providers) == 0 {
		return nil, domain.ErrNoProviders
	}

	canonical := s.settings.EffectiveCanonicalCount()
	if count <= 0 {
		count = canonical
	}

	// The cache key is the raw literal query, not the replaced or
	// normalised form. Distinct literal strings never share an entry.
	cacheKey := query
	cacheable := s.cache != nil && count == canonical
	if cacheable {
		if cached, ok := s.cache.Get(cacheKey); ok {
			logger.Debug("Cache hit: %d matches", len(cached))
			return truncate(cached, count), nil
		}
		logger.Debug("Cache miss")
	}

	query = s.settings.Replace(query)

	pool, err := s.aggregate(ctx, query)
	if err != nil {
		return nil, err
	}
	logger.Debug("Merged pool: %d products", len(pool))

	expanded := s.scorer.Expand(query)
	scored := ranking.Rank(s.scorer, expanded, pool, canonical, ranking.RankOptions{})

	matches := make([]domain.ProductMatch, len(scored))
	for i, sc := range scored {
		matches[i] = domain.ProductMatch{Product: sc.Candidate, Rank: sc.Rank}
	}

	matches = s.adjuster.Adjust(matches)
	logger.Info("Shop search results: %d (before truncation)", len(matches))

	if cacheable {
		s.cache.Put(cacheKey, matches)
	}

	return truncate(matches, count), nil
}

// aggregate issues one concurrent bounded fetch per provider and
// concatenates the results. Any provider failure fails the whole
// search: ranking quality depends on population completeness, so a
// silently partial pool is worse than an error.
func (s *ShopSearchService) aggregate(ctx context.Context, query string) ([]domain.Product, error) {
	limit := s.settings.EffectiveProviderLimit()

	var mu sync.Mutex
	pool := make([]domain.Product, 0, limit*len(s.providers))

	g, ctx := errgroup.WithContext(ctx)
	for _, provider := range s.providers {
		g.Go(func() error {
			products, err := provider.FetchProducts(ctx, query, 0, limit)
			if err != nil {
				logger.Warn("Provider %s failed: %v", provider.Name(), err)
				return fmt.Errorf("%w: %s: %w", domain.ErrProviderFetch, provider.Name(), err)
			}
			logger.Debug("Provider %s: %d products", provider.Name(), len(products))
			mu.Lock()
			pool = append(pool, products...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return pool, nil
}

func truncate(matches []domain.ProductMatch, count int) []domain.ProductMatch {
	if len(matches) <= count {
		out := make([]domain.ProductMatch, len(matches))
		copy(out, matches)
		return out
	}
	out := make([]domain.ProductMatch, count)
	copy(out, matches[:count])
	return out
}
