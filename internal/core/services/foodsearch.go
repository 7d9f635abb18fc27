package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ports/driven"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ports/driving"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ranking"
	"github.com/madkurv-labs/varesearch-cli/internal/logger"
)

// Ensure FoodSearchService implements the interface.
var _ driving.FoodSearchService = (*FoodSearchService)(nil)

// FoodSearchService ranks the in-memory nutrition catalog.
type FoodSearchService struct {
	store        driven.FoodStore
	scorer       *ranking.Scorer
	replacements map[string]string
}

// NewFoodSearchService creates a food search service. Replacements
// rewrite known-ambiguous queries before ranking ("mel" means
// "hvedemel" in recipe context); may be nil.
func NewFoodSearchService(store driven.FoodStore, cfg ranking.Config, replacements map[string]string) *FoodSearchService {
	return &FoodSearchService{
		store:        store,
		scorer:       ranking.NewScorer(cfg),
		replacements: replacements,
	}
}

// Search ranks every catalog item against the query and returns the
// best limit matches. Items without searchable text sort last rather
// than erroring out.
func (s *FoodSearchService) Search(ctx context.Context, query string, limit int) ([]domain.FoodMatch, error) {
	logger.Section("Food Search")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.FoodMatch{}, nil
	}

	if s.store == nil {
		return nil, domain.ErrFoodStoreUnavailable
	}

	if replaced, ok := s.replacements[query]; ok && replaced != "" {
		logger.Debug("Replacement: %q -> %q", query, replaced)
		query = replaced
	}

	items, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load food catalog: %w", err)
	}
	logger.Debug("Catalog size: %d items", len(items))

	expanded := s.scorer.Expand(query)
	scored := ranking.Rank(s.scorer, expanded, items, limit, ranking.RankOptions{
		KeepUnsearchable: true,
	})

	matches := make([]domain.FoodMatch, len(scored))
	for i, sc := range scored {
		matches[i] = domain.FoodMatch{Item: sc.Candidate, Rank: sc.Rank}
	}

	logger.Info("Food search results: %d", len(matches))
	return matches, nil
}
