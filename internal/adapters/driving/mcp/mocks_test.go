package mcp

import (
	"context"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
)

// mockFoodService is a mock implementation of driving.FoodSearchService.
type mockFoodService struct {
	matches []domain.FoodMatch
	err     error
	limit   int
}

func (m *mockFoodService) Search(_ context.Context, _ string, limit int) ([]domain.FoodMatch, error) {
	m.limit = limit
	return m.matches, m.err
}

// mockShopService is a mock implementation of driving.ShopSearchService.
type mockShopService struct {
	matches []domain.ProductMatch
	err     error
	count   int
}

func (m *mockShopService) Search(_ context.Context, _ string, count int) ([]domain.ProductMatch, error) {
	m.count = count
	return m.matches, m.err
}
