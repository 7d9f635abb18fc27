package cli

import (
	"context"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
)

// mockFoodSearch is a mock implementation of driving.FoodSearchService.
type mockFoodSearch struct {
	matches []domain.FoodMatch
	err     error
}

func (m *mockFoodSearch) Search(_ context.Context, _ string, _ int) ([]domain.FoodMatch, error) {
	return m.matches, m.err
}

// mockShopSearch is a mock implementation of driving.ShopSearchService.
type mockShopSearch struct {
	matches []domain.ProductMatch
	err     error
}

func (m *mockShopSearch) Search(_ context.Context, _ string, _ int) ([]domain.ProductMatch, error) {
	return m.matches, m.err
}

// mockSync is a mock implementation of driving.SyncService.
type mockSync struct {
	total int
	err   error
}

func (m *mockSync) Sync(_ context.Context) (int, error) {
	return m.total, m.err
}

// mockSettingsStore is an in-memory driven.SettingsStore.
type mockSettingsStore struct {
	settings domain.ShopSettings
	loadErr  error
	saveErr  error
}

func (m *mockSettingsStore) Load() (domain.ShopSettings, error) {
	return m.settings, m.loadErr
}

func (m *mockSettingsStore) Save(settings domain.ShopSettings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.settings = settings
	return nil
}

// setupTestServices installs mock services with canned results and
// returns a cleanup function restoring the previous ones.
func setupTestServices() func() {
	oldFood := foodService
	oldShop := shopService
	oldSync := syncService
	oldSettings := settingsStore

	foodService = &mockFoodSearch{
		matches: []domain.FoodMatch{
			{Item: domain.FoodItem{ID: "food-1", NameDa: "hvedemel", NameEn: "wheat flour", KcalPer100g: 364}},
		},
	}
	shopService = &mockShopSearch{
		matches: []domain.ProductMatch{
			{Product: domain.Product{ID: "p1", Provider: "feed-a", Name: "Kokkekniv", Price: 19900, InStock: true}},
		},
	}
	syncService = &mockSync{total: 42}
	settingsStore = &mockSettingsStore{}

	return func() {
		foodService = oldFood
		shopService = oldShop
		syncService = oldSync
		settingsStore = oldSettings
	}
}
