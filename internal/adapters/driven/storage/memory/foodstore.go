// Package memory provides in-memory implementations of the storage
// ports, used by tests and installs small enough to skip SQLite.
package memory

import (
	"context"
	"sync"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ports/driven"
)

// Ensure FoodStore implements the interface.
var _ driven.FoodStore = (*FoodStore)(nil)

// FoodStore is an in-memory implementation of driven.FoodStore.
type FoodStore struct {
	mu    sync.RWMutex
	items []domain.FoodItem
}

// NewFoodStore creates an empty in-memory food store.
func NewFoodStore() *FoodStore {
	return &FoodStore{}
}

// Replace swaps the whole catalog. Used on (re)load.
func (s *FoodStore) Replace(items []domain.FoodItem) {
	copied := make([]domain.FoodItem, len(items))
	copy(copied, items)

	s.mu.Lock()
	s.items = copied
	s.mu.Unlock()
}

// All returns every food item in the catalog.
func (s *FoodStore) All(_ context.Context) ([]domain.FoodItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.FoodItem, len(s.items))
	copy(items, s.items)
	return items, nil
}
