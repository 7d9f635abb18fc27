package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ports/driven"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ranking"
)

// mockFoodStore implements driven.FoodStore for testing.
type mockFoodStore struct {
	items []domain.FoodItem
	err   error
}

func (m *mockFoodStore) All(_ context.Context) ([]domain.FoodItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func testFoodItems() []domain.FoodItem {
	return []domain.FoodItem{
		{ID: "1", NameDa: "hvedemel", NameEn: "wheat flour", KcalPer100g: 364},
		{ID: "2", NameDa: "fuldkornshvedemel", NameEn: "whole wheat flour"},
		{ID: "3", NameDa: "kartoffel", NameEn: "potato", Category: "kartofler"},
		{ID: "4", NameDa: "basilikum", NameEn: "basil", Category: "krydderurter"},
		{ID: "5", NameDa: "smør", NameEn: "butter"},
	}
}

func newTestFoodService(store driven.FoodStore, replacements map[string]string) *FoodSearchService {
	return NewFoodSearchService(store, ranking.DefaultConfig(), replacements)
}

func TestFoodSearchService_Search_EmptyQuery(t *testing.T) {
	service := newTestFoodService(&mockFoodStore{items: testFoodItems()}, nil)

	matches, err := service.Search(context.Background(), "   ", 10)

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFoodSearchService_Search_ExactMatchFirst(t *testing.T) {
	service := newTestFoodService(&mockFoodStore{items: testFoodItems()}, nil)

	matches, err := service.Search(context.Background(), "hvedemel", 10)

	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "hvedemel", matches[0].Item.NameDa)
}

func TestFoodSearchService_Search_Replacement(t *testing.T) {
	replacements := map[string]string{"mel": "hvedemel"}
	service := newTestFoodService(&mockFoodStore{items: testFoodItems()}, replacements)

	matches, err := service.Search(context.Background(), "mel", 10)

	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Contains(t, matches[0].Item.NameDa, "hvedemel")
}

func TestFoodSearchService_Search_PluralCategory(t *testing.T) {
	service := newTestFoodService(&mockFoodStore{items: testFoodItems()}, nil)

	matches, err := service.Search(context.Background(), "kartoffel", 10)

	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "kartoffel", matches[0].Item.NameDa)
}

func TestFoodSearchService_Search_MultiWordFallback(t *testing.T) {
	service := newTestFoodService(&mockFoodStore{items: testFoodItems()}, nil)

	matches, err := service.Search(context.Background(), "frisk basilikum", 10)

	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "basilikum", matches[0].Item.NameDa)
}

func TestFoodSearchService_Search_Limit(t *testing.T) {
	service := newTestFoodService(&mockFoodStore{items: testFoodItems()}, nil)

	matches, err := service.Search(context.Background(), "hvedemel", 1)

	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestFoodSearchService_Search_UnsearchableKeptLast(t *testing.T) {
	items := append(testFoodItems(), domain.FoodItem{ID: "6"})
	service := newTestFoodService(&mockFoodStore{items: items}, nil)

	matches, err := service.Search(context.Background(), "hvedemel", 0)

	require.NoError(t, err)
	require.NotEmpty(t, matches)
	last := matches[len(matches)-1]
	assert.Equal(t, "6", last.Item.ID)
	assert.Equal(t, ranking.RankUnsearchable, last.Rank)
}

func TestFoodSearchService_Search_StoreError(t *testing.T) {
	service := newTestFoodService(&mockFoodStore{err: errors.New("disk gone")}, nil)

	_, err := service.Search(context.Background(), "hvedemel", 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load food catalog")
}

func TestFoodSearchService_Search_NoStore(t *testing.T) {
	service := newTestFoodService(nil, nil)

	_, err := service.Search(context.Background(), "hvedemel", 10)

	assert.ErrorIs(t, err, domain.ErrFoodStoreUnavailable)
}
