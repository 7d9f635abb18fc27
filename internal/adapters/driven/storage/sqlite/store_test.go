package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), "snapshot")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "p1",
			Provider:    "feed-a",
			Name:        "Mega sej køkkenkniv",
			Category:    "Køkken",
			Brand:       "Sharpex",
			Description: "skarp kniv til køkkenet",
			Price:       19900,
			OldPrice:    24900,
			InStock:     true,
			Tags:        []string{"køkken", "kniv"},
		},
		{
			ID:       "p2",
			Provider: "feed-a",
			Name:     "Grydeske",
			Category: "Køkken",
			Price:    4900,
		},
		{
			ID:       "p3",
			Provider: "feed-b",
			Name:     "Knivsæt 3 dele",
			Category: "Knive",
			Price:    39900,
			InStock:  true,
		},
	}
}

func TestStore_SaveAndFetch(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveProducts(ctx, sampleProducts()))

	products, err := store.FetchProducts(ctx, "kniv", 0, 10)

	require.NoError(t, err)
	require.Len(t, products, 2)

	byID := map[string]domain.Product{}
	for _, p := range products {
		byID[p.ID] = p
	}
	require.Contains(t, byID, "p1")
	require.Contains(t, byID, "p3")
	assert.True(t, byID["p1"].InStock)
	assert.Equal(t, int64(24900), byID["p1"].OldPrice)
	assert.Equal(t, []string{"køkken", "kniv"}, byID["p1"].Tags)
}

func TestStore_FetchProducts_MultiWordMatchesAnyWord(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveProducts(ctx, sampleProducts()))

	products, err := store.FetchProducts(ctx, "skarp gryde", 0, 10)

	require.NoError(t, err)
	// "skarp" hits p1's description, "gryde" hits p2's name.
	assert.Len(t, products, 2)
}

func TestStore_FetchProducts_Window(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveProducts(ctx, sampleProducts()))

	first, err := store.FetchProducts(ctx, "kniv", 0, 1)
	require.NoError(t, err)
	second, err := store.FetchProducts(ctx, "kniv", 1, 1)
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.NotEqual(t, first[0].ID, second[0].ID)
}

func TestStore_FetchProducts_EmptyQuery(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveProducts(ctx, sampleProducts()))

	products, err := store.FetchProducts(ctx, "   ", 0, 10)

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestStore_SaveProducts_AssignsIDs(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveProducts(ctx, []domain.Product{
		{Provider: "feed-a", Name: "kniv uden id"},
	}))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_SaveProducts_Upserts(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveProducts(ctx, sampleProducts()))
	updated := sampleProducts()
	updated[0].Price = 9900
	require.NoError(t, store.SaveProducts(ctx, updated))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	products, err := store.FetchProducts(ctx, "køkkenkniv", 0, 10)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(9900), products[0].Price)
}

func TestStore_DeleteProvider(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveProducts(ctx, sampleProducts()))

	require.NoError(t, store.DeleteProvider(ctx, "feed-a"))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
