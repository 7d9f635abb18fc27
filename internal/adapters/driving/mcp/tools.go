package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FoodSearchInput is the input schema for the food_search tool.
type FoodSearchInput struct {
	Query string `json:"query" jsonschema:"the food item to look up, in Danish"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// FoodSearchOutput is the output schema for the food_search tool.
type FoodSearchOutput struct {
	Results []FoodResultOutput `json:"results"`
	Count   int                `json:"count"`
}

// FoodResultOutput represents a single food search result.
type FoodResultOutput struct {
	ID             string  `json:"id"`
	NameDa         string  `json:"name_da"`
	NameEn         string  `json:"name_en,omitempty"`
	Category       string  `json:"category,omitempty"`
	KcalPer100g    float64 `json:"kcal_per_100g"`
	ProteinPer100g float64 `json:"protein_per_100g"`
	FatPer100g     float64 `json:"fat_per_100g"`
	CarbsPer100g   float64 `json:"carbs_per_100g"`
}

// ShopSearchInput is the input schema for the shop_search tool.
type ShopSearchInput struct {
	Query string `json:"query" jsonschema:"the product to search for, in Danish"`
	Count int    `json:"count,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// ShopSearchOutput is the output schema for the shop_search tool.
type ShopSearchOutput struct {
	Results []ShopResultOutput `json:"results"`
	Count   int                `json:"count"`
}

// ShopResultOutput represents a single shop search result.
type ShopResultOutput struct {
	ID       string `json:"id"`
	Provider string `json:"provider"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Brand    string `json:"brand,omitempty"`
	URL      string `json:"url"`
	Price    int64  `json:"price"`
	OldPrice int64  `json:"old_price,omitempty"`
	InStock  bool   `json:"in_stock"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	if s.ports.Food != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "food_search",
			Description: "Search the nutrition catalog for food items",
		}, s.handleFoodSearch)
	}
	if s.ports.Shop != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "shop_search",
			Description: "Search the affiliate shop catalogs for products",
		}, s.handleShopSearch)
	}
}

// handleFoodSearch handles the food_search tool invocation.
func (s *Server) handleFoodSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FoodSearchInput,
) (*mcp.CallToolResult, FoodSearchOutput, error) {
	if s.ports.Food == nil {
		return nil, FoodSearchOutput{}, errors.New("food search not available")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	matches, err := s.ports.Food.Search(ctx, input.Query, limit)
	if err != nil {
		return nil, FoodSearchOutput{}, err
	}

	output := FoodSearchOutput{
		Results: make([]FoodResultOutput, len(matches)),
		Count:   len(matches),
	}
	for i := range matches {
		item := matches[i].Item
		output.Results[i] = FoodResultOutput{
			ID:             item.ID,
			NameDa:         item.NameDa,
			NameEn:         item.NameEn,
			Category:       item.Category,
			KcalPer100g:    item.KcalPer100g,
			ProteinPer100g: item.ProteinPer100g,
			FatPer100g:     item.FatPer100g,
			CarbsPer100g:   item.CarbsPer100g,
		}
	}

	return nil, output, nil
}

// handleShopSearch handles the shop_search tool invocation.
func (s *Server) handleShopSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ShopSearchInput,
) (*mcp.CallToolResult, ShopSearchOutput, error) {
	if s.ports.Shop == nil {
		return nil, ShopSearchOutput{}, errors.New("shop search not available")
	}

	count := input.Count
	if count <= 0 {
		count = 10
	}

	matches, err := s.ports.Shop.Search(ctx, input.Query, count)
	if err != nil {
		return nil, ShopSearchOutput{}, err
	}

	output := ShopSearchOutput{
		Results: make([]ShopResultOutput, len(matches)),
		Count:   len(matches),
	}
	for i := range matches {
		p := matches[i].Product
		output.Results[i] = ShopResultOutput{
			ID:       p.ID,
			Provider: p.Provider,
			Name:     p.Name,
			Category: p.Category,
			Brand:    p.Brand,
			URL:      p.URL,
			Price:    p.Price,
			OldPrice: p.OldPrice,
			InStock:  p.InStock,
		}
	}

	return nil, output, nil
}
