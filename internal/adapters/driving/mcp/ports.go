package mcp

import (
	"github.com/madkurv-labs/varesearch-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Food searches the nutrition catalog.
	Food driving.FoodSearchService

	// Shop searches the aggregated affiliate catalogs.
	Shop driving.ShopSearchService
}

// Validate ensures at least one search surface is available.
func (p *Ports) Validate() error {
	if p.Food == nil && p.Shop == nil {
		return ErrMissingSearchService
	}
	return nil
}
