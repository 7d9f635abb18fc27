// Package mcp provides an MCP (Model Context Protocol) server adapter
// for varesearch. It lets AI assistants search the food and shop
// catalogs through the food_search and shop_search tools.
package mcp

import "errors"

// ErrMissingSearchService is returned when neither search service is provided.
var ErrMissingSearchService = errors.New("mcp: at least one search service is required")
