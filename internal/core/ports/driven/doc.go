// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - CatalogProvider: fetches shop products from one affiliate feed backend
//   - FoodStore: holds the nutrition catalog in memory
//   - ResultCache: memoises ranked shop results per query
//   - SettingsStore: persists shop search settings
//   - FeedSource, CatalogWriter: full-feed paging and snapshot writes
//     for the sync path
//
// The cache is a performance optimisation, never a correctness
// dependency: a failing or absent cache degrades to recomputation.
//
// Import rules: this package may import domain only, never adapters.
package driven
