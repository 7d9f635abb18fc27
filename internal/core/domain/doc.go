// Package domain contains the core business entities for varesearch.
//
// The two searchable catalog shapes are:
//
//   - FoodItem: a nutrition database entry, searched by its Danish name.
//   - Product: an affiliate-shop product aggregated from external feeds,
//     searched by name and category and re-ranked by shop business rules.
//
// Domain types have no dependencies on adapters or infrastructure.
package domain
