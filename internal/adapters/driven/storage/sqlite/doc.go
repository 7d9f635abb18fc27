// Package sqlite persists the aggregated product catalog snapshot.
//
// Feed syncs write provider products into one SQLite database; the
// store then serves shop searches as a driven.CatalogProvider with a
// broad LIKE pre-filter. SQLite keeps snapshots across restarts so a
// search works without re-pulling feeds.
package sqlite
