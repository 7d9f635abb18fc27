package domain

import "time"

// Default shop search tuning values.
const (
	// DefaultCanonicalCount is the result-set size that is ranked,
	// adjusted and cached regardless of how few results the caller
	// asked for. Smaller requests are served by truncation.
	DefaultCanonicalCount = 100

	// DefaultCacheTTL is how long a cached ranking stays valid.
	DefaultCacheTTL = time.Hour

	// DefaultProviderLimit bounds how many products are fetched from
	// each provider per search. Guardrail against runaway scan cost.
	DefaultProviderLimit = 500
)

// ShopSettings tunes shop search ranking and adjustment.
// Loaded from the settings file; zero values fall back to defaults.
type ShopSettings struct {
	// PositiveTags boost products whose name or category contains the tag.
	PositiveTags []string

	// NegativeTags penalise products whose name or category contains the tag.
	NegativeTags []string

	// BoostCategories strongly boost products in a matching category.
	BoostCategories []string

	// Replacements rewrites a query before ranking, e.g. "mel" -> "hvedemel".
	Replacements map[string]string

	// CanonicalCount overrides DefaultCanonicalCount when positive.
	CanonicalCount int

	// CacheTTL overrides DefaultCacheTTL when positive.
	CacheTTL time.Duration

	// ProviderLimit overrides DefaultProviderLimit when positive.
	ProviderLimit int
}

// EffectiveCanonicalCount returns the configured canonical count or the default.
func (s ShopSettings) EffectiveCanonicalCount() int {
	if s.CanonicalCount > 0 {
		return s.CanonicalCount
	}
	return DefaultCanonicalCount
}

// EffectiveCacheTTL returns the configured cache TTL or the default.
func (s ShopSettings) EffectiveCacheTTL() time.Duration {
	if s.CacheTTL > 0 {
		return s.CacheTTL
	}
	return DefaultCacheTTL
}

// EffectiveProviderLimit returns the configured per-provider fetch window or the default.
func (s ShopSettings) EffectiveProviderLimit() int {
	if s.ProviderLimit > 0 {
		return s.ProviderLimit
	}
	return DefaultProviderLimit
}

// Replace applies a configured query replacement, if any.
// Unmapped queries are returned unchanged.
func (s ShopSettings) Replace(query string) string {
	if s.Replacements == nil {
		return query
	}
	if replaced, ok := s.Replacements[query]; ok && replaced != "" {
		return replaced
	}
	return query
}
