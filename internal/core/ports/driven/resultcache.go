package driven

import (
	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
)

// ResultCache memoises fully ranked and adjusted shop results.
//
// The key is the raw literal query string: case and whitespace are
// deliberately not normalised into it, so distinct literal strings
// never share an entry even when scoring would treat them alike.
// Entries expire by TTL only; catalogs change out-of-band and bounded
// staleness is tolerated.
type ResultCache interface {
	// Get returns the cached matches for a query, or false on miss
	// or expiry.
	Get(query string) ([]domain.ProductMatch, bool)

	// Put stores the matches for a query. Implementations own the
	// TTL; a failed write must be a silent no-op for the caller.
	Put(query string, matches []domain.ProductMatch)
}
