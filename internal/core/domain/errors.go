package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNoProviders indicates shop search was started with no
	// catalog providers configured.
	ErrNoProviders = errors.New("no catalog providers configured")

	// ErrProviderFetch indicates a provider feed could not be fetched.
	// The search as a whole fails rather than ranking a partial pool.
	ErrProviderFetch = errors.New("provider fetch failed")

	// ErrFoodStoreUnavailable indicates the food catalog is not loaded.
	ErrFoodStoreUnavailable = errors.New("food catalog unavailable")
)
