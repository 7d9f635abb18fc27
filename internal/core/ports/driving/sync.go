package driving

import "context"

// SyncService refreshes the local catalog snapshot from the feeds.
type SyncService interface {
	// Sync pulls every configured feed in full and returns the total
	// number of products written.
	Sync(ctx context.Context) (int, error)
}
