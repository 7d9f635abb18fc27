package services

import (
	"context"
	"fmt"

	"github.com/madkurv-labs/varesearch-cli/internal/core/ports/driven"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ports/driving"
	"github.com/madkurv-labs/varesearch-cli/internal/logger"
)

// Ensure FeedSyncService implements the interface.
var _ driving.SyncService = (*FeedSyncService)(nil)

// defaultSyncPageSize is the feed page window per request.
const defaultSyncPageSize = 500

// FeedSyncService pulls every configured feed in full and writes the
// products into the local catalog snapshot.
type FeedSyncService struct {
	sources  []driven.FeedSource
	writer   driven.CatalogWriter
	pageSize int
}

// NewFeedSyncService creates a sync service. A pageSize of zero or
// less selects the default window.
func NewFeedSyncService(sources []driven.FeedSource, writer driven.CatalogWriter, pageSize int) *FeedSyncService {
	if pageSize <= 0 {
		pageSize = defaultSyncPageSize
	}
	return &FeedSyncService{sources: sources, writer: writer, pageSize: pageSize}
}

// Sync refreshes the snapshot provider by provider. Each provider is
// cleared before its feed is re-read so delisted products disappear.
// The first failure aborts the sync; a half-synced provider will be
// retried in full next run.
func (s *FeedSyncService) Sync(ctx context.Context) (int, error) {
	logger.Section("Feed Sync")

	total := 0
	for _, source := range s.sources {
		count, err := s.syncSource(ctx, source)
		if err != nil {
			return total, fmt.Errorf("sync %s: %w", source.Name(), err)
		}
		logger.Info("Synced %s: %d products", source.Name(), count)
		total += count
	}
	return total, nil
}

func (s *FeedSyncService) syncSource(ctx context.Context, source driven.FeedSource) (int, error) {
	if err := s.writer.DeleteProvider(ctx, source.Name()); err != nil {
		return 0, fmt.Errorf("clear snapshot: %w", err)
	}

	count := 0
	for skip := 0; ; skip += s.pageSize {
		page, err := source.ListProducts(ctx, skip, s.pageSize)
		if err != nil {
			return count, fmt.Errorf("list products at %d: %w", skip, err)
		}
		if len(page) == 0 {
			break
		}
		if err := s.writer.SaveProducts(ctx, page); err != nil {
			return count, fmt.Errorf("save products: %w", err)
		}
		count += len(page)
		logger.Debug("Sync %s: %d products so far", source.Name(), count)
		if len(page) < s.pageSize {
			break
		}
	}
	return count, nil
}
