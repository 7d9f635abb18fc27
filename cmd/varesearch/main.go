// Command varesearch is the CLI entry point. It wires the adapters to
// the core services and hands control to the command tree.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/madkurv-labs/varesearch-cli/internal/adapters/driven/cache/memory"
	"github.com/madkurv-labs/varesearch-cli/internal/adapters/driven/catalog/feedapi"
	"github.com/madkurv-labs/varesearch-cli/internal/adapters/driven/config/file"
	"github.com/madkurv-labs/varesearch-cli/internal/adapters/driven/foodfile"
	"github.com/madkurv-labs/varesearch-cli/internal/adapters/driven/storage/sqlite"
	"github.com/madkurv-labs/varesearch-cli/internal/adapters/driving/cli"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ports/driven"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ranking"
	"github.com/madkurv-labs/varesearch-cli/internal/core/services"
	"github.com/madkurv-labs/varesearch-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settingsStore, err := file.NewSettingsStore("")
	if err != nil {
		return fmt.Errorf("opening settings store: %w", err)
	}

	settings, err := settingsStore.Load()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	feeds, err := file.LoadFeeds("")
	if err != nil {
		return fmt.Errorf("loading feed config: %w", err)
	}

	snapshot, err := sqlite.NewStore("", "catalog")
	if err != nil {
		return fmt.Errorf("opening catalog snapshot: %w", err)
	}
	defer snapshot.Close()

	// Live feeds when configured; the local snapshot otherwise, so
	// search keeps working offline after a sync.
	var providers []driven.CatalogProvider
	var sources []driven.FeedSource
	for _, feed := range feeds {
		provider := feedapi.NewProvider(feedapi.Config{
			Name:              feed.Name,
			BaseURL:           feed.BaseURL,
			APIKey:            feed.APIKey,
			RequestsPerSecond: feed.RequestsPerSecond,
		})
		providers = append(providers, provider)
		sources = append(sources, provider)
	}
	if len(providers) == 0 {
		providers = []driven.CatalogProvider{snapshot}
	}

	cache := memory.NewResultCache(settings.EffectiveCacheTTL())
	rankCfg := ranking.DefaultConfig()

	svc := cli.Services{
		Shop: services.NewShopSearchService(
			providers, cache, settings, rankCfg, ranking.DefaultAdjusterConfig(),
		),
		Sync:     services.NewFeedSyncService(sources, snapshot, 0),
		Settings: settingsStore,
	}

	if foodStore := openFoodStore(ctx); foodStore != nil {
		svc.Food = services.NewFoodSearchService(foodStore, rankCfg, settings.Replacements)
	}

	cli.SetServices(svc)
	cli.SetVersion(version)

	return cli.Execute()
}

// openFoodStore loads the nutrition catalog and starts the file
// watcher. A missing catalog file is not an error; the food command
// just reports itself unconfigured.
func openFoodStore(ctx context.Context) *foodfile.Store {
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("Cannot resolve home directory: %v", err)
		return nil
	}

	path := filepath.Join(home, ".varesearch", "food.json")
	store, err := foodfile.NewStore(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug("No food catalog at %s", path)
		return nil
	}
	if err != nil {
		logger.Warn("Cannot load food catalog: %v", err)
		return nil
	}

	if err := store.Watch(ctx); err != nil {
		logger.Warn("Food catalog watch unavailable: %v", err)
	}

	return store
}
