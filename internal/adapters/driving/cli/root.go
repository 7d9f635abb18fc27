// Package cli wires the cobra command tree for the varesearch binary.
// Services are injected via SetServices before Execute runs.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/madkurv-labs/varesearch-cli/internal/core/ports/driven"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ports/driving"
	"github.com/madkurv-labs/varesearch-cli/internal/logger"
)

var version = "dev"

// Injected services; nil until SetServices is called.
var (
	foodService   driving.FoodSearchService
	shopService   driving.ShopSearchService
	syncService   driving.SyncService
	settingsStore driven.SettingsStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "varesearch",
	Short: "Relevance-ranked search over food and shop catalogs",
	Long: `varesearch ranks a local nutrition catalog and aggregated
affiliate-shop catalogs against Danish-language queries.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Services bundles everything the commands need.
type Services struct {
	Food     driving.FoodSearchService
	Shop     driving.ShopSearchService
	Sync     driving.SyncService
	Settings driven.SettingsStore
}

// SetServices injects the service implementations used by the commands.
func SetServices(s Services) {
	foodService = s.Food
	shopService = s.Shop
	syncService = s.Sync
	settingsStore = s.Settings
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
