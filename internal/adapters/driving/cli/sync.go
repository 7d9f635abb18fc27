package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the local catalog from the feeds",
	Long: `Pulls every configured affiliate feed in full and rebuilds the
local catalog snapshot. Each provider is cleared before its feed is
re-read so delisted products disappear.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	if syncService == nil {
		return errors.New("sync service not configured")
	}

	cmd.Println("Synchronising feeds...")

	total, err := syncService.Sync(cmd.Context())
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	cmd.Printf("Synchronised %d products.\n", total)
	return nil
}
