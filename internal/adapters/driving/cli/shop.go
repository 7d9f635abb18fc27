package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
)

var (
	shopCount int
	shopJSON  bool
)

var shopCmd = &cobra.Command{
	Use:   "shop [query]",
	Short: "Search the affiliate shop catalogs",
	Long: `Searches the aggregated affiliate-shop catalogs and prints
products ordered by adjusted match quality, best first.`,
	Args: cobra.ExactArgs(1),
	RunE: runShop,
}

func init() {
	shopCmd.Flags().IntVarP(&shopCount, "count", "n", 10, "maximum number of results")
	shopCmd.Flags().BoolVar(&shopJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(shopCmd)
}

func runShop(cmd *cobra.Command, args []string) error {
	if shopService == nil {
		return errors.New("shop search service not configured")
	}

	matches, err := shopService.Search(cmd.Context(), args[0], shopCount)
	if err != nil {
		return fmt.Errorf("shop search failed: %w", err)
	}

	if shopJSON {
		return outputShopJSON(cmd, matches)
	}
	return outputShopTable(cmd, matches)
}

func outputShopJSON(cmd *cobra.Command, matches []domain.ProductMatch) error {
	data, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputShopTable(cmd *cobra.Command, matches []domain.ProductMatch) error {
	if len(matches) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, m := range matches {
		cmd.Printf("  [%d] %s (%s)\n", i+1, m.Product.Name, formatPrice(m.Product.Price))
		if m.Product.Brand != "" {
			cmd.Printf("      Brand: %s\n", m.Product.Brand)
		}
		if m.Product.Category != "" {
			cmd.Printf("      Category: %s\n", m.Product.Category)
		}
		if m.Product.HasDiscount() {
			cmd.Printf("      Before: %s\n", formatPrice(m.Product.OldPrice))
		}
		if !m.Product.InStock {
			cmd.Println("      Out of stock")
		}
		cmd.Printf("      %s\n", m.Product.URL)
		cmd.Println()
	}
	return nil
}

// formatPrice renders an øre amount as kroner, e.g. 19900 -> "199,00 kr".
func formatPrice(ore int64) string {
	return fmt.Sprintf("%d,%02d kr", ore/100, ore%100)
}
