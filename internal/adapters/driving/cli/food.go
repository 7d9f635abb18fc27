package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
)

var (
	foodLimit int
	foodJSON  bool
)

var foodCmd = &cobra.Command{
	Use:   "food [query]",
	Short: "Search the nutrition catalog",
	Long: `Searches the local nutrition catalog and prints food items
ordered by match quality, best first.`,
	Args: cobra.ExactArgs(1),
	RunE: runFood,
}

func init() {
	foodCmd.Flags().IntVarP(&foodLimit, "limit", "n", 10, "maximum number of results")
	foodCmd.Flags().BoolVar(&foodJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(foodCmd)
}

func runFood(cmd *cobra.Command, args []string) error {
	if foodService == nil {
		return errors.New("food search service not configured")
	}

	matches, err := foodService.Search(cmd.Context(), args[0], foodLimit)
	if err != nil {
		return fmt.Errorf("food search failed: %w", err)
	}

	if foodJSON {
		return outputFoodJSON(cmd, matches)
	}
	return outputFoodTable(cmd, matches)
}

func outputFoodJSON(cmd *cobra.Command, matches []domain.FoodMatch) error {
	data, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputFoodTable(cmd *cobra.Command, matches []domain.FoodMatch) error {
	if len(matches) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, m := range matches {
		cmd.Printf("  [%d] %s", i+1, m.Item.NameDa)
		if m.Item.NameEn != "" {
			cmd.Printf(" (%s)", m.Item.NameEn)
		}
		cmd.Println()
		if m.Item.Category != "" {
			cmd.Printf("      Category: %s\n", m.Item.Category)
		}
		cmd.Printf("      Per 100 g: %.0f kcal, %.1f g protein, %.1f g fat, %.1f g carbs\n",
			m.Item.KcalPer100g, m.Item.ProteinPer100g, m.Item.FatPer100g, m.Item.CarbsPer100g)
		cmd.Println()
	}
	return nil
}
