package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	tagNegative   bool
	tagRemoveFlag bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage shop search settings",
	Long: `View and configure shop search tuning: tag boosts, category
boosts, and query replacements.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsTagCmd = &cobra.Command{
	Use:   "tag [term]",
	Short: "Add or remove a boost tag",
	Long: `Adds a positive boost tag, or a negative one with --negative.
Use --remove to delete the tag instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsTag,
}

var settingsReplaceCmd = &cobra.Command{
	Use:   "replace [from] [to]",
	Short: "Add a query replacement",
	Long: `Maps a query to another before ranking, e.g. "mel" to
"hvedemel". Omit [to] to remove an existing replacement.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsReplace,
}

func init() {
	settingsTagCmd.Flags().BoolVar(&tagNegative, "negative", false, "penalising tag instead of boosting")
	settingsTagCmd.Flags().BoolVar(&tagRemoveFlag, "remove", false, "remove the tag")
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsTagCmd)
	settingsCmd.AddCommand(settingsReplaceCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	settings, err := settingsStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Ranking]")
	cmd.Printf("  Canonical count: %d\n", settings.EffectiveCanonicalCount())
	cmd.Printf("  Cache TTL: %s\n", settings.EffectiveCacheTTL())
	cmd.Printf("  Provider limit: %d\n", settings.EffectiveProviderLimit())
	cmd.Println()

	cmd.Println("[Boosts]")
	cmd.Printf("  Positive tags: %s\n", joinOrNone(settings.PositiveTags))
	cmd.Printf("  Negative tags: %s\n", joinOrNone(settings.NegativeTags))
	cmd.Printf("  Boost categories: %s\n", joinOrNone(settings.BoostCategories))
	cmd.Println()

	cmd.Println("[Replacements]")
	if len(settings.Replacements) == 0 {
		cmd.Println("  (none)")
	}
	for from, to := range settings.Replacements {
		cmd.Printf("  %s -> %s\n", from, to)
	}

	return nil
}

func runSettingsTag(cmd *cobra.Command, args []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	settings, err := settingsStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	term := args[0]
	if tagNegative {
		settings.NegativeTags = updateTags(settings.NegativeTags, term, tagRemoveFlag)
	} else {
		settings.PositiveTags = updateTags(settings.PositiveTags, term, tagRemoveFlag)
	}

	if err := settingsStore.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if tagRemoveFlag {
		cmd.Printf("Removed tag: %s\n", term)
	} else {
		cmd.Printf("Added tag: %s\n", term)
	}
	return nil
}

func runSettingsReplace(cmd *cobra.Command, args []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	settings, err := settingsStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	from := args[0]
	if len(args) == 1 {
		delete(settings.Replacements, from)
		if err := settingsStore.Save(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		cmd.Printf("Removed replacement: %s\n", from)
		return nil
	}

	if settings.Replacements == nil {
		settings.Replacements = make(map[string]string)
	}
	settings.Replacements[from] = args[1]

	if err := settingsStore.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Added replacement: %s -> %s\n", from, args[1])
	return nil
}

func updateTags(tags []string, term string, remove bool) []string {
	filtered := make([]string, 0, len(tags))
	for _, t := range tags {
		if !strings.EqualFold(t, term) {
			filtered = append(filtered, t)
		}
	}
	if !remove {
		filtered = append(filtered, term)
	}
	return filtered
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
