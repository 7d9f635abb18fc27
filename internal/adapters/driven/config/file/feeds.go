package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FeedConfig is one affiliate feed endpoint from the feeds file.
type FeedConfig struct {
	Name              string  `toml:"name"`
	BaseURL           string  `toml:"base_url"`
	APIKey            string  `toml:"api_key"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// feedsFile is the on-disk TOML shape of the feed list.
type feedsFile struct {
	Feeds []FeedConfig `toml:"feeds"`
}

// LoadFeeds reads the feed configuration from configDir/feeds.toml.
// If configDir is empty, defaults to ~/.varesearch/feeds.toml. A
// missing file yields an empty list, not an error.
func LoadFeeds(configDir string) ([]FeedConfig, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".varesearch")
	}

	data, err := os.ReadFile(filepath.Join(configDir, "feeds.toml"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading feeds file: %w", err)
	}

	var parsed feedsFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing feeds file: %w", err)
	}

	for i, feed := range parsed.Feeds {
		if feed.Name == "" {
			return nil, fmt.Errorf("feed %d: name is required", i)
		}
		if feed.BaseURL == "" {
			return nil, fmt.Errorf("feed %q: base_url is required", feed.Name)
		}
	}

	return parsed.Feeds, nil
}
