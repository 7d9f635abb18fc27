// Package file persists shop search settings as TOML in the
// varesearch config directory.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// fileSettings is the on-disk TOML shape of domain.ShopSettings.
type fileSettings struct {
	PositiveTags    []string          `toml:"positive_tags"`
	NegativeTags    []string          `toml:"negative_tags"`
	BoostCategories []string          `toml:"boost_categories"`
	Replacements    map[string]string `toml:"replacements"`
	CanonicalCount  int               `toml:"canonical_count"`
	CacheTTLMinutes int               `toml:"cache_ttl_minutes"`
	ProviderLimit   int               `toml:"provider_limit"`
}

// SettingsStore is a TOML-file-backed implementation of
// driven.SettingsStore.
type SettingsStore struct {
	mu       sync.Mutex
	filePath string
}

// NewSettingsStore creates a settings store under configDir.
// If configDir is empty, defaults to ~/.varesearch/settings.toml.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".varesearch")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	return &SettingsStore{
		filePath: filepath.Join(configDir, "settings.toml"),
	}, nil
}

// Load reads the settings file. A missing file yields the zero
// settings, not an error.
func (s *SettingsStore) Load() (domain.ShopSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ShopSettings{}, nil
		}
		return domain.ShopSettings{}, fmt.Errorf("read settings: %w", err)
	}

	var fs fileSettings
	if err := toml.Unmarshal(data, &fs); err != nil {
		return domain.ShopSettings{}, fmt.Errorf("parse settings: %w", err)
	}

	return domain.ShopSettings{
		PositiveTags:    fs.PositiveTags,
		NegativeTags:    fs.NegativeTags,
		BoostCategories: fs.BoostCategories,
		Replacements:    fs.Replacements,
		CanonicalCount:  fs.CanonicalCount,
		CacheTTL:        time.Duration(fs.CacheTTLMinutes) * time.Minute,
		ProviderLimit:   fs.ProviderLimit,
	}, nil
}

// Save writes the settings back to disk.
func (s *SettingsStore) Save(settings domain.ShopSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fs := fileSettings{
		PositiveTags:    settings.PositiveTags,
		NegativeTags:    settings.NegativeTags,
		BoostCategories: settings.BoostCategories,
		Replacements:    settings.Replacements,
		CanonicalCount:  settings.CanonicalCount,
		CacheTTLMinutes: int(settings.CacheTTL / time.Minute),
		ProviderLimit:   settings.ProviderLimit,
	}

	data, err := toml.Marshal(fs)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
