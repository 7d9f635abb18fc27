package driven

import (
	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
)

// SettingsStore persists the shop search settings.
type SettingsStore interface {
	// Load reads the current settings. A missing settings file
	// yields the zero value, not an error.
	Load() (domain.ShopSettings, error)

	// Save writes the settings back.
	Save(settings domain.ShopSettings) error
}
