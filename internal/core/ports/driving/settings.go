package driving

import "github.com/parley-labs/parley-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single dot-notation key ("query.top_k") from its
	// string representation, validating the resulting settings.
	Set(key, value string) error

	// Reset restores and persists the default settings.
	Reset() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
