package driven

import "github.com/meridianhq/localsync/internal/core/domain"

// ConfigStore loads and persists tool configuration.
type ConfigStore interface {
	// Load reads the configuration, applying defaults and
	// environment overrides.
	Load() (*domain.Config, error)

	// Save writes the configuration back to disk.
	Save(cfg *domain.Config) error

	// Path returns the backing file's location, for display.
	Path() string
}
