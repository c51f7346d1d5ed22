// Package file provides the TOML-backed config store. Configuration
// lives in ~/.localsync/config.toml; the CMS token can additionally
// come from the LOCALSYNC_CMS_TOKEN environment variable, with an
// optional .env file loaded from the working directory.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/meridianhq/localsync/internal/core/domain"
	"github.com/meridianhq/localsync/internal/core/ports/driven"
	"github.com/meridianhq/localsync/internal/logger"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// tokenEnv is the environment variable overriding the stored token.
const tokenEnv = "LOCALSYNC_CMS_TOKEN"

// ConfigStore is a file-based implementation of driven.ConfigStore
// using TOML.
type ConfigStore struct {
	filePath string
}

// NewConfigStore creates a TOML-based config store. If configDir is
// empty, defaults to ~/.localsync.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".localsync")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Load reads the configuration file, if present, and applies the
// environment overlay. A missing file yields a default config.
func (s *ConfigStore) Load() (*domain.Config, error) {
	cfg := &domain.Config{}

	data, err := os.ReadFile(s.filePath)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// .env is optional; missing files are not an error.
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env overlay")
	}
	if token := os.Getenv(tokenEnv); token != "" {
		cfg.CMS.Token = token
	}

	return cfg, nil
}

// Save writes the configuration back to disk with owner-only
// permissions, since it may hold the CMS token.
func (s *ConfigStore) Save(cfg *domain.Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Path returns the backing file's location.
func (s *ConfigStore) Path() string {
	return s.filePath
}
