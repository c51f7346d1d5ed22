// Package cli implements the localsync command-line interface.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/meridianhq/localsync/internal/adapters/driven/cms/memory"
	"github.com/meridianhq/localsync/internal/adapters/driven/cms/rest"
	"github.com/meridianhq/localsync/internal/adapters/driven/config/file"
	"github.com/meridianhq/localsync/internal/core/domain"
	"github.com/meridianhq/localsync/internal/core/ports/driven"
	"github.com/meridianhq/localsync/internal/core/ports/driving"
	"github.com/meridianhq/localsync/internal/core/services"
	"github.com/meridianhq/localsync/internal/logger"
	"github.com/meridianhq/localsync/internal/schema"
)

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "localsync",
	Short: "Reconcile locale-aware MDX content with the CMS",
	Long: `localsync keeps a directory tree of locale-aware MDX files and the
CMS document store in agreement. The MDX tree is the source of
record: for every (content type, locale, slug) the tool decides
whether the CMS needs a create, an update or a delete, and executes
exactly those operations. A dry-run mode previews every mutation
without performing any.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.localsync)")
}

// dataDir returns the run-history directory, honoring --config-dir.
// Empty selects the store's own default under ~/.localsync.
func dataDir() string {
	if configDir == "" {
		return ""
	}
	return filepath.Join(configDir, "data")
}

// loadConfig opens the config store and loads the configuration.
func loadConfig() (*domain.Config, driven.ConfigStore, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open config store: %w", err)
	}
	cfg, err := store.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, store, nil
}

// newSyncer wires the orchestrator stack for one invocation.
// Offline mode substitutes an empty in-memory CMS, which combined
// with dry-run gives a pure local preview.
func newSyncer(cfg *domain.Config, dryRun, offline bool) (driving.Syncer, error) {
	if cfg.Content.Root == "" {
		return nil, fmt.Errorf("content root not configured; set [content] root in %s", "config.toml")
	}

	schemas, err := schema.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("load schemas: %w", err)
	}

	var cms driven.CMSClient
	if offline {
		cms = memory.NewClient(cfg.DefaultLocale())
	} else {
		if cfg.CMS.BaseURL == "" {
			return nil, fmt.Errorf("CMS base URL not configured: %w", domain.ErrCMSUnavailable)
		}
		if cfg.CMS.Token == "" {
			return nil, fmt.Errorf("CMS token not configured (run localsync login or set LOCALSYNC_CMS_TOKEN): %w", domain.ErrCMSUnavailable)
		}
		cms = rest.NewClient(cfg.CMS.BaseURL, cfg.CMS.Token, cfg.CMS.RequestsPerSecond)
	}

	scanner := services.NewScanner(cfg.Content.Root, cfg.DefaultLocale())
	return services.NewSyncOrchestrator(
		scanner,
		services.NewValidator(schemas),
		services.NewTransformer(schemas),
		cms,
		cfg.Registry(),
		cfg.DefaultLocale(),
		dryRun,
	), nil
}

// newInspector wires the read-only discovery stack.
func newInspector(cfg *domain.Config) (driving.Inspector, error) {
	if cfg.Content.Root == "" {
		return nil, fmt.Errorf("content root not configured")
	}
	schemas, err := schema.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("load schemas: %w", err)
	}
	scanner := services.NewScanner(cfg.Content.Root, cfg.DefaultLocale())
	return services.NewInspection(scanner, services.NewValidator(schemas), cfg.Registry()), nil
}
