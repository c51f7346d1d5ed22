package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/meridianhq/localsync/internal/adapters/driven/runstore/sqlite"
	"github.com/meridianhq/localsync/internal/core/domain"
	"github.com/meridianhq/localsync/internal/logger"
)

var (
	syncDryRun  bool
	syncOffline bool
)

var syncCmd = &cobra.Command{
	Use:   "sync [content-type]",
	Short: "Reconcile on-disk content with the CMS",
	Long: `Reconciles the MDX content tree against the CMS. If a content type
key is given, only that type is synced; otherwise all configured
types are synced in order. With --dry-run every intended mutation is
logged but none is performed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "preview mutations without performing them")
	syncCmd.Flags().BoolVar(&syncOffline, "offline", false, "use an empty in-memory CMS (implies nothing is written)")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	syncer, err := newSyncer(cfg, syncDryRun, syncOffline)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	started := time.Now()

	var res domain.SyncResult
	if len(args) > 0 {
		res, err = syncer.SyncType(ctx, args[0])
	} else {
		res, err = syncer.SyncAll(ctx)
	}
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	recordRun(cmd, domain.SyncRun{
		StartedAt:  started,
		FinishedAt: time.Now(),
		DryRun:     syncDryRun,
		Result:     res,
	})

	mode := ""
	if syncDryRun {
		mode = " (dry run)"
	}
	cmd.Printf("Sync complete%s: %d created, %d updated, %d deleted, %d errors\n",
		mode, res.Created, res.Updated, res.Deleted, res.Errors)

	if res.Errors > 0 {
		return fmt.Errorf("sync completed with %d errors", res.Errors)
	}
	return nil
}

// recordRun persists the run to history. Best effort: a history
// failure is logged, never counted against the sync.
func recordRun(cmd *cobra.Command, run domain.SyncRun) {
	store, err := sqlite.NewStore(dataDir())
	if err != nil {
		logger.Warn("open run history: %v", err)
		return
	}
	defer store.Close()

	if err := store.RecordRun(cmd.Context(), run); err != nil {
		logger.Warn("record run history: %v", err)
	}
}
