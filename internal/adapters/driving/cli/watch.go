package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/meridianhq/localsync/internal/logger"
)

// watchDebounce batches rapid editor saves into one sync.
const watchDebounce = 750 * time.Millisecond

var watchDryRun bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-sync whenever the content tree changes",
	Long: `Watches the content root and re-runs a full sync after changes
settle. Useful during authoring sessions; combine with --dry-run to
preview continuously without writing to the CMS.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchDryRun, "dry-run", false, "preview mutations without performing them")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	syncer, err := newSyncer(cfg, watchDryRun, false)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the root and every directory below it; fsnotify does
	// not recurse on its own.
	err = filepath.WalkDir(cfg.Content.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		return watcher.Add(path)
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", cfg.Content.Root, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (Ctrl-C to stop)\n", cfg.Content.Root)

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			logger.Debug("fs event: %s", event)
			if event.Op&fsnotify.Create != 0 {
				// New directories need their own watch.
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: %v", err)

		case <-pending:
			res, err := syncer.SyncAll(ctx)
			if err != nil {
				logger.Warn("sync: %v", err)
				continue
			}
			cmd.Printf("Synced: %d created, %d updated, %d deleted, %d errors\n",
				res.Created, res.Updated, res.Deleted, res.Errors)
		}
	}
}
