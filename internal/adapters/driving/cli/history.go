package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/meridianhq/localsync/internal/adapters/driven/runstore/sqlite"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent sync runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := sqlite.NewStore(dataDir())
	if err != nil {
		return fmt.Errorf("open run history: %w", err)
	}
	defer store.Close()

	runs, err := store.ListRuns(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	if len(runs) == 0 {
		cmd.Println("No sync runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		mode := ""
		if run.DryRun {
			mode = " dry-run"
		}
		cmd.Printf("%s%s  +%d ~%d -%d !%d  (%s)\n",
			run.StartedAt.Local().Format(time.RFC3339),
			mode,
			run.Result.Created, run.Result.Updated, run.Result.Deleted, run.Result.Errors,
			run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond))
	}
	return nil
}
