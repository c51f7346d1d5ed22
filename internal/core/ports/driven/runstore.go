package driven

import (
	"context"

	"github.com/meridianhq/localsync/internal/core/domain"
)

// RunStore persists sync run history. The core never reads history;
// a failure to record a run is logged, not counted as a sync error.
type RunStore interface {
	// RecordRun stores one completed run.
	RecordRun(ctx context.Context, run domain.SyncRun) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.SyncRun, error)

	// Close releases resources.
	Close() error
}
