package driving

import (
	"context"

	"github.com/meridianhq/localsync/internal/core/domain"
)

// Syncer reconciles on-disk content with the CMS.
type Syncer interface {
	// SyncType reconciles one content type by registry key.
	SyncType(ctx context.Context, key string) (domain.SyncResult, error)

	// SyncAll reconciles every configured content type, summing
	// counters. A failing content type is counted as one error and
	// does not abort the rest.
	SyncAll(ctx context.Context) (domain.SyncResult, error)
}

// Inspector exposes read-only discovery operations for pre-flight
// commands (validate, locales).
type Inspector interface {
	// ValidateAll scans and validates every content type without
	// touching the CMS.
	ValidateAll() ([]domain.ValidationError, error)

	// LocalesPresent returns every locale observed on disk across
	// all content types, base codes only, including the default.
	LocalesPresent() []string
}
