package domain

import "time"

// SyncResult accumulates the outcome of a sync pass. Counters are
// only ever incremented; a result is returned per content type and
// summed across content types.
type SyncResult struct {
	// Created counts documents and localizations created.
	Created int

	// Updated counts documents and localizations updated.
	Updated int

	// Deleted counts orphaned documents removed from the CMS.
	Deleted int

	// Errors counts failures isolated at file or content-type level.
	Errors int
}

// Merge adds another result's counters into this one.
func (r *SyncResult) Merge(other SyncResult) {
	r.Created += other.Created
	r.Updated += other.Updated
	r.Deleted += other.Deleted
	r.Errors += other.Errors
}

// ValidationError describes all schema violations found in one file.
type ValidationError struct {
	// Path is the file's on-disk location.
	Path string

	// Slug identifies the file within its (content type, locale).
	Slug string

	// Locale is the file's resolved locale.
	Locale string

	// Errors holds one formatted message per violation, either
	// "<field path>: <message>" or a bare message when the
	// violation has no field path.
	Errors []string
}

// SyncRun is one recorded invocation of the sync command. Persisted
// by the run store for the history command; never read by the core.
type SyncRun struct {
	// ID is the run's unique identifier.
	ID string

	// StartedAt is when the run began.
	StartedAt time.Time

	// FinishedAt is when the run completed.
	FinishedAt time.Time

	// DryRun indicates the run performed no CMS mutations.
	DryRun bool

	// Result holds the run's aggregate counters.
	Result SyncResult
}
