package driven

import (
	"context"

	"github.com/meridianhq/localsync/internal/core/domain"
)

// CMSClient is the abstract CMS document store. Any conforming
// implementation is substitutable; the orchestrator is the CMS's
// sole writer during a sync run.
//
// Lookup methods return domain.ErrNotFound (wrapped or bare) when no
// matching document exists. An empty locale means the CMS-side
// default locale; domain.LocaleAll lists every locale.
type CMSClient interface {
	// GetAllEntries lists all documents of a type in a locale,
	// following pagination to exhaustion.
	GetAllEntries(ctx context.Context, typeID, locale string) ([]domain.CMSDocument, error)

	// FindBySlug looks up one document by slug within a locale.
	FindBySlug(ctx context.Context, typeID, slug, locale string) (*domain.CMSDocument, error)

	// CreateEntry creates a new document.
	CreateEntry(ctx context.Context, typeID string, fields map[string]any, locale string) (*domain.CMSDocument, error)

	// UpdateEntry overwrites an existing document's fields.
	UpdateEntry(ctx context.Context, typeID, documentID string, fields map[string]any, locale string) (*domain.CMSDocument, error)

	// CreateLocalization attaches a new locale variant to an
	// existing document. Fails when the base document is missing.
	CreateLocalization(ctx context.Context, typeID, documentID, locale string, fields map[string]any) error

	// UpdateLocalization updates the localization matching the
	// payload's slug and the locale, delegating to
	// CreateLocalization when none exists yet.
	UpdateLocalization(ctx context.Context, typeID, documentID, locale string, fields map[string]any) error

	// DeleteEntry removes a document.
	DeleteEntry(ctx context.Context, typeID, documentID string) error

	// DeleteLocalization removes one locale variant of a document.
	DeleteLocalization(ctx context.Context, typeID, documentID, locale string) error
}
