package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/meridianhq/localsync/internal/core/domain"
	"github.com/meridianhq/localsync/internal/core/ports/driven"
	"github.com/meridianhq/localsync/internal/core/ports/driving"
	"github.com/meridianhq/localsync/internal/logger"
)

// Ensure SyncOrchestrator implements the interface.
var _ driving.Syncer = (*SyncOrchestrator)(nil)

// SyncOrchestrator drives the end-to-end reconciliation of on-disk
// content against the CMS, one content type at a time.
//
// Per content type the phases run in a fixed order: scan and
// validate, sync default-locale files (each followed by its matched
// locale variants), delete CMS orphans, then attempt to re-match any
// variant still unprocessed by querying the CMS. A shared
// processed-slug record threads through all phases; anything
// recorded there has an on-disk file and is protected from the
// orphan pass.
//
// No error propagates past the boundary of one file or one content
// type. The orchestrator always makes maximal progress and reports
// aggregate counts.
type SyncOrchestrator struct {
	scanner     *Scanner
	validator   *Validator
	transformer *Transformer
	cms         driven.CMSClient

	registry      []domain.ContentType
	defaultLocale string
	dryRun        bool
}

// NewSyncOrchestrator creates a sync orchestrator. With dryRun set,
// every mutating CMS call is replaced by a log line while all
// matching and diffing logic runs identically, so dry-run output is
// a faithful preview.
func NewSyncOrchestrator(
	scanner *Scanner,
	validator *Validator,
	transformer *Transformer,
	cms driven.CMSClient,
	registry []domain.ContentType,
	defaultLocale string,
	dryRun bool,
) *SyncOrchestrator {
	return &SyncOrchestrator{
		scanner:       scanner,
		validator:     validator,
		transformer:   transformer,
		cms:           cms,
		registry:      registry,
		defaultLocale: defaultLocale,
		dryRun:        dryRun,
	}
}

// SyncType reconciles one content type by registry key.
func (o *SyncOrchestrator) SyncType(ctx context.Context, key string) (domain.SyncResult, error) {
	for _, ct := range o.registry {
		if ct.Key == key {
			return o.syncContentType(ctx, ct)
		}
	}
	return domain.SyncResult{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, key)
}

// SyncAll reconciles every configured content type, summing all
// counters. A content type whose sync fails outright is counted as
// one error and the remaining types still run.
func (o *SyncOrchestrator) SyncAll(ctx context.Context) (domain.SyncResult, error) {
	var total domain.SyncResult
	for _, ct := range o.registry {
		res, err := o.syncContentType(ctx, ct)
		total.Merge(res)
		if err != nil {
			total.Errors++
			logger.Warn("sync %s: %v", ct.Key, err)
		}
	}
	logger.Info("sync complete: %d created, %d updated, %d deleted, %d errors",
		total.Created, total.Updated, total.Deleted, total.Errors)
	return total, nil
}

// syncContentType runs the full reconciliation state machine for one
// content type.
func (o *SyncOrchestrator) syncContentType(ctx context.Context, ct domain.ContentType) (domain.SyncResult, error) {
	logger.Section(ct.Key)

	var res domain.SyncResult
	processed := domain.NewProcessedSlugs()

	files, err := o.scanner.Scan(ct)
	if err != nil {
		return res, fmt.Errorf("scan %s: %w", ct.Key, err)
	}

	valid, invalid := o.validator.Partition(ct, files)
	for _, ve := range invalid {
		// Invalid files still count as present on disk: a broken
		// local edit must not get its CMS document deleted.
		processed.Add(ve.Locale, ve.Slug)
		res.Errors++
		logger.Warn("invalid frontmatter in %s: %s", ve.Path, strings.Join(ve.Errors, "; "))
	}

	var defaults, variants []*domain.ContentFile
	for _, file := range valid {
		if file.IsLocalization {
			variants = append(variants, file)
		} else {
			defaults = append(defaults, file)
		}
	}

	for _, file := range defaults {
		processed.Add(o.defaultLocale, file.Slug)

		doc, err := o.syncDefault(ctx, ct, file, &res)
		if err != nil {
			res.Errors++
			logger.Warn("sync %s %q: %v", ct.Key, file.Slug, err)
			continue
		}
		if doc == nil || doc.ID == "" {
			continue
		}

		for _, match := range FindMatches(file, variants, processed) {
			processed.Add(match.Variant.Locale, match.Variant.Slug)
			logger.Debug("matched %s: %s", match.Variant.Path, match.Reason)

			if err := o.syncLocalization(ctx, ct, doc.ID, match.Variant, &res); err != nil {
				res.Errors++
				logger.Warn("sync localization %q (%s): %v", match.Variant.Slug, match.Variant.Locale, err)
			}
		}
	}

	// Orphan deletion runs before unmatched reconciliation: a locale
	// file that matches nothing yet must not block cleanup, and a
	// later lucky match must not revive a document already gone.
	o.deleteOrphans(ctx, ct, processed, &res)
	o.reconcileUnmatched(ctx, ct, variants, processed, &res)

	return res, nil
}

// syncDefault creates or updates the default-locale document for one
// file and returns the resulting document for locale matching.
func (o *SyncOrchestrator) syncDefault(ctx context.Context, ct domain.ContentType, file *domain.ContentFile, res *domain.SyncResult) (*domain.CMSDocument, error) {
	existing, err := o.findBySlug(ctx, ct.CMSTypeID, file.Slug, o.defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("find by slug: %w", err)
	}

	fields, err := o.transformer.ToPayload(ct, file, existing)
	if err != nil {
		return nil, fmt.Errorf("build payload: %w", err)
	}

	if existing != nil {
		doc, err := o.updateEntry(ctx, ct.CMSTypeID, existing, fields, o.defaultLocale)
		if err != nil {
			return nil, fmt.Errorf("update entry: %w", err)
		}
		res.Updated++
		return doc, nil
	}

	doc, err := o.createEntry(ctx, ct.CMSTypeID, file.Slug, fields, o.defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	res.Created++
	return doc, nil
}

// syncLocalization creates or updates one locale variant anchored to
// the default document's id.
func (o *SyncOrchestrator) syncLocalization(ctx context.Context, ct domain.ContentType, documentID string, file *domain.ContentFile, res *domain.SyncResult) error {
	existing, err := o.findBySlug(ctx, ct.CMSTypeID, file.Slug, file.Locale)
	if err != nil {
		return fmt.Errorf("find localization: %w", err)
	}

	fields, err := o.transformer.ToPayload(ct, file, existing)
	if err != nil {
		return fmt.Errorf("build payload: %w", err)
	}

	if existing != nil {
		if err := o.updateLocalization(ctx, ct.CMSTypeID, existing.ID, file, fields); err != nil {
			return fmt.Errorf("update localization: %w", err)
		}
		res.Updated++
		return nil
	}

	if err := o.createLocalization(ctx, ct.CMSTypeID, documentID, file, fields); err != nil {
		return fmt.Errorf("create localization: %w", err)
	}
	res.Created++
	return nil
}

// deleteOrphans removes CMS documents with no corresponding on-disk
// file. Locales in use are computed across all content types, so
// removing one type's locale directory does not prevent cleanup for
// documents under other types in the same locale.
func (o *SyncOrchestrator) deleteOrphans(ctx context.Context, ct domain.ContentType, processed domain.ProcessedSlugs, res *domain.SyncResult) {
	for _, locale := range o.scanner.LocalesPresent(o.registry) {
		docs, err := o.cms.GetAllEntries(ctx, ct.CMSTypeID, locale)
		if err != nil {
			res.Errors++
			logger.Warn("list %s entries (%s): %v", ct.CMSTypeID, locale, err)
			continue
		}

		for i := range docs {
			doc := &docs[i]
			if processed.Has(locale, doc.Slug) {
				continue
			}
			if err := o.deleteDocument(ctx, ct.CMSTypeID, doc, locale); err != nil {
				res.Errors++
				logger.Warn("delete %s %q (%s): %v", ct.CMSTypeID, doc.Slug, locale, err)
				continue
			}
			res.Deleted++
		}
	}
}

// reconcileUnmatched handles locale files left unmatched after the
// default pass: each is re-matched against the CMS by its localizes
// link. A file whose link resolves to no document is the expected
// steady state when the translation lands before its default-locale
// counterpart, or when the link is stale after a slug rename.
func (o *SyncOrchestrator) reconcileUnmatched(ctx context.Context, ct domain.ContentType, variants []*domain.ContentFile, processed domain.ProcessedSlugs, res *domain.SyncResult) {
	for _, file := range variants {
		if processed.Has(file.Locale, file.Slug) {
			continue
		}
		if file.Localizes == "" {
			logger.Warn("locale file %s has no localizes link; skipping", file.Path)
			continue
		}

		base, err := o.findBySlug(ctx, ct.CMSTypeID, file.Localizes, o.defaultLocale)
		if err != nil {
			res.Errors++
			logger.Warn("look up %q for %s: %v", file.Localizes, file.Path, err)
			continue
		}
		if base == nil {
			logger.Warn("no %s document with slug %q for %s; link may be stale or the default file not yet synced",
				ct.Key, file.Localizes, file.Path)
			continue
		}

		processed.Add(file.Locale, file.Slug)
		if err := o.syncLocalization(ctx, ct, base.ID, file, res); err != nil {
			res.Errors++
			logger.Warn("sync localization %q (%s): %v", file.Slug, file.Locale, err)
		}
	}
}

// findBySlug wraps the client lookup, translating ErrNotFound into a
// nil document.
func (o *SyncOrchestrator) findBySlug(ctx context.Context, typeID, slug, locale string) (*domain.CMSDocument, error) {
	doc, err := o.cms.FindBySlug(ctx, typeID, slug, locale)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

// Mutation helpers. Each gates the one mutating client call behind
// the dry-run flag so the log-vs-call decision lives in one place
// per operation.

func (o *SyncOrchestrator) createEntry(ctx context.Context, typeID, slug string, fields map[string]any, locale string) (*domain.CMSDocument, error) {
	if o.dryRun {
		logger.Info("[dry-run] create %s %q (%s)", typeID, slug, locale)
		// Placeholder document so variant dry-run logging has an id
		// to reference.
		return &domain.CMSDocument{ID: domain.DryRunDocumentID, Slug: slug, Locale: locale, Fields: fields}, nil
	}
	return o.cms.CreateEntry(ctx, typeID, fields, locale)
}

func (o *SyncOrchestrator) updateEntry(ctx context.Context, typeID string, existing *domain.CMSDocument, fields map[string]any, locale string) (*domain.CMSDocument, error) {
	if o.dryRun {
		logger.Info("[dry-run] update %s %q (%s)", typeID, existing.Slug, locale)
		return existing, nil
	}
	return o.cms.UpdateEntry(ctx, typeID, existing.ID, fields, locale)
}

func (o *SyncOrchestrator) createLocalization(ctx context.Context, typeID, documentID string, file *domain.ContentFile, fields map[string]any) error {
	if o.dryRun {
		logger.Info("[dry-run] create localization %s %q (%s) on %s", typeID, file.Slug, file.Locale, documentID)
		return nil
	}
	return o.cms.CreateLocalization(ctx, typeID, documentID, file.Locale, fields)
}

func (o *SyncOrchestrator) updateLocalization(ctx context.Context, typeID, documentID string, file *domain.ContentFile, fields map[string]any) error {
	if o.dryRun {
		logger.Info("[dry-run] update localization %s %q (%s) on %s", typeID, file.Slug, file.Locale, documentID)
		return nil
	}
	return o.cms.UpdateLocalization(ctx, typeID, documentID, file.Locale, fields)
}

func (o *SyncOrchestrator) deleteDocument(ctx context.Context, typeID string, doc *domain.CMSDocument, locale string) error {
	if domain.BaseLocale(locale) == domain.BaseLocale(o.defaultLocale) {
		if o.dryRun {
			logger.Info("[dry-run] delete %s %q (%s)", typeID, doc.Slug, locale)
			return nil
		}
		return o.cms.DeleteEntry(ctx, typeID, doc.ID)
	}
	if o.dryRun {
		logger.Info("[dry-run] delete localization %s %q (%s)", typeID, doc.Slug, locale)
		return nil
	}
	return o.cms.DeleteLocalization(ctx, typeID, doc.ID, locale)
}
