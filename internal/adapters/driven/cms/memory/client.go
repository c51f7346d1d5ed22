// Package memory provides an in-memory CMSClient used by tests and
// by offline dry-runs. Documents are held as one record per logical
// document with a fields map per locale variant.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/meridianhq/localsync/internal/core/domain"
	"github.com/meridianhq/localsync/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.CMSClient = (*Client)(nil)

// record is one logical document: a shared id plus per-locale fields.
type record struct {
	id      string
	locales map[string]map[string]any
}

// Client is an in-memory implementation of driven.CMSClient.
// Locale filters compare base codes, mirroring the matcher's rules.
type Client struct {
	mu            sync.RWMutex
	defaultLocale string
	records       map[string][]*record // typeID -> records
}

// NewClient creates an empty in-memory CMS.
func NewClient(defaultLocale string) *Client {
	return &Client{
		defaultLocale: defaultLocale,
		records:       make(map[string][]*record),
	}
}

// resolveLocale maps the empty locale to the store's default.
func (c *Client) resolveLocale(locale string) string {
	if locale == "" {
		return c.defaultLocale
	}
	return locale
}

// GetAllEntries lists all documents of a type in a locale.
func (c *Client) GetAllEntries(_ context.Context, typeID, locale string) ([]domain.CMSDocument, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var docs []domain.CMSDocument
	for _, rec := range c.records[typeID] {
		for variantLocale, fields := range rec.locales {
			if locale != domain.LocaleAll &&
				domain.BaseLocale(variantLocale) != domain.BaseLocale(c.resolveLocale(locale)) {
				continue
			}
			docs = append(docs, documentFor(rec, variantLocale, fields))
		}
	}
	return docs, nil
}

// FindBySlug looks up one document by slug within a locale.
func (c *Client) FindBySlug(_ context.Context, typeID, slug, locale string) (*domain.CMSDocument, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, variantLocale, fields := c.findBySlug(typeID, slug, locale)
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	doc := documentFor(rec, variantLocale, fields)
	return &doc, nil
}

// CreateEntry creates a new document in the given locale.
func (c *Client) CreateEntry(_ context.Context, typeID string, fields map[string]any, locale string) (*domain.CMSDocument, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec := &record{
		id:      uuid.New().String(),
		locales: map[string]map[string]any{c.resolveLocale(locale): fields},
	}
	c.records[typeID] = append(c.records[typeID], rec)

	doc := documentFor(rec, c.resolveLocale(locale), fields)
	return &doc, nil
}

// UpdateEntry overwrites a document's fields in the given locale.
func (c *Client) UpdateEntry(_ context.Context, typeID, documentID string, fields map[string]any, locale string) (*domain.CMSDocument, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec := c.findByID(typeID, documentID)
	if rec == nil {
		return nil, fmt.Errorf("update %s: %w", documentID, domain.ErrNotFound)
	}
	rec.locales[c.resolveLocale(locale)] = fields

	doc := documentFor(rec, c.resolveLocale(locale), fields)
	return &doc, nil
}

// CreateLocalization attaches a locale variant to an existing
// document. Fails when the base document is missing.
func (c *Client) CreateLocalization(_ context.Context, typeID, documentID, locale string, fields map[string]any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec := c.findByID(typeID, documentID)
	if rec == nil {
		return fmt.Errorf("localize %s: %w", documentID, domain.ErrNotFound)
	}
	rec.locales[locale] = fields
	return nil
}

// UpdateLocalization updates the localization matching the payload's
// slug and locale, delegating to create when none exists.
func (c *Client) UpdateLocalization(ctx context.Context, typeID, documentID, locale string, fields map[string]any) error {
	slug, _ := fields["slug"].(string)

	c.mu.Lock()
	rec, variantLocale, _ := c.findBySlug(typeID, slug, locale)
	if rec != nil {
		rec.locales[variantLocale] = fields
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	return c.CreateLocalization(ctx, typeID, documentID, locale, fields)
}

// DeleteEntry removes a document with all its locale variants.
func (c *Client) DeleteEntry(_ context.Context, typeID, documentID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	recs := c.records[typeID]
	for i, rec := range recs {
		if rec.id == documentID {
			c.records[typeID] = append(recs[:i], recs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete %s: %w", documentID, domain.ErrNotFound)
}

// DeleteLocalization removes one locale variant of a document.
func (c *Client) DeleteLocalization(_ context.Context, typeID, documentID, locale string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec := c.findByID(typeID, documentID)
	if rec == nil {
		return fmt.Errorf("delete localization %s: %w", documentID, domain.ErrNotFound)
	}
	for variantLocale := range rec.locales {
		if domain.BaseLocale(variantLocale) == domain.BaseLocale(locale) {
			delete(rec.locales, variantLocale)
			return nil
		}
	}
	return fmt.Errorf("delete localization %s (%s): %w", documentID, locale, domain.ErrNotFound)
}

// findByID returns the record with the given id, or nil.
// Caller holds the lock.
func (c *Client) findByID(typeID, documentID string) *record {
	for _, rec := range c.records[typeID] {
		if rec.id == documentID {
			return rec
		}
	}
	return nil
}

// findBySlug returns the record and variant matching slug and locale.
// Caller holds the lock.
func (c *Client) findBySlug(typeID, slug, locale string) (*record, string, map[string]any) {
	want := domain.BaseLocale(c.resolveLocale(locale))
	for _, rec := range c.records[typeID] {
		for variantLocale, fields := range rec.locales {
			if domain.BaseLocale(variantLocale) != want {
				continue
			}
			if s, _ := fields["slug"].(string); s == slug {
				return rec, variantLocale, fields
			}
		}
	}
	return nil, "", nil
}

func documentFor(rec *record, locale string, fields map[string]any) domain.CMSDocument {
	slug, _ := fields["slug"].(string)
	return domain.CMSDocument{
		ID:     rec.id,
		Slug:   slug,
		Locale: locale,
		Fields: fields,
	}
}
