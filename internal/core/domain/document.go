package domain

// CMSDocument is the CMS-side view of one locale variant of a
// logical document. The core never constructs document IDs; it only
// threads them through localization calls.
type CMSDocument struct {
	// ID is the opaque document identifier shared by all locale
	// variants of one logical document.
	ID string

	// Slug identifies the document within (content type, locale).
	Slug string

	// Locale is the variant's locale code.
	Locale string

	// Fields holds the content-type-specific field values.
	Fields map[string]any
}

// LocaleAll is the listing filter value that returns every locale's
// documents in one pass.
const LocaleAll = "all"

// DryRunDocumentID marks placeholder documents synthesized during
// dry-run creates so locale-variant logging has an id to reference.
const DryRunDocumentID = "dry-run"
