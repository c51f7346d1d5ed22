package domain

import "strings"

// ContentFile represents one parsed MDX file discovered on disk.
// It is the canonical on-disk side of the reconciliation.
type ContentFile struct {
	// Path is the file's location on disk. Identity within a scan;
	// never persisted to the CMS.
	Path string

	// Slug identifies the content within (content type, locale).
	// Taken from frontmatter when present, otherwise derived from
	// the filename with any leading YYYY-MM-DD- prefix stripped.
	Slug string

	// Locale is the resolved locale code, possibly region-qualified
	// (for example "es-419"). Matching always compares base codes.
	Locale string

	// IsLocalization is true for files discovered under a
	// non-default-locale directory.
	IsLocalization bool

	// Localizes names the default-locale slug this file translates.
	// Empty means the file cannot be matched by the link mechanism.
	Localizes string

	// Frontmatter holds the raw frontmatter fields.
	Frontmatter map[string]any

	// Body is the trimmed content after the frontmatter block.
	Body string
}

// FrontmatterString returns the frontmatter value for key as a
// string, or "" when absent or not a textual scalar.
func (f *ContentFile) FrontmatterString(key string) string {
	if f.Frontmatter == nil {
		return ""
	}
	val, ok := f.Frontmatter[key]
	if !ok {
		return ""
	}
	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// LocaleMatch pairs a default-locale file with one of its locale
// variants. Both files remain owned by the scanner's output list.
type LocaleMatch struct {
	// Default is the default-locale file.
	Default *ContentFile

	// Variant is the locale-variant file linked to it.
	Variant *ContentFile

	// Reason describes why the match fired. Used for logs only.
	Reason string
}

// BaseLocale returns the locale code before the first hyphen.
// "es-419" and "es" both match as "es".
func BaseLocale(locale string) string {
	if i := strings.Index(locale, "-"); i >= 0 {
		return locale[:i]
	}
	return locale
}

// ProcessedSlugs records which (base locale, slug) pairs have an
// on-disk file and therefore must not be deleted from the CMS. One
// instance is shared across all phases of a content-type sync.
type ProcessedSlugs map[string]map[string]struct{}

// NewProcessedSlugs creates an empty processed-slug record.
func NewProcessedSlugs() ProcessedSlugs {
	return make(ProcessedSlugs)
}

// Add records a slug as processed for the locale's base code.
func (p ProcessedSlugs) Add(locale, slug string) {
	base := BaseLocale(locale)
	set, ok := p[base]
	if !ok {
		set = make(map[string]struct{})
		p[base] = set
	}
	set[slug] = struct{}{}
}

// Has reports whether the slug is recorded for the locale's base code.
func (p ProcessedSlugs) Has(locale, slug string) bool {
	set, ok := p[BaseLocale(locale)]
	if !ok {
		return false
	}
	_, ok = set[slug]
	return ok
}
