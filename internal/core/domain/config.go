package domain

// Config is the resolved tool configuration, loaded from the TOML
// config file with environment overrides applied.
type Config struct {
	// CMS holds the API connection settings.
	CMS CMSConfig

	// Content holds the on-disk content tree settings.
	Content ContentConfig

	// ContentTypes overrides registry entries by key. Keys absent
	// here keep their built-in directory and CMS type id.
	ContentTypes map[string]ContentTypeOverride
}

// CMSConfig holds CMS API connection settings.
type CMSConfig struct {
	// BaseURL is the management API root, e.g.
	// "https://cms.example.com/api".
	BaseURL string

	// Token is the bearer token for the management API. Normally
	// supplied via LOCALSYNC_CMS_TOKEN rather than stored here.
	Token string

	// RequestsPerSecond caps the client-side request rate.
	// Zero means the default of 5.
	RequestsPerSecond float64
}

// ContentConfig holds on-disk content tree settings.
type ContentConfig struct {
	// Root is the directory containing the content type
	// directories and locale subtrees.
	Root string

	// DefaultLocale is the canonical locale code. Defaults to "en".
	DefaultLocale string
}

// ContentTypeOverride overrides one registry entry's location.
type ContentTypeOverride struct {
	// Dir replaces the on-disk directory when non-empty.
	Dir string

	// CMSTypeID replaces the CMS type id when non-empty.
	CMSTypeID string
}

// Registry returns the effective content type registry: the built-in
// entries with any per-key overrides applied.
func (c *Config) Registry() []ContentType {
	types := DefaultContentTypes()
	for i := range types {
		override, ok := c.ContentTypes[types[i].Key]
		if !ok {
			continue
		}
		if override.Dir != "" {
			types[i].Dir = override.Dir
		}
		if override.CMSTypeID != "" {
			types[i].CMSTypeID = override.CMSTypeID
		}
	}
	return types
}

// DefaultLocale returns the configured default locale, falling back
// to "en".
func (c *Config) DefaultLocale() string {
	if c.Content.DefaultLocale == "" {
		return "en"
	}
	return c.Content.DefaultLocale
}
