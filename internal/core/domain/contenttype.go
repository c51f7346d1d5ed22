package domain

// BodyFormat selects how a content type stores MDX body text in the
// CMS content block.
type BodyFormat string

const (
	// BodyHTML stores the body rendered to HTML (blog-like types).
	BodyHTML BodyFormat = "html"

	// BodyMarkdown stores the raw markdown (page-like types).
	BodyMarkdown BodyFormat = "markdown"
)

// ContentType describes one syncable content type: where its files
// live on disk and which CMS type they map to.
type ContentType struct {
	// Key is the registry key, e.g. "blog".
	Key string

	// Dir is the on-disk directory under the content root holding
	// the default-locale files.
	Dir string

	// CMSTypeID is the CMS content type identifier.
	CMSTypeID string

	// BodyFormat selects markdown or rendered HTML body storage.
	BodyFormat BodyFormat
}

// DefaultContentTypes returns the built-in content type registry.
// Entries can be overridden per key through the config file.
func DefaultContentTypes() []ContentType {
	return []ContentType{
		{Key: "blog", Dir: "blog", CMSTypeID: "blogPost", BodyFormat: BodyHTML},
		{Key: "caseStudy", Dir: "case-studies", CMSTypeID: "caseStudy", BodyFormat: BodyHTML},
		{Key: "foundationPage", Dir: "foundation", CMSTypeID: "foundationPage", BodyFormat: BodyMarkdown},
		{Key: "summitPage", Dir: "summit", CMSTypeID: "summitPage", BodyFormat: BodyMarkdown},
	}
}
