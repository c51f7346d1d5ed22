package services

import (
	"github.com/meridianhq/localsync/internal/core/domain"
	"github.com/meridianhq/localsync/internal/schema"
)

// Validator partitions scanned files into valid and invalid sets
// against the content type's frontmatter schema. Content types
// without a registered schema pass every file through unvalidated.
type Validator struct {
	schemas *schema.Registry
}

// NewValidator creates a validator over the schema registry.
func NewValidator(schemas *schema.Registry) *Validator {
	return &Validator{schemas: schemas}
}

// Partition validates each file and splits the input. Invalid files
// carry one formatted message per violation; they are excluded from
// sync but their (locale, slug) still counts as present on disk so
// an invalid file never causes its CMS document to be deleted.
func (v *Validator) Partition(ct domain.ContentType, files []*domain.ContentFile) ([]*domain.ContentFile, []domain.ValidationError) {
	if !v.schemas.Has(ct.Key) {
		return files, nil
	}

	var valid []*domain.ContentFile
	var invalid []domain.ValidationError
	for _, file := range files {
		messages, err := v.schemas.Validate(ct.Key, withSlug(file))
		if err != nil {
			messages = []string{err.Error()}
		}
		if len(messages) == 0 {
			valid = append(valid, file)
			continue
		}
		invalid = append(invalid, domain.ValidationError{
			Path:   file.Path,
			Slug:   file.Slug,
			Locale: file.Locale,
			Errors: messages,
		})
	}
	return valid, invalid
}

// withSlug copies the frontmatter with the resolved slug injected,
// so filename-derived slugs are validated even when absent from the
// raw frontmatter.
func withSlug(file *domain.ContentFile) map[string]any {
	doc := make(map[string]any, len(file.Frontmatter)+1)
	for k, val := range file.Frontmatter {
		doc[k] = val
	}
	doc["slug"] = file.Slug
	return doc
}
