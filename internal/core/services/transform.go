package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/meridianhq/localsync/internal/core/domain"
	"github.com/meridianhq/localsync/internal/markdown"
	"github.com/meridianhq/localsync/internal/schema"
)

// blockComponent tags the content block carrying the MDX body.
const blockComponent = "block-content"

// Transformer maps a content file (plus, optionally, the existing
// CMS document) into the API payload for its content type.
//
// The governing rule for every optional nested field: override from
// the MDX when the file supplies it, otherwise preserve the existing
// document's value unchanged. An MDX file that omits a hero or has a
// blank body must never erase previously authored CMS content.
type Transformer struct {
	schemas *schema.Registry
	now     func() time.Time
}

// NewTransformer creates a transformer over the schema registry.
func NewTransformer(schemas *schema.Registry) *Transformer {
	return &Transformer{schemas: schemas, now: time.Now}
}

// ToPayload builds the CMS field payload for the file. It fails for
// content types outside the registry and re-validates frontmatter at
// transform time.
func (t *Transformer) ToPayload(ct domain.ContentType, file *domain.ContentFile, existing *domain.CMSDocument) (map[string]any, error) {
	switch ct.BodyFormat {
	case domain.BodyHTML, domain.BodyMarkdown:
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, ct.Key)
	}

	messages, err := t.schemas.Validate(ct.Key, withSlug(file))
	if err != nil {
		return nil, fmt.Errorf("revalidate %s: %w", file.Slug, err)
	}
	if len(messages) > 0 {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrSchemaViolation, file.Slug, strings.Join(messages, "; "))
	}

	title := file.FrontmatterString("title")
	if title == "" {
		title = file.Slug
	}

	// Every sync run that touches a document stamps it as freshly
	// published. Last writer wins.
	payload := map[string]any{
		"title":       title,
		"slug":        file.Slug,
		"publishedAt": t.now().UTC().Format(time.RFC3339),
	}

	if hero := t.heroFields(file, title, existing); hero != nil {
		payload["hero"] = hero
	}
	content, err := t.contentBlocks(ct, file, existing)
	if err != nil {
		return nil, err
	}
	if content != nil {
		payload["content"] = content
	}

	return payload, nil
}

// heroFields builds the hero section from frontmatter, or passes the
// existing document's hero through unchanged when the frontmatter
// supplies none. Nil means the payload carries no hero key.
func (t *Transformer) heroFields(file *domain.ContentFile, title string, existing *domain.CMSDocument) any {
	heroTitle := file.FrontmatterString("heroTitle")
	heroDescription := file.FrontmatterString("heroDescription")

	if heroTitle != "" || heroDescription != "" {
		if heroTitle == "" {
			heroTitle = title
		}
		return map[string]any{
			"title":       heroTitle,
			"description": heroDescription,
		}
	}

	if existing != nil {
		if hero, ok := existing.Fields["hero"]; ok && hero != nil {
			return hero
		}
	}
	return nil
}

// contentBlocks wraps a non-blank body as one component-tagged block,
// rendered to HTML or kept as raw markdown per content type. A blank
// body preserves the existing document's blocks identically.
func (t *Transformer) contentBlocks(ct domain.ContentType, file *domain.ContentFile, existing *domain.CMSDocument) (any, error) {
	if strings.TrimSpace(file.Body) != "" {
		block := map[string]any{"component": blockComponent}
		switch ct.BodyFormat {
		case domain.BodyHTML:
			html, err := markdown.ToHTML(file.Body)
			if err != nil {
				return nil, fmt.Errorf("render body of %s: %w", file.Slug, err)
			}
			block["html"] = html
		case domain.BodyMarkdown:
			block["markdown"] = file.Body
		}
		return []any{block}, nil
	}

	if existing != nil {
		if content, ok := existing.Fields["content"]; ok && content != nil {
			return content, nil
		}
	}
	return nil, nil
}
