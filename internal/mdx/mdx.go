// Package mdx parses MDX content files into a frontmatter map and a
// body string. Frontmatter is the YAML block between "---" fences at
// the top of the file; everything after the closing fence is body.
package mdx

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Extension is the recognized content file extension.
const Extension = ".mdx"

// File is one parsed MDX file.
type File struct {
	// Frontmatter holds the parsed YAML frontmatter fields.
	// Never nil; empty when the file has no frontmatter block.
	Frontmatter map[string]any

	// Body is the trimmed content after the frontmatter block.
	Body string
}

// datePrefix matches a leading YYYY-MM-DD- filename prefix.
var datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-`)

// Parse splits raw file content into frontmatter and body.
// Content without a frontmatter block yields an empty map and the
// whole trimmed content as body.
func Parse(content []byte) (*File, error) {
	str := string(content)

	if strings.HasPrefix(str, "---") {
		parts := strings.SplitN(str, "---", 3) // "", frontmatter, body
		if len(parts) == 3 {
			fm := make(map[string]any)
			if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
				return nil, fmt.Errorf("parse frontmatter: %w", err)
			}
			if fm == nil {
				fm = make(map[string]any)
			}
			return &File{Frontmatter: fm, Body: strings.TrimSpace(parts[2])}, nil
		}
	}

	return &File{
		Frontmatter: make(map[string]any),
		Body:        strings.TrimSpace(str),
	}, nil
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(content)
}

// SlugFromFilename derives a slug from a file name: the extension is
// dropped and any leading YYYY-MM-DD- date prefix stripped.
func SlugFromFilename(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return datePrefix.ReplaceAllString(base, "")
}
