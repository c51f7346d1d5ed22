// Package schema validates frontmatter against per-content-type JSON
// schemas. Schema coverage is opt-in: content types without an
// embedded schema document pass every file through unvalidated.
package schema

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Registry holds compiled frontmatter schemas keyed by content type.
type Registry struct {
	mu       sync.Mutex
	compiled map[string]*gojsonschema.Schema
	raw      map[string][]byte
}

// NewRegistry loads the embedded schema documents. Compilation is
// deferred to first use per content type.
func NewRegistry() (*Registry, error) {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("read embedded schemas: %w", err)
	}

	raw := make(map[string][]byte, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		data, err := schemaFS.ReadFile(path.Join("schemas", name))
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", name, err)
		}
		key := strings.TrimSuffix(name, ".json")
		raw[key] = data
	}

	return &Registry{
		compiled: make(map[string]*gojsonschema.Schema),
		raw:      raw,
	}, nil
}

// Has reports whether a schema is registered for the content type.
func (r *Registry) Has(contentType string) bool {
	_, ok := r.raw[contentType]
	return ok
}

// Validate checks the document against the content type's schema and
// returns one formatted message per violation: "<field>: <message>"
// or the bare message when the violation has no field path. A nil
// slice means the document is valid. Content types without a schema
// always validate.
func (r *Registry) Validate(contentType string, document map[string]any) ([]string, error) {
	compiled, err := r.schemaFor(contentType)
	if err != nil {
		return nil, err
	}
	if compiled == nil {
		return nil, nil
	}

	result, err := compiled.Validate(gojsonschema.NewGoLoader(document))
	if err != nil {
		return nil, fmt.Errorf("validate against %s schema: %w", contentType, err)
	}
	if result.Valid() {
		return nil, nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, violation := range result.Errors() {
		field := violation.Field()
		if field == "" || field == "(root)" {
			messages = append(messages, violation.Description())
			continue
		}
		messages = append(messages, fmt.Sprintf("%s: %s", field, violation.Description()))
	}
	return messages, nil
}

// schemaFor returns the compiled schema for the content type,
// compiling it on first use. Nil when no schema is registered.
func (r *Registry) schemaFor(contentType string) (*gojsonschema.Schema, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if compiled, ok := r.compiled[contentType]; ok {
		return compiled, nil
	}
	data, ok := r.raw[contentType]
	if !ok {
		return nil, nil
	}

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", contentType, err)
	}
	r.compiled[contentType] = compiled
	return compiled, nil
}
