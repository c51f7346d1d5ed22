package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhq/localsync/internal/core/domain"
	"github.com/meridianhq/localsync/internal/schema"
)

func newTestInspection(t *testing.T, root string, types ...domain.ContentType) *Inspection {
	t.Helper()
	registry, err := schema.NewRegistry()
	require.NoError(t, err)
	if len(types) == 0 {
		types = []domain.ContentType{blogType()}
	}
	return NewInspection(NewScanner(root, "en"), NewValidator(registry), types)
}

func TestValidateAllCollectsAcrossTypes(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "blog/good.mdx", "---\ntitle: Good\n---\n")
	writeContentFile(t, root, "blog/bad.mdx", "---\ntitle: \"\"\n---\n")
	writeContentFile(t, root, "foundation/also-bad.mdx", "---\ntitle: \"\"\n---\n")

	insp := newTestInspection(t, root, blogType(), foundationType())

	diagnostics, err := insp.ValidateAll()
	require.NoError(t, err)
	require.Len(t, diagnostics, 2)

	slugs := []string{diagnostics[0].Slug, diagnostics[1].Slug}
	assert.Contains(t, slugs, "bad")
	assert.Contains(t, slugs, "also-bad")
}

func TestValidateAllCleanTree(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "blog/good.mdx", "---\ntitle: Good\n---\n")

	insp := newTestInspection(t, root)

	diagnostics, err := insp.ValidateAll()
	require.NoError(t, err)
	assert.Empty(t, diagnostics)
}

func TestInspectionLocalesPresent(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "blog/about.mdx", "---\ntitle: About\n---\n")
	writeContentFile(t, root, "es/blog/sobre.mdx", "---\ntitle: Sobre\nlocalizes: about\n---\n")

	insp := newTestInspection(t, root)

	assert.Equal(t, []string{"en", "es"}, insp.LocalesPresent())
}
