package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhq/localsync/internal/core/domain"
)

func TestCreateAndFind(t *testing.T) {
	ctx := context.Background()
	client := NewClient("en")

	created, err := client.CreateEntry(ctx, "blogPost", map[string]any{"slug": "about", "title": "About"}, "")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "about", created.Slug)
	assert.Equal(t, "en", created.Locale)

	found, err := client.FindBySlug(ctx, "blogPost", "about", "en")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = client.FindBySlug(ctx, "blogPost", "missing", "en")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLocalizations(t *testing.T) {
	ctx := context.Background()
	client := NewClient("en")

	created, err := client.CreateEntry(ctx, "blogPost", map[string]any{"slug": "about"}, "")
	require.NoError(t, err)

	err = client.CreateLocalization(ctx, "blogPost", created.ID, "es-419", map[string]any{"slug": "sobre-nosotros"})
	require.NoError(t, err)

	// Base-code matching: "es" finds the es-419 variant.
	found, err := client.FindBySlug(ctx, "blogPost", "sobre-nosotros", "es")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID, "localization shares the document id")
	assert.Equal(t, "es-419", found.Locale)

	err = client.CreateLocalization(ctx, "blogPost", "no-such-id", "fr", map[string]any{"slug": "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound, "localizing a missing base document fails loudly")
}

func TestUpdateLocalizationDelegatesToCreate(t *testing.T) {
	ctx := context.Background()
	client := NewClient("en")

	created, err := client.CreateEntry(ctx, "blogPost", map[string]any{"slug": "about"}, "")
	require.NoError(t, err)

	// No es localization exists yet, so update must create one.
	err = client.UpdateLocalization(ctx, "blogPost", created.ID, "es", map[string]any{"slug": "sobre-nosotros", "title": "v1"})
	require.NoError(t, err)

	found, err := client.FindBySlug(ctx, "blogPost", "sobre-nosotros", "es")
	require.NoError(t, err)
	assert.Equal(t, "v1", found.Fields["title"])

	// Second update hits the existing localization.
	err = client.UpdateLocalization(ctx, "blogPost", created.ID, "es", map[string]any{"slug": "sobre-nosotros", "title": "v2"})
	require.NoError(t, err)

	found, err = client.FindBySlug(ctx, "blogPost", "sobre-nosotros", "es")
	require.NoError(t, err)
	assert.Equal(t, "v2", found.Fields["title"])
}

func TestGetAllEntries(t *testing.T) {
	ctx := context.Background()
	client := NewClient("en")

	first, err := client.CreateEntry(ctx, "blogPost", map[string]any{"slug": "keep"}, "")
	require.NoError(t, err)
	require.NoError(t, client.CreateLocalization(ctx, "blogPost", first.ID, "es", map[string]any{"slug": "mantener"}))
	_, err = client.CreateEntry(ctx, "blogPost", map[string]any{"slug": "remove"}, "")
	require.NoError(t, err)

	en, err := client.GetAllEntries(ctx, "blogPost", "en")
	require.NoError(t, err)
	assert.Len(t, en, 2)

	es, err := client.GetAllEntries(ctx, "blogPost", "es")
	require.NoError(t, err)
	assert.Len(t, es, 1)

	all, err := client.GetAllEntries(ctx, "blogPost", domain.LocaleAll)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	client := NewClient("en")

	created, err := client.CreateEntry(ctx, "blogPost", map[string]any{"slug": "about"}, "")
	require.NoError(t, err)
	require.NoError(t, client.CreateLocalization(ctx, "blogPost", created.ID, "es", map[string]any{"slug": "sobre-nosotros"}))

	require.NoError(t, client.DeleteLocalization(ctx, "blogPost", created.ID, "es"))
	_, err = client.FindBySlug(ctx, "blogPost", "sobre-nosotros", "es")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, client.DeleteEntry(ctx, "blogPost", created.ID))
	_, err = client.FindBySlug(ctx, "blogPost", "about", "en")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, client.DeleteEntry(ctx, "blogPost", created.ID), domain.ErrNotFound)
}
