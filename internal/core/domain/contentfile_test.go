package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseLocale(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		want   string
	}{
		{name: "plain code", locale: "es", want: "es"},
		{name: "region suffix", locale: "es-419", want: "es"},
		{name: "multi segment", locale: "zh-Hant-TW", want: "zh"},
		{name: "empty", locale: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseLocale(tt.locale))
		})
	}
}

func TestProcessedSlugs(t *testing.T) {
	p := NewProcessedSlugs()

	assert.False(t, p.Has("es", "about"))

	p.Add("es-419", "about")

	// Region variants share the base code.
	assert.True(t, p.Has("es", "about"))
	assert.True(t, p.Has("es-419", "about"))
	assert.False(t, p.Has("fr", "about"))
	assert.False(t, p.Has("es", "other"))
}

func TestContentFileFrontmatterString(t *testing.T) {
	f := &ContentFile{
		Frontmatter: map[string]any{
			"title": "About Us",
			"order": 3,
		},
	}

	assert.Equal(t, "About Us", f.FrontmatterString("title"))
	assert.Equal(t, "", f.FrontmatterString("order"), "non-string scalar")
	assert.Equal(t, "", f.FrontmatterString("missing"))

	var empty ContentFile
	assert.Equal(t, "", empty.FrontmatterString("title"), "nil frontmatter")
}

func TestSyncResultMerge(t *testing.T) {
	r := SyncResult{Created: 1, Updated: 2}
	r.Merge(SyncResult{Created: 2, Deleted: 1, Errors: 3})

	assert.Equal(t, SyncResult{Created: 3, Updated: 2, Deleted: 1, Errors: 3}, r)
}

func TestConfigRegistryOverrides(t *testing.T) {
	cfg := &Config{
		ContentTypes: map[string]ContentTypeOverride{
			"blog": {Dir: "posts", CMSTypeID: "post"},
		},
	}

	for _, ct := range cfg.Registry() {
		if ct.Key == "blog" {
			assert.Equal(t, "posts", ct.Dir)
			assert.Equal(t, "post", ct.CMSTypeID)
		}
		if ct.Key == "summitPage" {
			assert.Equal(t, "summit", ct.Dir, "untouched entries keep defaults")
		}
	}

	assert.Equal(t, "en", cfg.DefaultLocale())
	cfg.Content.DefaultLocale = "de"
	assert.Equal(t, "de", cfg.DefaultLocale())
}
