package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhq/localsync/internal/core/domain"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.DefaultLocale())
	assert.Empty(t, cfg.CMS.BaseURL)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	cfg := &domain.Config{}
	cfg.CMS.BaseURL = "https://cms.example.com/api"
	cfg.Content.Root = "/srv/content"
	cfg.Content.DefaultLocale = "en"
	cfg.ContentTypes = map[string]domain.ContentTypeOverride{
		"blog": {Dir: "posts"},
	}
	require.NoError(t, store.Save(cfg))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://cms.example.com/api", loaded.CMS.BaseURL)
	assert.Equal(t, "/srv/content", loaded.Content.Root)
	assert.Equal(t, "posts", loaded.ContentTypes["blog"].Dir)

	info, err := os.Stat(filepath.Join(filepath.Dir(store.Path()), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestEnvTokenOverride(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	cfg := &domain.Config{}
	cfg.CMS.Token = "stored-token"
	require.NoError(t, store.Save(cfg))

	t.Setenv("LOCALSYNC_CMS_TOKEN", "env-token")

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "env-token", loaded.CMS.Token)
}
