package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupCLITest points the CLI at a temp config dir whose config.toml
// names contentRoot, and returns a cleanup restoring the old state.
func setupCLITest(t *testing.T, contentRoot string) func() {
	t.Helper()
	oldConfigDir := configDir
	configDir = t.TempDir()

	cfg := fmt.Sprintf("[content]\nroot = %q\n", contentRoot)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(cfg), 0600))

	return func() {
		configDir = oldConfigDir
		syncDryRun = false
		syncOffline = false
		rootCmd.SetArgs(nil)
	}
}

func writeMDX(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestSyncCmd_Use(t *testing.T) {
	assert.Equal(t, "sync [content-type]", syncCmd.Use)
}

func TestSyncCmd_Short(t *testing.T) {
	assert.Equal(t, "Reconcile on-disk content with the CMS", syncCmd.Short)
}

func TestSyncCmd_Long(t *testing.T) {
	assert.Contains(t, syncCmd.Long, "content type")
	assert.Contains(t, syncCmd.Long, "--dry-run")
}

func TestSyncCmd_OfflineSyncsAllTypes(t *testing.T) {
	root := t.TempDir()
	writeMDX(t, root, "blog/about.mdx", "---\ntitle: About\n---\nBody")

	cleanup := setupCLITest(t, root)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sync", "--offline"})

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "1 created, 0 updated, 0 deleted, 0 errors")
}

func TestSyncCmd_DryRunReported(t *testing.T) {
	root := t.TempDir()
	writeMDX(t, root, "blog/about.mdx", "---\ntitle: About\n---\n")

	cleanup := setupCLITest(t, root)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sync", "blog", "--offline", "--dry-run"})

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "(dry run)")
}

func TestSyncCmd_UnknownTypeFails(t *testing.T) {
	cleanup := setupCLITest(t, t.TempDir())
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"sync", "mystery", "--offline"})

	err := rootCmd.Execute()

	assert.Error(t, err)
}

func TestSyncCmd_MissingContentRootFails(t *testing.T) {
	cleanup := setupCLITest(t, "")
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"sync", "--offline"})

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "content root not configured")
}
