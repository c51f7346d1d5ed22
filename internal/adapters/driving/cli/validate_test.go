package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCmd_Use(t *testing.T) {
	assert.Equal(t, "validate", validateCmd.Use)
}

func TestValidateCmd_Short(t *testing.T) {
	assert.Equal(t, "Check frontmatter of all on-disk content", validateCmd.Short)
}

func TestValidateCmd_AllValid(t *testing.T) {
	root := t.TempDir()
	writeMDX(t, root, "blog/about.mdx", "---\ntitle: About\n---\n")

	cleanup := setupCLITest(t, root)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"validate"})

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "All content files are valid.")
}

func TestValidateCmd_ReportsInvalidFiles(t *testing.T) {
	root := t.TempDir()
	writeMDX(t, root, "blog/broken.mdx", "---\ntitle: \"\"\n---\n")

	cleanup := setupCLITest(t, root)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"validate"})

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "1 invalid content files")
	assert.Contains(t, buf.String(), "broken")
}
