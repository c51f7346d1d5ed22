package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalesCmd_Use(t *testing.T) {
	assert.Equal(t, "locales", localesCmd.Use)
}

func TestLocalesCmd_ListsLocalesWithDefaultMarker(t *testing.T) {
	root := t.TempDir()
	writeMDX(t, root, "blog/about.mdx", "---\ntitle: About\n---\n")
	writeMDX(t, root, "es/blog/sobre-nosotros.mdx", "---\ntitle: Sobre\nlocalizes: about\n---\n")

	cleanup := setupCLITest(t, root)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"locales"})

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "en (default)")
	assert.Contains(t, buf.String(), "es")
}
