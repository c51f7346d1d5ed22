package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	out, err := ToHTML("# Title\n\nA *paragraph*.")
	require.NoError(t, err)

	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, "<em>paragraph</em>")
}

func TestToHTMLEmpty(t *testing.T) {
	out, err := ToHTML("")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestToHTMLTable(t *testing.T) {
	out, err := ToHTML("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>", "GFM tables enabled")
}
