package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugGatedByVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetVerbose(false)

	SetVerbose(false)
	Debug("hidden %s", "msg")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Debug("shown %s", "msg")
	assert.Contains(t, buf.String(), "[DEBUG] shown msg")
}

func TestWarnAlwaysPrints(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetVerbose(false)
	Warn("orphaned locale file %s", "es/about.mdx")
	assert.Contains(t, buf.String(), "[WARN] orphaned locale file es/about.mdx")
}

func TestInfoAndSection(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetVerbose(false)

	SetVerbose(true)
	Info("syncing %d files", 3)
	Section("blog")

	out := buf.String()
	assert.Contains(t, out, "[INFO] syncing 3 files")
	assert.Contains(t, out, "=== blog ===")
	assert.True(t, IsVerbose())
}
