package logger

import (
	"bytes"
	"os"
	"testing"

	"gotest.tools/v3/assert"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	assert.Assert(t, !IsVerbose())

	SetVerbose(true)
	assert.Assert(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("loaded %d bookmarks", 3)
	Info("source %s", "json")
	Warn("skipping %q", "Work")
	Section("Ranking")

	want := "[DEBUG] loaded 3 bookmarks\n" +
		"[INFO] source json\n" +
		"[WARN] skipping \"Work\"\n" +
		"\n=== Ranking ===\n"
	assert.Equal(t, buf.String(), want)
}

func TestLevels_WhenQuiet(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	assert.Equal(t, buf.Len(), 0)
}
