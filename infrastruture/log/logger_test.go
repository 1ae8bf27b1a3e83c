package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New("", "", &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrEmptyPrefix)
}

func TestLoggerLines(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("WALKER", "", &buf)
	require.NoError(t, err)

	l.Info("walk started")
	l.WithFields(map[string]any{"walk": "abc", "steps": 3}).Warning("blocked")
	l.Error("boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "[WALKER] "))
	assert.Contains(t, lines[0], "[INFO]")
	assert.True(t, strings.HasSuffix(lines[0], "walk started"))
	assert.Contains(t, lines[1], "[WARNING]")
	assert.True(t, strings.HasSuffix(lines[1], "blocked steps=3 walk=abc"))
	assert.Contains(t, lines[2], "[ERROR]")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("APP", "\033[32m", &buf)
	require.NoError(t, err)

	require.NoError(t, l.SetLevel("warning"))
	l.Debug("hidden")
	l.Info("hidden")
	l.Warning("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.True(t, strings.HasPrefix(buf.String(), "\033[32m[APP]"))

	assert.Error(t, l.SetLevel("loud"))
}
