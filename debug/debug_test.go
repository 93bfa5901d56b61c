package debug

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestNewLoggerDiscardsWhenDisabled(t *testing.T) {
	t.Setenv("AUTOCOMPLETE_DEBUG", "")
	dir := t.TempDir()

	NewLogger(dir).Print("hello")

	_, err := os.Stat(filepath.Join(dir, "autocomplete.log"))
	assert.True(t, os.IsNotExist(err))
}

func TestNewLoggerWritesFileWhenEnabled(t *testing.T) {
	t.Setenv("AUTOCOMPLETE_DEBUG", "1")
	dir := t.TempDir()

	l := NewLogger(dir)
	l.Print("showing=true")
	t.Cleanup(func() { l.Writer().(*lumberjack.Logger).Close() })

	data, err := os.ReadFile(filepath.Join(dir, "autocomplete.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "showing=true")
}
