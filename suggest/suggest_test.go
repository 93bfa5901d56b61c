package suggest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRanksPrefixMatchesByDistance(t *testing.T) {
	s := New([]string{"cart", "car", "cat", "dog", "carton"})

	assert.Equal(t, []string{"car", "cat", "cart", "carton"}, s.Match("ca", 0))
	assert.Equal(t, []string{"car", "cart"}, s.Match("car", 2))
}

func TestExactWordComesFirst(t *testing.T) {
	s := New([]string{"cattle", "cat", "caterpillar"})

	got := s.Match("cat", 0)
	require.NotEmpty(t, got)
	assert.Equal(t, "cat", got[0])
}

func TestMatchFallsBackToNearMisses(t *testing.T) {
	s := New([]string{"tiger", "toad", "zebra"})

	assert.Equal(t, []string{"tiger"}, s.Match("tigre", 0))
	assert.Empty(t, s.Match("xyz", 0))
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	s := New([]string{"Koala", "kangaroo"})

	assert.Equal(t, []string{"Koala"}, s.Match("KO", 0))
}

func TestEmptyQueryHasNoMatches(t *testing.T) {
	assert.Nil(t, Default().Match("  ", 5))
}

func TestNewDropsBlanksAndDuplicates(t *testing.T) {
	s := New([]string{"owl", "", " owl ", "ox"})
	assert.Equal(t, 2, s.Len())
}

func TestDefaultWords(t *testing.T) {
	s := Default()
	assert.Greater(t, s.Len(), 100)
	assert.Contains(t, s.Match("ca", 0), "cat")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("heron\nhare\n\nhawk\n"), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"hare", "hawk"}, s.Match("ha", 0))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "failed to open word list")
}
