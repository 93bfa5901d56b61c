// Package suggest is the demo's suggestion source: it turns the text typed so
// far into the Data slice handed to the autocomplete widget.
package suggest

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

//go:embed words.txt
var defaultWords string

// MaxDistance is how far a word may be from the query to count as a near
// miss when nothing matches by prefix.
const MaxDistance = 2

// Source holds a deduplicated, sorted word list.
type Source struct {
	words []string
}

// New creates a source over words. Blank entries and duplicates are dropped.
func New(words []string) *Source {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return &Source{words: out}
}

// Default returns the built-in word list.
func Default() *Source {
	return New(strings.Split(defaultWords, "\n"))
}

// LoadFile reads one word per line.
func LoadFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return New(words), nil
}

// Len returns the number of words.
func (s *Source) Len() int {
	return len(s.words)
}

// Words returns a copy of the word list.
func (s *Source) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

type candidate struct {
	word string
	dist int
}

// Match returns up to limit words for query, closest first.
// Prefix matches win; near misses are used only when there are none.
// A limit of zero or less means no limit.
func (s *Source) Match(query string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var found []candidate
	for _, w := range s.words {
		lw := strings.ToLower(w)
		if strings.HasPrefix(lw, q) {
			found = append(found, candidate{w, levenshtein.ComputeDistance(q, lw)})
		}
	}

	if len(found) == 0 {
		for _, w := range s.words {
			if d := levenshtein.ComputeDistance(q, strings.ToLower(w)); d <= MaxDistance {
				found = append(found, candidate{w, d})
			}
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].dist != found[j].dist {
			return found[i].dist < found[j].dist
		}
		return found[i].word < found[j].word
	})

	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}
	out := make([]string, len(found))
	for i, c := range found {
		out[i] = c.word
	}
	return out
}
