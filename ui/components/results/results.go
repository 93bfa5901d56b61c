package results

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/drake/autocomplete/ui/rows"
	"github.com/drake/autocomplete/ui/style"
)

// Config holds list configuration.
type Config struct {
	MaxVisible int // Maximum number of visible rows
	CacheSize  int // Rendered rows kept between frames
}

// Model is a scrolling list over a row collection.
type Model[T comparable] struct {
	rows      *rows.Rows[T]
	render    func(T) string
	cache     *lru.Cache[int, string]
	selected  int
	scrollOff int
	config    Config
	styles    style.Styles
	width     int
}

// New creates an empty list.
func New[T comparable](config Config, styles style.Styles) *Model[T] {
	if config.MaxVisible == 0 {
		config.MaxVisible = 10
	}
	if config.CacheSize == 0 {
		config.CacheSize = 256
	}
	cache, _ := lru.New[int, string](config.CacheSize)
	return &Model[T]{
		rows:   rows.New[T](nil),
		render: PlainText[T],
		cache:  cache,
		config: config,
		styles: styles,
	}
}

// PlainText renders an item with its default formatting.
func PlainText[T any](item T) string {
	return fmt.Sprint(item)
}

// SetRenderer replaces the row renderer and drops every cached row. Funcs
// can't be compared, so any call counts as a new renderer.
func (m *Model[T]) SetRenderer(fn func(T) string) {
	if fn == nil {
		fn = PlainText[T]
	}
	m.render = fn
	m.cache.Purge()
}

// SetRows replaces the rows. Only rows the collection marks as changed, and
// rows past the new end, are evicted from the render cache.
func (m *Model[T]) SetRows(r *rows.Rows[T]) {
	for _, i := range r.ChangedRows() {
		m.cache.Remove(i)
	}
	for _, i := range m.cache.Keys() {
		if i >= r.Len() {
			m.cache.Remove(i)
		}
	}
	m.rows = r
	m.selected = 0
	m.scrollOff = 0
}

// Rows returns the current row collection.
func (m *Model[T]) Rows() *rows.Rows[T] {
	return m.rows
}

// SetStyles replaces the row styles.
func (m *Model[T]) SetStyles(s style.Styles) {
	m.styles = s
}

// SetWidth updates the list width.
func (m *Model[T]) SetWidth(w int) {
	m.width = w
}

// SelectUp moves selection up with wraparound.
func (m *Model[T]) SelectUp() {
	if m.rows.Len() == 0 {
		return
	}
	m.selected--
	if m.selected < 0 {
		m.selected = m.rows.Len() - 1
	}
	m.adjustScroll()
}

// SelectDown moves selection down with wraparound.
func (m *Model[T]) SelectDown() {
	if m.rows.Len() == 0 {
		return
	}
	m.selected++
	if m.selected >= m.rows.Len() {
		m.selected = 0
	}
	m.adjustScroll()
}

func (m *Model[T]) adjustScroll() {
	if m.selected < m.scrollOff {
		m.scrollOff = m.selected
	} else if m.selected >= m.scrollOff+m.config.MaxVisible {
		m.scrollOff = m.selected - m.config.MaxVisible + 1
	}
}

// Selected returns the currently selected row, or false if none.
func (m *Model[T]) Selected() (T, bool) {
	var zero T
	if m.selected < 0 || m.selected >= m.rows.Len() {
		return zero, false
	}
	return m.rows.At(m.selected), true
}

// SelectedIndex returns the current selection index.
func (m *Model[T]) SelectedIndex() int {
	return m.selected
}

// Height returns the number of visible rows.
func (m *Model[T]) Height() int {
	return min(m.rows.Len(), m.config.MaxVisible)
}

func (m *Model[T]) renderRow(i int) string {
	if s, ok := m.cache.Get(i); ok {
		return s
	}
	s := m.render(m.rows.At(i))
	m.cache.Add(i, s)
	return s
}

// View renders the visible rows inside listStyle.
func (m *Model[T]) View(listStyle lipgloss.Style) string {
	start := m.scrollOff
	end := min(start+m.config.MaxVisible, m.rows.Len())

	inner := m.width - listStyle.GetHorizontalFrameSize()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rowStyle := m.styles.Row
		if i == m.selected {
			rowStyle = m.styles.RowSelected
		}
		if inner > 0 {
			rowStyle = rowStyle.Width(inner).MaxWidth(inner)
		}
		lines = append(lines, rowStyle.Render(m.renderRow(i)))
	}

	return listStyle.Render(strings.Join(lines, "\n"))
}
