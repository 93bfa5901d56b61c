// Package autocomplete provides a text input paired with a dropdown list of
// suggestion rows.
//
// The caller owns the suggestions: on every ChangeMsg it computes a new Data
// slice and hands it back through SetProps. The widget only decides whether
// the list is visible. It is shown when DefaultValue changes to a non-empty
// value that is not already the first suggestion and there is at least one
// row. OnShowResults fires once per actual show/hide transition.
package autocomplete

import (
	"io"
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/autocomplete/ui/components/input"
	"github.com/drake/autocomplete/ui/components/results"
	"github.com/drake/autocomplete/ui/rows"
	"github.com/drake/autocomplete/ui/style"
)

// Props configures the widget. Fields not listed here go to the inner
// text field through PassThrough.
type Props[T comparable] struct {
	Data         []T
	DefaultValue string
	RenderItem   func(T) string

	OnShowResults func(bool)
	OnEndEditing  func(input.EndEditingEvent)
	OnSelect      func(T)

	Placeholder string
	AutoCorrect *bool // nil means true

	ContainerStyle      *lipgloss.Style
	InputContainerStyle *lipgloss.Style
	ListStyle           *lipgloss.Style
	Style               *lipgloss.Style

	MaxVisible  int
	PassThrough input.Options
}

// state is replaced wholesale on every transition.
type state[T comparable] struct {
	rows    *rows.Rows[T]
	showing bool
}

// Model is the autocomplete widget.
type Model[T comparable] struct {
	props  Props[T]
	state  state[T]
	styles style.Styles
	keys   KeyMap
	logger *log.Logger
	width  int

	input *input.Model // nil until mounted
	list  *results.Model[T]
}

// New creates an unmounted widget. Init mounts the inner text field.
func New[T comparable](props Props[T]) *Model[T] {
	styles := style.DefaultStyles()
	m := &Model[T]{
		props:  props,
		styles: styles,
		keys:   DefaultKeyMap(),
		logger: log.New(io.Discard, "", 0),
		list:   results.New[T](results.Config{MaxVisible: props.MaxVisible}, styles),
	}
	m.state = state[T]{rows: rows.New[T](nil).CloneWithRows(props.Data)}
	m.list.SetRenderer(props.RenderItem)
	m.list.SetRows(m.state.rows)
	return m
}

// SetLogger routes debug output to l.
func (m *Model[T]) SetLogger(l *log.Logger) {
	if l != nil {
		m.logger = l
	}
}

// SetKeyMap replaces the key bindings.
func (m *Model[T]) SetKeyMap(k KeyMap) {
	m.keys = k
}

// KeyMap returns the active key bindings.
func (m *Model[T]) KeyMap() KeyMap {
	return m.keys
}

// SetStyles replaces the default styles. Style props still take precedence.
func (m *Model[T]) SetStyles(s style.Styles) {
	m.styles = s
	m.list.SetStyles(s)
	if m.input != nil {
		m.input.SetProps(m.inputProps())
	}
}

// Init implements tea.Model. It mounts the inner text field.
func (m *Model[T]) Init() tea.Cmd {
	m.mount()
	return textinput.Blink
}

func (m *Model[T]) mount() {
	if m.input != nil {
		return
	}
	m.input = input.New(m.inputProps())
	m.input.SetValue(m.props.DefaultValue)
	if m.width > 0 {
		m.input.SetWidth(m.innerWidth())
	}
}

// Unmount drops the inner text field. Focus and Blur become no-ops.
func (m *Model[T]) Unmount() {
	m.input = nil
}

// Mounted reports whether the inner text field exists.
func (m *Model[T]) Mounted() bool {
	return m.input != nil
}

func (m *Model[T]) inputProps() input.Props {
	autoCorrect := true
	if m.props.AutoCorrect != nil {
		autoCorrect = *m.props.AutoCorrect
	}
	return input.Props{
		Placeholder:      m.props.Placeholder,
		PlaceholderStyle: m.styles.Placeholder,
		AutoCorrect:      autoCorrect,
		Style:            style.Pick(m.props.Style, m.styles.Input),
		OnEndEditing:     m.endEditing,
		Options:          m.props.PassThrough,
	}
}

// Focus gives focus to the inner text field.
func (m *Model[T]) Focus() tea.Cmd {
	if m.input == nil {
		return nil
	}
	return m.input.Focus()
}

// Blur removes focus from the inner text field.
func (m *Model[T]) Blur() {
	if m.input == nil {
		return
	}
	m.input.Blur()
}

// Value returns the text field's content, or "" when unmounted.
func (m *Model[T]) Value() string {
	if m.input == nil {
		return ""
	}
	return m.input.Value()
}

// SetValue replaces the text field's content.
func (m *Model[T]) SetValue(s string) {
	if m.input == nil {
		return
	}
	m.input.SetValue(s)
}

// Showing reports whether the results list is visible.
func (m *Model[T]) Showing() bool {
	return m.state.showing
}

// Rows returns the current row collection.
func (m *Model[T]) Rows() *rows.Rows[T] {
	return m.state.rows
}

// Props returns the current props.
func (m *Model[T]) Props() Props[T] {
	return m.props
}

// SetProps hands the widget new props and recomputes visibility.
//
// An empty or unchanged DefaultValue hides the list without touching the
// rows. Otherwise the rows are rebuilt from next.Data; if the first row is
// exactly DefaultValue the user has picked it and the list hides, else the
// list shows whenever there is something to show.
func (m *Model[T]) SetProps(next Props[T]) {
	prev := m.props
	m.props = next
	if m.input != nil {
		m.input.SetProps(m.inputProps())
	}
	m.list.SetRenderer(next.RenderItem)

	if next.DefaultValue == "" || next.DefaultValue == prev.DefaultValue {
		m.showResults(false)
		return
	}

	rebuilt := m.state.rows.CloneWithRows(next.Data)
	m.logger.Printf("autocomplete: rebuilt %d rows for %q (%d changed)",
		rebuilt.Len(), next.DefaultValue, len(rebuilt.ChangedRows()))

	if first, ok := rebuilt.First(); ok && any(first) == any(next.DefaultValue) {
		m.showResults(false)
		return
	}

	m.list.SetRows(rebuilt)
	m.state = state[T]{rows: rebuilt, showing: m.state.showing}
	m.showResults(rebuilt.Len() > 0)
}

// showResults flips visibility and notifies OnShowResults, but only when the
// value actually changes.
func (m *Model[T]) showResults(show bool) {
	if m.state.showing == show {
		return
	}
	m.state = state[T]{rows: m.state.rows, showing: show}
	m.logger.Printf("autocomplete: showing=%v", show)
	if m.props.OnShowResults != nil {
		m.props.OnShowResults(show)
	}
}

// endEditing hides the list before the caller hears about it.
func (m *Model[T]) endEditing(e input.EndEditingEvent) {
	m.showResults(false)
	if m.props.OnEndEditing != nil {
		m.props.OnEndEditing(e)
	}
}

// SetWidth sets the outer width of the widget.
func (m *Model[T]) SetWidth(w int) {
	m.width = w
	if m.input != nil {
		m.input.SetWidth(m.innerWidth())
	}
	m.list.SetWidth(w)
}

func (m *Model[T]) innerWidth() int {
	wrap := style.Pick(m.props.InputContainerStyle, m.styles.InputContainer)
	field := style.Pick(m.props.Style, m.styles.Input)
	return m.width - wrap.GetHorizontalFrameSize() - field.GetHorizontalFrameSize()
}

// Height returns the rendered height in lines.
func (m *Model[T]) Height() int {
	return lipgloss.Height(m.View())
}

// Update implements tea.Model.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.input == nil {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && m.input.Focused() {
		switch {
		case m.state.showing && key.Matches(msg, m.keys.Up):
			m.list.SelectUp()
			return m, nil
		case m.state.showing && key.Matches(msg, m.keys.Down):
			m.list.SelectDown()
			return m, nil
		case m.state.showing && key.Matches(msg, m.keys.Dismiss):
			m.showResults(false)
			return m, nil
		case key.Matches(msg, m.keys.Accept):
			if m.state.showing {
				return m, m.selectCurrent()
			}
			m.input.Submit()
			return m, nil
		}
	}

	changed, cmd := m.input.Update(msg)
	if !changed {
		return m, cmd
	}
	value := m.input.Value()
	return m, tea.Batch(cmd, func() tea.Msg { return ChangeMsg{Value: value} })
}

func (m *Model[T]) selectCurrent() tea.Cmd {
	item, ok := m.list.Selected()
	if !ok {
		return nil
	}
	if m.props.OnSelect != nil {
		m.props.OnSelect(item)
	}
	return func() tea.Msg { return SelectMsg[T]{Item: item} }
}

// View implements tea.Model.
func (m *Model[T]) View() string {
	container := style.Pick(m.props.ContainerStyle, m.styles.Container)
	wrap := style.Pick(m.props.InputContainerStyle, m.styles.InputContainer)

	field := ""
	if m.input != nil {
		field = m.input.View()
	}
	if w := m.width - wrap.GetHorizontalMargins(); m.width > 0 && w > 0 {
		wrap = wrap.Width(w - wrap.GetHorizontalBorderSize())
	}

	parts := []string{wrap.Render(field)}
	if m.state.showing {
		parts = append(parts, m.list.View(style.Pick(m.props.ListStyle, m.styles.List)))
	}
	return container.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
