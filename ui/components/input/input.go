package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EndEditingEvent is delivered when the user finishes editing the field.
type EndEditingEvent struct {
	Text string
}

// Props are the settings the field recognizes by name.
// Anything else travels in Options.
type Props struct {
	Placeholder      string
	PlaceholderStyle lipgloss.Style
	AutoCorrect      bool
	Style            lipgloss.Style
	OnEndEditing     func(EndEditingEvent)
	Options          Options
}

// Model handles text input.
// This is a dumb text box - suggestion state belongs to the parent widget.
type Model struct {
	textinput textinput.Model
	props     Props
	width     int

	// Derived from Options
	editable     bool
	fixedWidth   bool
	onChangeText func(string)
	onSubmit     func(string)
}

// New creates a new input model with the given props.
func New(props Props) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0 // No limit
	ti.Width = 80

	m := &Model{textinput: ti}
	m.SetProps(props)
	return m
}

// SetProps replaces the props and re-applies them to the text input.
func (m *Model) SetProps(props Props) {
	m.props = props
	m.textinput.Placeholder = props.Placeholder
	m.textinput.PlaceholderStyle = props.PlaceholderStyle
	m.apply(props.Options)
}

// Props returns the current props.
func (m *Model) Props() Props {
	return m.props
}

// AutoCorrect reports the forwarded autocorrect setting.
func (m *Model) AutoCorrect() bool {
	return m.props.AutoCorrect
}

// Option returns a pass-through option exactly as the caller supplied it.
func (m *Model) Option(key string) (any, bool) {
	v, ok := m.props.Options[key]
	return v, ok
}

// Focus gives focus to the input.
func (m *Model) Focus() tea.Cmd {
	return m.textinput.Focus()
}

// Blur removes focus from the input. Blurring a focused field ends editing.
func (m *Model) Blur() {
	wasFocused := m.textinput.Focused()
	m.textinput.Blur()
	if wasFocused {
		m.EndEditing()
	}
}

// Focused reports whether the input has focus.
func (m *Model) Focused() bool {
	return m.textinput.Focused()
}

// Value returns the current input text.
func (m *Model) Value() string {
	return m.textinput.Value()
}

// SetValue sets the input text and moves the cursor to the end.
func (m *Model) SetValue(s string) {
	m.textinput.SetValue(s)
	m.textinput.CursorEnd()
}

// Submit reports the current text to onSubmitEditing, then ends editing.
func (m *Model) Submit() {
	if m.onSubmit != nil {
		m.onSubmit(m.textinput.Value())
	}
	m.EndEditing()
}

// EndEditing notifies OnEndEditing with the current text.
func (m *Model) EndEditing() {
	if m.props.OnEndEditing != nil {
		m.props.OnEndEditing(EndEditingEvent{Text: m.textinput.Value()})
	}
}

// SetWidth updates the input width unless a fixed width was passed in Options.
func (m *Model) SetWidth(w int) {
	m.width = w
	if !m.fixedWidth {
		m.textinput.Width = max(1, w-lipgloss.Width(m.textinput.Prompt)-1)
	}
}

// Update handles tea messages for the input and reports whether the text changed.
func (m *Model) Update(msg tea.Msg) (bool, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && !m.editable {
		return false, nil
	}

	before := m.textinput.Value()
	var cmd tea.Cmd
	m.textinput, cmd = m.textinput.Update(msg)

	after := m.textinput.Value()
	if after == before {
		return false, cmd
	}
	if m.onChangeText != nil {
		m.onChangeText(after)
	}
	return true, cmd
}

// View renders the input line.
func (m *Model) View() string {
	return m.props.Style.Render(m.textinput.View())
}
