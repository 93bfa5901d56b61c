// Package app is the demo program around the autocomplete widget. It plays
// the caller's role: it computes suggestions for whatever has been typed and
// feeds them back to the widget.
package app

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/autocomplete/config"
	"github.com/drake/autocomplete/suggest"
	"github.com/drake/autocomplete/ui/autocomplete"
	"github.com/drake/autocomplete/ui/components/input"
	"github.com/drake/autocomplete/ui/style"
)

// matchLimit caps how many suggestions are handed to the widget.
const matchLimit = 50

// Options configures the demo.
type Options struct {
	Config config.Config
	Source *suggest.Source
	Render func(string) string // nil renders plain text
	Logger *log.Logger
}

// Model is the top-level Bubble Tea model.
type Model struct {
	ac     *autocomplete.Model[string]
	source *suggest.Source
	cfg    config.Config
	render func(string) string
	logger *log.Logger
	styles style.Styles
	help   help.Model

	shown     int
	hidden    int
	picked    string
	submitted string
	width     int
}

// New creates the demo model.
func New(opts Options) *Model {
	if opts.Source == nil {
		opts.Source = suggest.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}

	m := &Model{
		source: opts.Source,
		cfg:    opts.Config,
		render: opts.Render,
		logger: opts.Logger,
		styles: Styles(opts.Config.Style),
		help:   help.New(),
	}
	m.ac = autocomplete.New(m.props("", nil))
	m.ac.SetStyles(m.styles)
	m.ac.SetLogger(opts.Logger)
	return m
}

// Styles applies the configured colors over the defaults.
func Styles(cfg config.Style) style.Styles {
	s := style.DefaultStyles()
	if cfg.BorderColor != "" {
		c := lipgloss.Color(cfg.BorderColor)
		s.InputContainer = s.InputContainer.BorderForeground(c)
		s.List = s.List.BorderForeground(c)
	}
	if cfg.SelectedForeground != "" {
		s.RowSelected = s.RowSelected.Foreground(lipgloss.Color(cfg.SelectedForeground))
	}
	if cfg.SelectedBackground != "" {
		s.RowSelected = s.RowSelected.Background(lipgloss.Color(cfg.SelectedBackground))
	}
	return s
}

func (m *Model) props(value string, data []string) autocomplete.Props[string] {
	autoCorrect := m.cfg.AutoCorrect
	return autocomplete.Props[string]{
		Data:          data,
		DefaultValue:  value,
		RenderItem:    m.render,
		OnShowResults: m.onShowResults,
		OnEndEditing:  m.onEndEditing,
		Placeholder:   m.cfg.Placeholder,
		AutoCorrect:   &autoCorrect,
		MaxVisible:    m.cfg.MaxVisible,
		PassThrough:   input.Options{input.OptPrompt: "> "},
	}
}

func (m *Model) onShowResults(show bool) {
	if show {
		m.shown++
	} else {
		m.hidden++
	}
}

func (m *Model) onEndEditing(e input.EndEditingEvent) {
	m.submitted = e.Text
	m.logger.Printf("app: submitted %q", e.Text)
}

// Widget exposes the autocomplete widget.
func (m *Model) Widget() *autocomplete.Model[string] {
	return m.ac
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.ac.Init(), m.ac.Focus())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.ac.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case autocomplete.ChangeMsg:
		m.ac.SetProps(m.props(msg.Value, m.source.Match(msg.Value, matchLimit)))
		return m, nil

	case autocomplete.SelectMsg[string]:
		m.picked = msg.Item
		m.ac.SetValue(msg.Item)
		m.ac.SetProps(m.props(msg.Item, m.source.Match(msg.Item, matchLimit)))
		return m, nil
	}

	_, cmd := m.ac.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.ac.View())
	b.WriteString("\n")

	status := fmt.Sprintf("shown %d · hidden %d", m.shown, m.hidden)
	if m.picked != "" {
		status += fmt.Sprintf(" · picked %s", m.picked)
	}
	if m.submitted != "" {
		status += fmt.Sprintf(" · submitted %s", m.submitted)
	}
	b.WriteString(m.styles.Muted.Render(status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.ac.KeyMap()))

	return b.String()
}
