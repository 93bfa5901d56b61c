package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drake/autocomplete/config"
	"github.com/drake/autocomplete/suggest"
	"github.com/drake/autocomplete/ui/autocomplete"
)

func newApp(t *testing.T) *Model {
	t.Helper()
	m := New(Options{
		Config: config.Default(),
		Source: suggest.New([]string{"cat", "car", "cart", "dog"}),
		Render: strings.ToUpper,
	})
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return m
}

func TestChangeMsgShowsMatches(t *testing.T) {
	m := newApp(t)

	m.Update(autocomplete.ChangeMsg{Value: "ca"})

	require.True(t, m.Widget().Showing())
	assert.Equal(t, []string{"car", "cat", "cart"}, m.Widget().Rows().Items())
	assert.Equal(t, 1, m.shown)
	assert.Contains(t, m.View(), "CART")
}

func TestTypingExactWordHidesList(t *testing.T) {
	m := newApp(t)
	m.Update(autocomplete.ChangeMsg{Value: "ca"})

	m.Update(autocomplete.ChangeMsg{Value: "cat"})
	assert.False(t, m.Widget().Showing())
	assert.Equal(t, 1, m.hidden)
}

func TestSelectMsgFillsInputAndHides(t *testing.T) {
	m := newApp(t)
	m.Update(autocomplete.ChangeMsg{Value: "ca"})

	m.Update(autocomplete.SelectMsg[string]{Item: "cart"})

	assert.Equal(t, "cart", m.Widget().Value())
	assert.False(t, m.Widget().Showing())
	assert.Contains(t, m.View(), "picked cart")
}

func TestKeystrokesRoundTripThroughChangeMsg(t *testing.T) {
	m := newApp(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	require.NotNil(t, cmd)

	for _, msg := range flatten(cmd) {
		if change, ok := msg.(autocomplete.ChangeMsg); ok {
			m.Update(change)
		}
	}
	assert.True(t, m.Widget().Showing())
	assert.Equal(t, []string{"dog"}, m.Widget().Rows().Items())
}

func TestEnterSubmitsWhenHidden(t *testing.T) {
	m := newApp(t)
	m.Widget().SetValue("zebra")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "submitted zebra")
}

func TestCtrlCQuits(t *testing.T) {
	m := newApp(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestStylesApplyConfiguredColors(t *testing.T) {
	s := Styles(config.Style{BorderColor: "#ff0000", SelectedBackground: "1"})

	assert.Equal(t, lipgloss.Color("#ff0000"), s.List.GetBorderBottomForeground())
	assert.Equal(t, lipgloss.Color("#ff0000"), s.InputContainer.GetBorderTopForeground())
	assert.Equal(t, lipgloss.Color("1"), s.RowSelected.GetBackground())
}

func flatten(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, flatten(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
