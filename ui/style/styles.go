package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Border is the default border color for the input wrapper and the list.
const Border = lipgloss.Color("#b9b9b9")

// Styles holds all the lipgloss styles for the widget.
type Styles struct {
	// Layout
	Container      lipgloss.Style
	InputContainer lipgloss.Style
	Input          lipgloss.Style
	List           lipgloss.Style

	// Rows
	Row         lipgloss.Style
	RowSelected lipgloss.Style

	// Misc
	Placeholder lipgloss.Style
	Muted       lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Container: lipgloss.NewStyle(),
		InputContainer: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Border).
			MarginLeft(1).
			MarginRight(1),
		Input: lipgloss.NewStyle().
			PaddingLeft(1),
		// The list hangs under the input wrapper, so it has no top edge.
		List: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, true, true).
			BorderForeground(Border).
			MarginLeft(1).
			MarginRight(1),

		Row: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		RowSelected: lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")),

		Placeholder: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// Pick returns override when set, fallback otherwise.
func Pick(override *lipgloss.Style, fallback lipgloss.Style) lipgloss.Style {
	if override != nil {
		return *override
	}
	return fallback
}
