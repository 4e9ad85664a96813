package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safetypro/internal/ui/theme"
)

// ContentWidth returns the inner width used for exercise cards so that
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 90 {
		w = 90
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded border at the given outer width.
func Card(content string, width int, highlighted bool) string {
	border := theme.Border
	if highlighted {
		border = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width).
		Padding(0, 1).
		Render(content)
}

// AIPanel renders tutor output, or a loading line while it is pending.
func AIPanel(title, text string, loading bool, width int) string {
	body := theme.AIText.Render(text)
	if loading {
		body = theme.Hint.Render("Consultando o tutor de IA...")
	}
	return theme.AICard.
		Width(width).
		Render(theme.AIText.Bold(true).Render("✦ "+title) + "\n" + body)
}

// CenteredFrame places content in the middle of the given area inside a
// double border.
func CenteredFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
