package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/safetypro/internal/ui/theme"
)

// ChoiceState is how a single option is drawn.
type ChoiceState int

const (
	ChoiceNeutral ChoiceState = iota
	ChoiceSelected
	ChoiceCorrect
	ChoiceWrong
	ChoiceDim
)

// Choice is one labelled option.
type Choice struct {
	Key   string
	Text  string
	State ChoiceState
}

// RenderChoices draws options one per line. After an answer is revealed
// the correct option is green, a wrong pick is red and the rest are dim.
func RenderChoices(choices []Choice, width int) string {
	var b strings.Builder
	for _, c := range choices {
		prefix := "  "
		if c.State == ChoiceSelected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, c.Key, c.Text)
		style := lipgloss.NewStyle().Width(width)

		switch c.State {
		case ChoiceSelected:
			style = style.Foreground(theme.Primary).Bold(true)
		case ChoiceCorrect:
			style = style.Foreground(theme.Success).Bold(true)
			line += "  ✓"
		case ChoiceWrong:
			style = style.Foreground(theme.Error).Bold(true)
			line += "  ✗"
		case ChoiceDim:
			style = style.Foreground(theme.TextDim)
		default:
			style = style.Foreground(theme.Text)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
