package help

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safetypro/internal/router"
	"github.com/abhisek/safetypro/internal/screen"
	"github.com/abhisek/safetypro/internal/session"
	"github.com/abhisek/safetypro/internal/ui/components"
	"github.com/abhisek/safetypro/internal/ui/layout"
	"github.com/abhisek/safetypro/internal/ui/theme"
)

type entry struct {
	key  string
	desc string
}

var sections = []struct {
	title   string
	entries []entry
}{
	{"Navigation", []entry{
		{"Tab / Shift+Tab", "Switch view"},
		{"M", "Cycle aula filter"},
		{"Ctrl+O", "Sign out"},
		{"Ctrl+C", "Quit"},
	}},
	{"Exercises", []entry{
		{"↑↓ / j k", "Move"},
		{"Space", "Check, pick"},
		{"A-D / 1-4", "Quiz answer"},
		{"V / F", "True or false"},
		{"E / I", "Ask the AI tutor"},
	}},
}

var points = []entry{
	{"Checklist", fmt.Sprintf("%d pts", session.PointsChecklist)},
	{"Quiz", fmt.Sprintf("%d pts", session.PointsQuiz)},
	{"True / False", fmt.Sprintf("%d pts", session.PointsTrueFalse)},
	{"Case study", fmt.Sprintf("%d pts", session.PointsCaseStudy)},
	{"Association", fmt.Sprintf("%d pts", session.PointsAssociation)},
}

// HelpScreen is the key reference overlay.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

// New creates a HelpScreen.
func New() *HelpScreen {
	return &HelpScreen{}
}

func (h *HelpScreen) Init() tea.Cmd { return nil }

func (h *HelpScreen) Title() string { return "Help" }

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Close"}}
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("SafetyPro · Help"))
	b.WriteString("\n\n")

	for _, sec := range sections {
		b.WriteString(theme.Subtitle.Bold(true).Render(sec.title))
		b.WriteString("\n")
		writeEntries(&b, sec.entries)
		b.WriteString("\n")
	}

	b.WriteString(theme.Subtitle.Bold(true).Render("Points per item"))
	b.WriteString("\n")
	writeEntries(&b, points)
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Each item pays out once per session."))

	return components.CenteredFrame(b.String(), width, height)
}

func writeEntries(b *strings.Builder, entries []entry) {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Width(18)
	for _, e := range entries {
		b.WriteString(keyStyle.Render(e.key))
		b.WriteString(theme.Body.Render(e.desc))
		b.WriteString("\n")
	}
}
