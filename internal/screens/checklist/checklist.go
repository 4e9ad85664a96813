package checklist

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safetypro/internal/catalog"
	cl "github.com/abhisek/safetypro/internal/exercise/checklist"
	"github.com/abhisek/safetypro/internal/screen"
	"github.com/abhisek/safetypro/internal/session"
	"github.com/abhisek/safetypro/internal/tutor"
	"github.com/abhisek/safetypro/internal/ui/components"
	"github.com/abhisek/safetypro/internal/ui/layout"
	"github.com/abhisek/safetypro/internal/ui/theme"
)

// explainMsg carries a tutor explanation back to the screen that asked.
type explainMsg struct {
	owner *ChecklistScreen
	id    string
	text  string
}

// ChecklistScreen shows the study topics of the selected aulas.
type ChecklistScreen struct {
	list   *cl.Checklist
	tutor  *tutor.Service
	cursor int
}

var _ screen.Screen = (*ChecklistScreen)(nil)
var _ screen.KeyHintProvider = (*ChecklistScreen)(nil)

// New creates a ChecklistScreen over items.
func New(items []catalog.ChecklistItem, scorer session.Scorer, t *tutor.Service) *ChecklistScreen {
	return &ChecklistScreen{
		list:  cl.New(items, scorer),
		tutor: t,
	}
}

func (s *ChecklistScreen) Init() tea.Cmd { return nil }

func (s *ChecklistScreen) Title() string { return "Checklist de Estudos" }

func (s *ChecklistScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space", Description: "Check"},
		{Key: "E", Description: "Explain with AI"},
	}
}

func (s *ChecklistScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explainMsg:
		if msg.owner == s {
			s.list.ResolveExplain(msg.id, msg.text)
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ChecklistScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	items := s.list.Items()
	if len(items) == 0 {
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(items)-1 {
			s.cursor++
		}
	case "space", " ", "enter", "x":
		s.list.Toggle(items[s.cursor].ID)
	case "e":
		item := items[s.cursor]
		if s.list.ToggleExplain(item.ID) {
			return s, s.fetchExplanation(item)
		}
	}
	return s, nil
}

func (s *ChecklistScreen) fetchExplanation(item catalog.ChecklistItem) tea.Cmd {
	t := s.tutor
	return func() tea.Msg {
		return explainMsg{
			owner: s,
			id:    item.ID,
			text:  t.Explain(context.Background(), item.Topic),
		}
	}
}

func (s *ChecklistScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	items := s.list.Items()
	if len(items) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Nenhum tópico para este filtro."))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Checklist de Estudos"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Marque os tópicos que você já estudou."))
	b.WriteString("\n\n")
	b.WriteString(components.NewProgressBar("Progresso", s.list.Progress(), true, cw).View())
	b.WriteString("\n\n")

	exp := s.list.Explanation()
	for i, it := range items {
		box := "[ ]"
		style := theme.Unselected
		if s.list.Checked(it.ID) {
			box = "[✓]"
			style = theme.Correct
		}
		cursor := "  "
		if i == s.cursor {
			cursor = "▸ "
			style = style.Foreground(theme.Primary)
		}
		line := fmt.Sprintf("%s%s %s", cursor, box, it.Topic)
		tag := theme.Dim.Render(fmt.Sprintf("  Aula %d", it.Module))
		b.WriteString(style.Render(line) + tag)
		b.WriteString("\n")

		if exp != nil && exp.ItemID == it.ID {
			b.WriteString(components.AIPanel("Tutor de Segurança", exp.Text, exp.Loading, cw))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
