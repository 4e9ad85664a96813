package truefalse

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safetypro/internal/catalog"
	tf "github.com/abhisek/safetypro/internal/exercise/truefalse"
	"github.com/abhisek/safetypro/internal/screen"
	"github.com/abhisek/safetypro/internal/session"
	"github.com/abhisek/safetypro/internal/ui/components"
	"github.com/abhisek/safetypro/internal/ui/layout"
	"github.com/abhisek/safetypro/internal/ui/theme"
)

// TrueFalseScreen lists the statements to judge.
type TrueFalseScreen struct {
	board  *tf.Board
	cursor int
}

var _ screen.Screen = (*TrueFalseScreen)(nil)
var _ screen.KeyHintProvider = (*TrueFalseScreen)(nil)

// New creates a TrueFalseScreen over questions.
func New(questions []catalog.TrueFalseQuestion, scorer session.Scorer) *TrueFalseScreen {
	return &TrueFalseScreen{board: tf.New(questions, scorer)}
}

func (s *TrueFalseScreen) Init() tea.Cmd { return nil }

func (s *TrueFalseScreen) Title() string { return "Verdadeiro ou Falso" }

func (s *TrueFalseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "V", Description: "Verdadeiro"},
		{Key: "F", Description: "Falso"},
		{Key: "R", Description: "Restart"},
	}
}

func (s *TrueFalseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	qs := s.board.Questions()
	if len(qs) == 0 {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(qs)-1 {
			s.cursor++
		}
	case "v", "t":
		s.board.Answer(qs[s.cursor].ID, true)
	case "f":
		s.board.Answer(qs[s.cursor].ID, false)
	case "r":
		s.board.Restart()
	}
	return s, nil
}

func (s *TrueFalseScreen) View(width, height int) string {
	qs := s.board.Questions()
	if len(qs) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Nenhuma afirmação para este filtro."))
	}
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Verdadeiro ou Falso"))
	b.WriteString("   ")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d de %d respondidas", s.board.AnsweredCount(), len(qs))))
	b.WriteString("\n\n")

	for i, q := range qs {
		b.WriteString(components.Card(s.renderStatement(q, cw-4), cw, i == s.cursor))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s *TrueFalseScreen) renderStatement(q catalog.TrueFalseQuestion, width int) string {
	text := lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(q.Statement)

	choice, answered := s.board.Answered(q.ID)
	if !answered {
		return text + "\n" + theme.Hint.Render("[V] Verdadeiro   [F] Falso")
	}

	label := "Falso"
	if choice {
		label = "Verdadeiro"
	}
	var verdict string
	if s.board.Correct(q.ID) {
		verdict = theme.Correct.Render("✓ Você respondeu " + label + ". Correto! +30 pontos")
	} else {
		verdict = theme.Incorrect.Render("✗ Você respondeu " + label + ". Incorreto.")
	}

	out := text + "\n" + verdict
	if s.board.ShowJustification(q.ID) && q.Justification != "" {
		out += "\n" + lipgloss.NewStyle().Width(width).Foreground(theme.Secondary).
			Render("Justificativa: "+q.Justification)
	}
	return out
}
