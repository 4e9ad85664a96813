package casestudy

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safetypro/internal/catalog"
	cs "github.com/abhisek/safetypro/internal/exercise/casestudy"
	"github.com/abhisek/safetypro/internal/screen"
	"github.com/abhisek/safetypro/internal/session"
	"github.com/abhisek/safetypro/internal/tutor"
	"github.com/abhisek/safetypro/internal/ui/components"
	"github.com/abhisek/safetypro/internal/ui/layout"
	"github.com/abhisek/safetypro/internal/ui/theme"
)

const maxAnswerChars = 600

// FeedbackMsg carries the tutor's analysis of one answer. The screen
// that asked may have been rebuilt by the time it arrives; the award is
// still owed, so whoever receives an orphaned message calls Settle.
type FeedbackMsg struct {
	owner  *CaseStudyScreen
	scorer session.Scorer
	itemID string
	text   string
}

// ItemID returns the case the feedback is for.
func (m FeedbackMsg) ItemID() string { return m.itemID }

// For reports whether s is the screen that submitted the answer.
func (m FeedbackMsg) For(s screen.Screen) bool {
	return m.owner != nil && s == screen.Screen(m.owner)
}

// Settle awards the case-study points without showing the feedback.
func (m FeedbackMsg) Settle() bool {
	return m.scorer.RecordScore(m.itemID, session.PointsCaseStudy)
}

// CaseStudyScreen lists scenarios; the open one takes a free-text answer.
type CaseStudyScreen struct {
	board   *cs.Board
	scorer  session.Scorer
	tutor   *tutor.Service
	cursor  int
	input   components.TextInput
	editing bool
}

var _ screen.Screen = (*CaseStudyScreen)(nil)
var _ screen.KeyHintProvider = (*CaseStudyScreen)(nil)
var _ screen.InputCapturer = (*CaseStudyScreen)(nil)

// New creates a CaseStudyScreen over cases.
func New(cases []catalog.CaseStudy, scorer session.Scorer, t *tutor.Service) *CaseStudyScreen {
	in := components.NewTextInput("Descreva o que você faria...", maxAnswerChars)
	in.Blur()
	return &CaseStudyScreen{
		board:  cs.New(cases, scorer),
		scorer: scorer,
		tutor:  t,
		input:  in,
	}
}

func (s *CaseStudyScreen) Init() tea.Cmd { return nil }

func (s *CaseStudyScreen) Title() string { return "Estudos de Caso" }

func (s *CaseStudyScreen) CapturingInput() bool { return s.editing }

func (s *CaseStudyScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Stop typing"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Open"},
		{Key: "A", Description: "Answer"},
		{Key: "R", Description: "Show ideal answer"},
	}
}

func (s *CaseStudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case FeedbackMsg:
		if msg.For(s) {
			s.board.ResolveFeedback(msg.itemID, msg.text)
		}
		return s, nil

	case tea.KeyMsg:
		if s.editing {
			return s.handleEditingKey(msg)
		}
		return s.handleKey(msg)
	}

	if s.editing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *CaseStudyScreen) current() (catalog.CaseStudy, bool) {
	cases := s.board.Cases()
	if len(cases) == 0 {
		return catalog.CaseStudy{}, false
	}
	return cases[s.cursor], true
}

func (s *CaseStudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	cur, ok := s.current()
	if !ok {
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.board.Cases())-1 {
			s.cursor++
		}
	case "enter":
		s.board.ToggleExpand(cur.ID)
		s.input.SetValue(s.board.Entry(cur.ID).Input)
	case "a":
		if s.board.Expanded() != cur.ID {
			s.board.ToggleExpand(cur.ID)
		}
		e := s.board.Entry(cur.ID)
		if e.HasResult || e.InFlight {
			return s, nil
		}
		s.input.SetValue(e.Input)
		s.editing = true
		return s, s.input.Focus()
	case "r":
		if s.board.Expanded() == cur.ID {
			s.board.RevealIdeal(cur.ID)
		}
	}
	return s, nil
}

func (s *CaseStudyScreen) handleEditingKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	cur, _ := s.current()

	switch msg.String() {
	case "esc":
		s.board.SetInput(cur.ID, s.input.Value())
		s.editing = false
		s.input.Blur()
		return s, nil
	case "enter":
		s.board.SetInput(cur.ID, s.input.Value())
		if !s.board.Submit(cur.ID) {
			return s, nil
		}
		s.editing = false
		s.input.Blur()
		return s, s.analyze(cur, s.input.Value())
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.board.SetInput(cur.ID, s.input.Value())
	return s, cmd
}

func (s *CaseStudyScreen) analyze(c catalog.CaseStudy, answer string) tea.Cmd {
	t, sc := s.tutor, s.scorer
	return func() tea.Msg {
		return FeedbackMsg{
			owner:  s,
			scorer: sc,
			itemID: c.ID,
			text:   t.Analyze(context.Background(), c.Scenario, answer, c.IdealAnswer),
		}
	}
}

func (s *CaseStudyScreen) View(width, height int) string {
	cases := s.board.Cases()
	if len(cases) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Nenhum estudo de caso para este filtro."))
	}
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Estudos de Caso"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Analise a situação e descreva a conduta correta."))
	b.WriteString("\n\n")

	for i, c := range cases {
		b.WriteString(components.Card(s.renderCase(c, cw-4), cw, i == s.cursor))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s *CaseStudyScreen) renderCase(c catalog.CaseStudy, width int) string {
	e := s.board.Entry(c.ID)
	head := theme.Selected.Render(c.ID) + "  " + theme.Dim.Render(fmt.Sprintf("Aula %d", c.Module))
	if e.HasResult {
		head += "  " + theme.Correct.Render("✓ +100")
	}

	scenario := lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(c.Scenario)
	if s.board.Expanded() != c.ID {
		return head + "\n" + theme.Dim.Width(width).MaxHeight(1).Render(c.Scenario)
	}

	parts := []string{head, scenario, ""}

	switch {
	case s.editing:
		parts = append(parts, "Resposta: "+s.input.View())
		if !s.board.CanSubmit(c.ID) {
			parts = append(parts, theme.Hint.Render("Escreva pelo menos 5 caracteres."))
		}
	case e.InFlight:
		parts = append(parts, theme.Dim.Render("Resposta: "+e.Input))
	case e.Input != "":
		parts = append(parts, theme.Body.Width(width).Render("Resposta: "+e.Input))
	default:
		parts = append(parts, theme.Hint.Render("Pressione A para responder."))
	}

	if e.InFlight || e.HasResult {
		parts = append(parts, components.AIPanel("Avaliação do tutor", e.Feedback, e.InFlight, width))
	}
	if e.ShowIdeal {
		parts = append(parts, lipgloss.NewStyle().Width(width).Foreground(theme.Success).
			Render("Resposta ideal: "+c.IdealAnswer))
	}
	return strings.Join(parts, "\n")
}
