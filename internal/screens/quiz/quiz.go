package quiz

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safetypro/internal/catalog"
	qz "github.com/abhisek/safetypro/internal/exercise/quiz"
	"github.com/abhisek/safetypro/internal/screen"
	"github.com/abhisek/safetypro/internal/session"
	"github.com/abhisek/safetypro/internal/tutor"
	"github.com/abhisek/safetypro/internal/ui/components"
	"github.com/abhisek/safetypro/internal/ui/layout"
	"github.com/abhisek/safetypro/internal/ui/theme"
)

// deepDiveMsg carries a tutor deep dive for one question visit.
type deepDiveMsg struct {
	owner    *QuizScreen
	instance int
	text     string
}

// QuizScreen asks the multiple-choice questions one at a time.
type QuizScreen struct {
	quiz  *qz.Quiz
	tutor *tutor.Service
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over questions.
func New(questions []catalog.QuizQuestion, scorer session.Scorer, t *tutor.Service) *QuizScreen {
	return &QuizScreen{
		quiz:  qz.New(questions, scorer),
		tutor: t,
	}
}

func (s *QuizScreen) Init() tea.Cmd { return nil }

func (s *QuizScreen) Title() string { return "Quiz" }

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.quiz.Revealed() {
		return []layout.KeyHint{
			{Key: "N", Description: "Next question"},
			{Key: "I", Description: "Deep dive"},
		}
	}
	return []layout.KeyHint{
		{Key: "A-D/↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Confirm"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case deepDiveMsg:
		if msg.owner == s {
			s.quiz.ResolveDeepDive(msg.instance, msg.text)
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	switch key {
	case "a", "b", "c", "d":
		s.quiz.Select(catalog.OptionKey(strings.ToUpper(key)))
	case "1", "2", "3", "4":
		s.quiz.Select(catalog.OptionKeys[key[0]-'1'])
	case "up", "k":
		s.moveSelection(-1)
	case "down", "j":
		s.moveSelection(1)
	case "enter":
		s.quiz.Reveal()
	case "n":
		if s.quiz.Revealed() {
			s.quiz.Next()
		}
	case "i":
		if s.quiz.RequestDeepDive() {
			return s, s.fetchDeepDive()
		}
	}
	return s, nil
}

// moveSelection selects the neighbouring option, starting from A.
func (s *QuizScreen) moveSelection(delta int) {
	idx := -1
	for i, k := range catalog.OptionKeys {
		if k == s.quiz.Selection() {
			idx = i
		}
	}
	if idx < 0 {
		idx = 0
	} else {
		idx = min(max(idx+delta, 0), len(catalog.OptionKeys)-1)
	}
	s.quiz.Select(catalog.OptionKeys[idx])
}

func (s *QuizScreen) fetchDeepDive() tea.Cmd {
	cur, ok := s.quiz.Current()
	if !ok {
		return nil
	}
	t := s.tutor
	instance := s.quiz.Instance()
	return func() tea.Msg {
		return deepDiveMsg{
			owner:    s,
			instance: instance,
			text:     t.DeepDive(context.Background(), cur.Question, cur.CorrectText()),
		}
	}
}

func choiceState(st qz.OptionState, revealed bool) components.ChoiceState {
	switch st {
	case qz.Selected:
		return components.ChoiceSelected
	case qz.Correct:
		return components.ChoiceCorrect
	case qz.WrongPick:
		return components.ChoiceWrong
	}
	if revealed {
		return components.ChoiceDim
	}
	return components.ChoiceNeutral
}

func (s *QuizScreen) View(width, height int) string {
	cur, ok := s.quiz.Current()
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Nenhuma pergunta para este filtro."))
	}
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Quiz de Segurança"))
	b.WriteString("   ")
	b.WriteString(theme.Subtitle.Render(s.quiz.Position()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Bold(true).Render(cur.Question))
	b.WriteString("\n\n")

	choices := make([]components.Choice, 0, len(catalog.OptionKeys))
	for _, k := range catalog.OptionKeys {
		choices = append(choices, components.Choice{
			Key:   string(k),
			Text:  cur.Options[k],
			State: choiceState(s.quiz.OptionState(k), s.quiz.Revealed()),
		})
	}
	b.WriteString(components.RenderChoices(choices, cw))
	b.WriteString("\n")

	if s.quiz.Revealed() {
		if s.quiz.AnsweredCorrectly() {
			b.WriteString(theme.Correct.Render("Correto! +50 pontos"))
		} else {
			b.WriteString(theme.Incorrect.Render("Incorreto. Resposta certa: " + string(cur.Correct)))
		}
		b.WriteString("\n\n")
		if in := s.quiz.Insight(); in != nil {
			b.WriteString(components.AIPanel("Por que esta é a resposta?", in.Text, in.Loading, cw))
		} else {
			b.WriteString(theme.Hint.Render("Pressione I para uma explicação detalhada do tutor."))
		}
	} else {
		b.WriteString(components.NewButton("Confirmar resposta", s.quiz.Selection() != "", nil).View())
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
