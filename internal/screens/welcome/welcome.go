package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safetypro/internal/router"
	"github.com/abhisek/safetypro/internal/screen"
	"github.com/abhisek/safetypro/internal/session"
	"github.com/abhisek/safetypro/internal/ui/components"
	"github.com/abhisek/safetypro/internal/ui/layout"
	"github.com/abhisek/safetypro/internal/ui/theme"
)

const (
	tickInterval = 400 * time.Millisecond
	maxNameChars = 40
)

const signArt = `    ▲
   ╱ ╲
  ╱ ! ╲
 ╱_____╲`

// sparkle frames blink around the warning sign
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen is the sign-in gate. Entering a name starts a session;
// the reserved instructor name opens the instructor view.
type WelcomeScreen struct {
	ctrl         *session.Controller
	next         func() screen.Screen
	input        components.TextInput
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)
var _ screen.InputCapturer = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. After a session starts it is replaced by
// the screen produced by next.
func New(ctrl *session.Controller, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		ctrl:  ctrl,
		next:  next,
		input: components.NewTextInput("Seu nome", maxNameChars),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) CapturingInput() bool { return true }

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Start training"}}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Batch(w.input.Init(), w.tick())
}

func (w *WelcomeScreen) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Name returns the trimmed name typed so far.
func (w *WelcomeScreen) Name() string {
	return w.input.TrimmedValue()
}

func (w *WelcomeScreen) button() components.Button {
	return components.NewButton("Start training", w.Name() != "", w.start)
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.tickCount++
		return w, w.tick()

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			_, cmd := w.button().Update(msg)
			return w, cmd
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) start() tea.Cmd {
	if w.transitioned {
		return nil
	}
	name := w.Name()
	if name == "" {
		return nil
	}
	w.transitioned = true
	w.ctrl.Start(name)
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
	accent := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)

	lines := strings.Split(lipgloss.NewStyle().Foreground(theme.Primary).Render(signArt), "\n")
	lines[0] = accent + "  " + lines[0]
	lines[len(lines)-1] = lines[len(lines)-1] + "  " + accent

	sections := []string{
		strings.Join(lines, "\n"),
		"",
		RenderBanner(width),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Gamified Training"),
		theme.Hint.Render("Segurança no armazém, uma tarefa de cada vez."),
		"",
		components.Card(w.input.View(), 44, true),
		"",
		w.button().View(),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Instrutores: entrem como \"" + session.InstructorIdentity + "\""),
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}
