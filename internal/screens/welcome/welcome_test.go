package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/safetypro/internal/router"
	"github.com/abhisek/safetypro/internal/screen"
	"github.com/abhisek/safetypro/internal/session"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "shell" }
func (s *stubScreen) Title() string                          { return "Shell" }

func newTestWelcome() (*WelcomeScreen, *session.Controller, *int) {
	ctrl := session.NewController()
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(ctrl, factory), ctrl, &callCount
}

func typeText(w *WelcomeScreen, s string) {
	for _, r := range s {
		w.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func enter(w *WelcomeScreen) tea.Cmd {
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestBlankNameRejected(t *testing.T) {
	w, ctrl, callCount := newTestWelcome()

	typeText(w, "   ")
	if cmd := enter(w); cmd != nil {
		t.Error("blank name should not start a session")
	}
	if ctrl.Active() || *callCount != 0 {
		t.Error("no session should be active")
	}
}

func TestEnterStartsSession(t *testing.T) {
	w, ctrl, callCount := newTestWelcome()

	typeText(w, "  Maria ")
	cmd := enter(w)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replaceMsg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if ctrl.Identity() != "Maria" {
		t.Errorf("identity = %q, want trimmed name", ctrl.Identity())
	}
	if ctrl.Role() != session.RoleLearner {
		t.Errorf("role = %v, want learner", ctrl.Role())
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestInstructorName(t *testing.T) {
	w, ctrl, _ := newTestWelcome()
	typeText(w, session.InstructorIdentity)
	enter(w)
	if ctrl.Role() != session.RoleInstructor {
		t.Errorf("role = %v, want instructor", ctrl.Role())
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, _, callCount := newTestWelcome()
	typeText(w, "Ana")
	enter(w)

	if cmd := enter(w); cmd != nil {
		t.Error("second enter should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestTickStopsAfterTransition(t *testing.T) {
	w, _, _ := newTestWelcome()
	if _, cmd := w.Update(tickMsg(time.Now())); cmd == nil {
		t.Error("ticks should keep the sparkle running")
	}
	typeText(w, "Ana")
	enter(w)
	if _, cmd := w.Update(tickMsg(time.Now())); cmd != nil {
		t.Error("ticks should stop after the gate closes")
	}
}

func TestViewShowsTagline(t *testing.T) {
	w, _, _ := newTestWelcome()
	if !strings.Contains(w.View(100, 40), "Gamified Training") {
		t.Error("welcome should show the tagline")
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _, _ := newTestWelcome()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
