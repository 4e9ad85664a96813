// Package shell hosts the tabbed exercise views of a running session.
package shell

import (
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safetypro/internal/catalog"
	"github.com/abhisek/safetypro/internal/logger"
	"github.com/abhisek/safetypro/internal/router"
	"github.com/abhisek/safetypro/internal/screen"
	"github.com/abhisek/safetypro/internal/screens/association"
	"github.com/abhisek/safetypro/internal/screens/casestudy"
	"github.com/abhisek/safetypro/internal/screens/checklist"
	"github.com/abhisek/safetypro/internal/screens/dashboard"
	"github.com/abhisek/safetypro/internal/screens/help"
	"github.com/abhisek/safetypro/internal/screens/quiz"
	"github.com/abhisek/safetypro/internal/screens/truefalse"
	"github.com/abhisek/safetypro/internal/session"
	"github.com/abhisek/safetypro/internal/store"
	"github.com/abhisek/safetypro/internal/tutor"
	"github.com/abhisek/safetypro/internal/ui/layout"
	"github.com/abhisek/safetypro/internal/ui/theme"
)

// Deps are the services the shell hands to its widgets.
type Deps struct {
	Controller *session.Controller
	Catalog    *catalog.Catalog
	Tutor      *tutor.Service
	Events     store.EventRepo // may be nil
	Log        *logger.Logger
	Rand       *rand.Rand

	// Welcome builds the gate shown after sign-out.
	Welcome func() screen.Screen
}

// ShellScreen is the main view of a session: a tab bar, the module
// filter and the active exercise widget.
type ShellScreen struct {
	deps    Deps
	tabs    []Tab
	active  int
	filter  catalog.ModuleSelector
	widget  screen.Screen
	pending []store.ScoreEventData
}

var _ screen.Screen = (*ShellScreen)(nil)
var _ screen.KeyHintProvider = (*ShellScreen)(nil)
var _ screen.InputCapturer = (*ShellScreen)(nil)

// New creates the shell for the controller's current session.
func New(deps Deps) *ShellScreen {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &ShellScreen{
		deps: deps,
		tabs: VisibleTabs(deps.Controller.Role()),
	}
	s.widget = s.build(s.Tab())
	return s
}

// Tab returns the active tab.
func (s *ShellScreen) Tab() Tab { return s.tabs[s.active] }

// Tabs returns the tabs visible to the session's role.
func (s *ShellScreen) Tabs() []Tab { return s.tabs }

// Filter returns the module filter.
func (s *ShellScreen) Filter() catalog.ModuleSelector { return s.filter }

// Widget returns the active exercise screen.
func (s *ShellScreen) Widget() screen.Screen { return s.widget }

func (s *ShellScreen) filterVisible() bool {
	return s.deps.Controller.Role() != session.RoleInstructor && s.Tab().Filtered()
}

// build creates a fresh widget for tab with the current filter.
func (s *ShellScreen) build(tab Tab) screen.Screen {
	cat := s.deps.Catalog
	scorer := &tabScorer{shell: s, kind: tab.Kind(), sessionID: s.deps.Controller.ID()}

	switch tab {
	case TabQuiz:
		return quiz.New(catalog.FilterByModule(cat.Quiz, s.filter), scorer, s.deps.Tutor)
	case TabTrueFalse:
		return truefalse.New(catalog.FilterByModule(cat.TrueFalse, s.filter), scorer)
	case TabCaseStudy:
		return casestudy.New(catalog.FilterByModule(cat.CaseStudies, s.filter), scorer, s.deps.Tutor)
	case TabAssociation:
		return association.New(cat.Association, scorer, s.deps.Rand)
	case TabDashboard:
		return dashboard.New(cat.Results)
	default:
		return checklist.New(catalog.FilterByModule(cat.Checklist, s.filter), scorer, s.deps.Tutor)
	}
}

func (s *ShellScreen) Init() tea.Cmd {
	ctrl := s.deps.Controller
	sum := ctrl.Summary()
	s.deps.Log.Info("session started",
		"session_id", sum.SessionID, "identity", sum.Identity, "role", sum.Role.String())
	return tea.Batch(
		persistSession(s.deps.Events, s.deps.Log, sessionEvent(store.SessionStart, sum)),
		s.widget.Init(),
	)
}

func (s *ShellScreen) Title() string { return s.widget.Title() }

// CapturingInput reports whether the widget has a focused text field.
func (s *ShellScreen) CapturingInput() bool {
	c, ok := s.widget.(screen.InputCapturer)
	return ok && c.CapturingInput()
}

func (s *ShellScreen) KeyHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := s.widget.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	if s.CapturingInput() {
		return hints
	}
	hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Next view"})
	if s.filterVisible() {
		hints = append(hints, layout.KeyHint{Key: "M", Description: "Aula"})
	}
	return append(hints,
		layout.KeyHint{Key: "?", Description: "Help"},
		layout.KeyHint{Key: "^O", Description: "Sign out"},
	)
}

func (s *ShellScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if next, cmd, handled := s.handleKey(msg); handled {
			return next, cmd
		}
	case casestudy.FeedbackMsg:
		// The answering widget was rebuilt; only the award survives.
		if !msg.For(s.widget) {
			if msg.Settle() {
				s.deps.Log.Debug("case study settled after widget rebuild", "item", msg.ItemID())
			}
			return s, s.drainAwards()
		}
	}

	var cmd tea.Cmd
	s.widget, cmd = s.widget.Update(msg)
	return s, tea.Batch(cmd, s.drainAwards())
}

// handleKey processes shell shortcuts. While the widget captures input
// only ctrl combinations are shortcuts.
func (s *ShellScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd, bool) {
	key := msg.String()
	if key == "ctrl+o" {
		return s, s.signOut(), true
	}
	if s.CapturingInput() {
		return s, nil, false
	}

	switch key {
	case "tab":
		return s, s.switchTab((s.active + 1) % len(s.tabs)), true
	case "shift+tab":
		return s, s.switchTab((s.active + len(s.tabs) - 1) % len(s.tabs)), true
	case "m":
		if !s.filterVisible() {
			return s, nil, false
		}
		s.filter = s.filter.Next()
		return s, s.rebuild(), true
	case "?":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: help.New()}
		}, true
	}
	return s, nil, false
}

func (s *ShellScreen) switchTab(i int) tea.Cmd {
	s.active = i
	return s.rebuild()
}

func (s *ShellScreen) rebuild() tea.Cmd {
	s.widget = s.build(s.Tab())
	return s.widget.Init()
}

func (s *ShellScreen) signOut() tea.Cmd {
	ctrl := s.deps.Controller
	sum := ctrl.Summary()
	s.deps.Log.Info("session ended",
		"session_id", sum.SessionID, "identity", sum.Identity,
		"score", sum.Score, "completed", sum.Completed)

	persist := persistSession(s.deps.Events, s.deps.Log, sessionEvent(store.SessionEnd, sum))
	ctrl.Reset()

	next := s.deps.Welcome()
	return tea.Batch(persist, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	})
}

func (s *ShellScreen) View(width, height int) string {
	bar := s.renderTabBar(width)
	barHeight := lipgloss.Height(bar)
	return bar + "\n" + s.widget.View(width, max(height-barHeight-1, 0))
}

func (s *ShellScreen) renderTabBar(width int) string {
	var parts []string
	for i, t := range s.tabs {
		if i == s.active {
			parts = append(parts, theme.TabActive.Render(t.String()))
		} else {
			parts = append(parts, theme.TabInactive.Render(t.String()))
		}
	}
	bar := strings.Join(parts, " ")

	if s.filterVisible() {
		label := theme.Hint.Render("Filtro: ") + theme.Subtitle.Render(s.filter.String())
		gap := width - lipgloss.Width(bar) - lipgloss.Width(label) - 2
		if gap > 0 {
			bar += strings.Repeat(" ", gap) + label
		} else {
			bar += "\n" + label
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(theme.Border).
		Render(bar)
}
