package app

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safetypro/internal/catalog"
	"github.com/abhisek/safetypro/internal/logger"
	"github.com/abhisek/safetypro/internal/router"
	"github.com/abhisek/safetypro/internal/screen"
	"github.com/abhisek/safetypro/internal/screens/shell"
	"github.com/abhisek/safetypro/internal/screens/welcome"
	"github.com/abhisek/safetypro/internal/session"
	"github.com/abhisek/safetypro/internal/store"
	"github.com/abhisek/safetypro/internal/tutor"
	"github.com/abhisek/safetypro/internal/ui/layout"
)

// clockInterval is how often the header clock refreshes.
const clockInterval = time.Second

// Options holds the dependencies of the TUI.
type Options struct {
	Controller *session.Controller
	Catalog    *catalog.Catalog
	Tutor      *tutor.Service
	EventRepo  store.EventRepo // may be nil
	Logger     *logger.Logger
	Rand       *rand.Rand
}

// clockTickMsg redraws the elapsed time. Ticks from an earlier session
// carry a stale epoch and end their chain.
type clockTickMsg struct {
	epoch int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	ctrl      *session.Controller
	tickEpoch int
	width     int
	height    int
}

// newAppModel creates a new AppModel with the welcome gate.
func newAppModel(opts Options) AppModel {
	if opts.Controller == nil {
		opts.Controller = session.NewController()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.MustLoad()
	}
	if opts.Tutor == nil {
		opts.Tutor = tutor.New(nil, tutor.DefaultConfig(), opts.Logger)
	}

	var gate func() screen.Screen
	deps := shell.Deps{
		Controller: opts.Controller,
		Catalog:    opts.Catalog,
		Tutor:      opts.Tutor,
		Events:     opts.EventRepo,
		Log:        opts.Logger,
		Rand:       opts.Rand,
		Welcome:    func() screen.Screen { return gate() },
	}
	gate = func() screen.Screen {
		return welcome.New(opts.Controller, func() screen.Screen { return shell.New(deps) })
	}

	return AppModel{
		router: router.New(gate()),
		ctrl:   opts.Controller,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clockTickMsg:
		if msg.epoch != m.ctrl.Epoch() || !m.ctrl.Active() {
			return m, nil
		}
		return m, m.clockTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)

	// A new session starts its own clock chain.
	if m.ctrl.Active() && m.tickEpoch != m.ctrl.Epoch() {
		m.tickEpoch = m.ctrl.Epoch()
		cmd = tea.Batch(cmd, m.clockTick())
	}
	return m, cmd
}

func (m AppModel) clockTick() tea.Cmd {
	epoch := m.ctrl.Epoch()
	return tea.Tick(clockInterval, func(time.Time) tea.Msg {
		return clockTickMsg{epoch: epoch}
	})
}

// status builds the header's session block.
func (m AppModel) status() layout.Status {
	if !m.ctrl.Active() {
		return layout.Status{}
	}
	return layout.Status{
		Identity:  m.ctrl.Identity(),
		RoleLabel: m.ctrl.Role().String(),
		Score:     m.ctrl.Score(),
		ShowScore: m.ctrl.Role() != session.RoleInstructor,
		Elapsed:   m.ctrl.ElapsedText(),
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.status(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(footerHints, p.KeyHints()...)
	}
	if m.router.Depth() > 1 {
		footerHints = append(footerHints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log.Info("app started")

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		log.Error("program exited with error", "error", err)
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	log.Info("app stopped")
	return nil
}
