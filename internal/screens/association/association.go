package association

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safetypro/internal/catalog"
	as "github.com/abhisek/safetypro/internal/exercise/association"
	"github.com/abhisek/safetypro/internal/screen"
	"github.com/abhisek/safetypro/internal/session"
	"github.com/abhisek/safetypro/internal/ui/layout"
	"github.com/abhisek/safetypro/internal/ui/theme"
)

// MismatchDelay is how long a wrong pair stays highlighted.
const MismatchDelay = 500 * time.Millisecond

// clearMismatchMsg fires after a wrong pair has been shown.
type clearMismatchMsg struct {
	owner *AssociationScreen
	gen   uint64
}

// AssociationScreen is the two-column matching game.
type AssociationScreen struct {
	board    *as.Board
	side     as.Side
	cursor   [2]int
	mismatch bool
}

var _ screen.Screen = (*AssociationScreen)(nil)
var _ screen.KeyHintProvider = (*AssociationScreen)(nil)

// New creates an AssociationScreen with columns shuffled by rng.
func New(pairs []catalog.AssociationPair, scorer session.Scorer, rng *rand.Rand) *AssociationScreen {
	return &AssociationScreen{board: as.New(pairs, scorer, rng)}
}

func (s *AssociationScreen) Init() tea.Cmd { return nil }

func (s *AssociationScreen) Title() string { return "Associação" }

func (s *AssociationScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Column"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Space", Description: "Pick"},
		{Key: "R", Description: "Shuffle"},
	}
}

func (s *AssociationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clearMismatchMsg:
		if msg.owner == s && s.board.ClearMismatch(msg.gen) {
			s.mismatch = false
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *AssociationScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	col := s.board.Column(s.side)
	if len(col) == 0 {
		return s, nil
	}

	switch msg.String() {
	case "left", "h":
		s.side = as.Left
	case "right", "l":
		s.side = as.Right
	case "up", "k":
		if s.cursor[s.side] > 0 {
			s.cursor[s.side]--
		}
	case "down", "j":
		if s.cursor[s.side] < len(col)-1 {
			s.cursor[s.side]++
		}
	case "space", " ", "enter":
		return s, s.pick(col[s.cursor[s.side]].ID)
	case "r":
		s.board.Restart()
		s.mismatch = false
		s.cursor = [2]int{}
	}
	return s, nil
}

func (s *AssociationScreen) pick(id string) tea.Cmd {
	var out as.Outcome
	var gen uint64
	if s.side == as.Left {
		out, gen = s.board.SelectLeft(id)
	} else {
		out, gen = s.board.SelectRight(id)
	}

	s.mismatch = out == as.Mismatch
	if !s.mismatch {
		return nil
	}
	return tea.Tick(MismatchDelay, func(time.Time) tea.Msg {
		return clearMismatchMsg{owner: s, gen: gen}
	})
}

func (s *AssociationScreen) View(width, height int) string {
	left := s.board.Column(as.Left)
	if len(left) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Nenhum par para associar."))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Associação de Conceitos"))
	b.WriteString("   ")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d de %d pares", s.board.MatchedCount(), len(left))))
	b.WriteString("\n\n")

	if s.board.Complete() {
		b.WriteString(theme.Correct.Render("Perfect! Todos os pares foram associados."))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Press R to play again."))
		b.WriteString("\n\n")
	}

	colWidth := (width - 8) / 2
	if colWidth < 20 {
		colWidth = 20
	}
	cols := lipgloss.JoinHorizontal(lipgloss.Top,
		s.renderColumn(as.Left, "Termos", colWidth),
		"  ",
		s.renderColumn(as.Right, "Definições", colWidth),
	)
	b.WriteString(cols)

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s *AssociationScreen) renderColumn(side as.Side, title string, width int) string {
	lines := []string{theme.Subtitle.Bold(true).Render(title)}
	selected := s.board.Selected(side)

	for i, tok := range s.board.Column(side) {
		style := lipgloss.NewStyle().
			Width(width-2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text)

		switch {
		case s.board.Matched(tok.ID):
			style = style.Foreground(theme.TextDim).BorderForeground(theme.Success).Strikethrough(true)
		case tok.ID == selected && s.mismatch:
			style = style.BorderForeground(theme.Error).Foreground(theme.Error)
		case tok.ID == selected:
			style = style.BorderForeground(theme.Primary).Foreground(theme.Primary).Bold(true)
		}
		if side == s.side && i == s.cursor[side] {
			style = style.BorderStyle(lipgloss.ThickBorder())
		}
		lines = append(lines, style.Render(tok.Text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
