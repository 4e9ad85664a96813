package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safetypro/internal/catalog"
	"github.com/abhisek/safetypro/internal/dashboard"
	"github.com/abhisek/safetypro/internal/screen"
	"github.com/abhisek/safetypro/internal/ui/components"
	"github.com/abhisek/safetypro/internal/ui/layout"
	"github.com/abhisek/safetypro/internal/ui/theme"
)

// dateSelectedMsg is emitted by the date menu.
type dateSelectedMsg struct {
	owner *DashboardScreen
	sel   dashboard.DateSelector
}

// DashboardScreen shows the class results to the instructor.
type DashboardScreen struct {
	results []catalog.StudentResult
	sel     dashboard.DateSelector
	menu    components.Menu
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen over results with no date filter.
func New(results []catalog.StudentResult) *DashboardScreen {
	s := &DashboardScreen{results: results}
	var items []components.MenuItem
	for _, sel := range dashboard.Selectors(results) {
		items = append(items, components.MenuItem{
			Label: sel.String(),
			Action: func() tea.Cmd {
				return func() tea.Msg { return dateSelectedMsg{owner: s, sel: sel} }
			},
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *DashboardScreen) Init() tea.Cmd { return nil }

func (s *DashboardScreen) Title() string { return "Painel do Professor" }

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Date"},
		{Key: "Enter", Description: "Apply"},
	}
}

// Selection returns the active date filter.
func (s *DashboardScreen) Selection() dashboard.DateSelector { return s.sel }

// Visible returns the results that pass the date filter.
func (s *DashboardScreen) Visible() []catalog.StudentResult {
	return dashboard.Filter(s.results, s.sel)
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dateSelectedMsg:
		if msg.owner == s {
			s.sel = msg.sel
		}
		return s, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	visible := s.Visible()
	sum := dashboard.Summarize(visible)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Painel do Professor"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Resultados da turma · " + s.sel.String()))
	b.WriteString("\n\n")

	if sum.Count > 0 {
		b.WriteString(s.renderCards(sum, cw))
		b.WriteString("\n\n")
	}

	picker := components.Card(theme.Subtitle.Bold(true).Render("Data")+"\n"+s.menu.View(), 22, false)
	chart := s.renderChart(visible, sum.MaxScore, max(cw-26, 20))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, picker, "  ", chart))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s *DashboardScreen) renderCards(sum dashboard.Summary, width int) string {
	best := "-"
	if sum.Best != nil {
		best = fmt.Sprintf("%s (%d)", sum.Best.Name, sum.Best.Score)
	}
	cardWidth := max((width-4)/3, 16)
	card := func(label, value string) string {
		return components.Card(theme.Hint.Render(label)+"\n"+theme.Title.Render(value), cardWidth, false)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Alunos", fmt.Sprintf("%d", sum.Count)),
		" ",
		card("Média", fmt.Sprintf("%d pts", sum.Average)),
		" ",
		card("Destaque", best),
	)
}

func (s *DashboardScreen) renderChart(results []catalog.StudentResult, maxScore, width int) string {
	if len(results) == 0 {
		return components.Card(theme.Hint.Render("Nenhum resultado para esta data."), width, false)
	}

	nameWidth := 14
	var lines []string
	for i, r := range dashboard.Ranked(results) {
		bar := components.NewProgressBar("", dashboard.BarPercent(r.Score, maxScore), false, width-nameWidth-24)
		if i == 0 {
			bar.Color = lipgloss.NewStyle().Background(theme.Accent)
		}
		name := lipgloss.NewStyle().Width(nameWidth).Foreground(theme.Text).Render(truncate(r.Name, nameWidth-1))
		meta := theme.Dim.Render(fmt.Sprintf(" %4d pts · %s · %d tarefas", r.Score, r.Elapsed, r.CompletedTasks))
		lines = append(lines, name+bar.View()+meta)
	}
	return components.Card(strings.Join(lines, "\n"), width, false)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
