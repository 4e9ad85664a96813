package dashboard

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/safetypro/internal/catalog"
	"github.com/abhisek/safetypro/internal/dashboard"
)

func results() []catalog.StudentResult {
	return []catalog.StudentResult{
		{Name: "Ana", Score: 320, Elapsed: "12:40", CompletedTasks: 9, Date: "2024-05-10"},
		{Name: "Bruno", Score: 410, Elapsed: "15:02", CompletedTasks: 11, Date: "2024-05-11"},
		{Name: "Carla", Score: 150, Elapsed: "08:15", CompletedTasks: 4, Date: "2024-05-10"},
	}
}

// apply runs the cmd returned by the menu and feeds its message back.
func apply(t *testing.T, s *DashboardScreen, msg tea.Msg) {
	t.Helper()
	_, cmd := s.Update(msg)
	if cmd != nil {
		s.Update(cmd())
	}
}

func TestStartsWithAllDates(t *testing.T) {
	s := New(results())
	assert.Equal(t, dashboard.AllDates, s.Selection())
	assert.Len(t, s.Visible(), 3)
}

func TestSelectDate(t *testing.T) {
	s := New(results())

	apply(t, s, tea.KeyPressMsg{Code: tea.KeyDown})
	apply(t, s, tea.KeyPressMsg{Code: tea.KeyEnter})

	require.Equal(t, dashboard.DateSelector("2024-05-10"), s.Selection())
	names := []string{}
	for _, r := range s.Visible() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Ana", "Carla"}, names)
}

func TestViewEmpty(t *testing.T) {
	s := New(nil)
	out := s.View(120, 40)
	assert.True(t, strings.Contains(out, "Nenhum resultado para esta data."))
	assert.NotContains(t, out, "Alunos", "no KPI cards without results")
	assert.NotContains(t, out, "Destaque")
}

func TestViewShowsBest(t *testing.T) {
	s := New(results())
	out := s.View(140, 40)
	assert.Contains(t, out, "Bruno (410)")
	assert.Contains(t, out, "Alunos")
}
