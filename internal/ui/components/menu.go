package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safetypro/internal/ui/theme"
)

// MenuItem represents a single item in a vertical menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical menu with a cursor and a marked current item.
type Menu struct {
	Items    []MenuItem
	Selected int // cursor
	Current  int // item applied last, marked with a dot
}

// NewMenu creates a new menu with the cursor on the first item.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation. Enter runs the item's action and
// makes it current.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "enter":
		m.Current = m.Selected
		if act := m.Items[m.Selected].Action; act != nil {
			return m, act()
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		mark := "  "
		if i == m.Current {
			mark = "● "
		}
		if i == m.Selected {
			s += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("▸ "+mark+item.Label) + "\n"
		} else {
			s += lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("  "+mark+item.Label) + "\n"
		}
	}
	return s
}
