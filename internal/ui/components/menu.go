package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/educator/internal/ui/theme"
)

// MenuItem is one entry in a Menu. Action runs when the entry is chosen;
// disabled entries are skipped during navigation.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical menu driven by up/down/enter (and k/j).
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu builds a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Selected = m.nextEnabled(-1)
	case "down", "j":
		m.Selected = m.nextEnabled(1)
	case "enter":
		item := m.Items[m.Selected]
		if item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
	}
	return m, nil
}

// nextEnabled returns the index of the nearest enabled item in the given
// direction, or the current selection when there is none.
func (m Menu) nextEnabled(dir int) int {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return m.Selected
}

func (m Menu) View() string {
	active := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	inactive := lipgloss.NewStyle().Foreground(theme.Text)

	var s string
	for i, item := range m.Items {
		if i == m.Selected {
			s += active.Render("  ▸ "+item.Label) + "\n"
		} else {
			s += inactive.Render("    "+item.Label) + "\n"
		}
	}
	return s
}
