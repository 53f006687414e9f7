// Package placeholder renders a stand-in screen for features that are
// unavailable in the current session, such as history without a database.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/educator/internal/screen"
	"github.com/abhisek/educator/internal/ui/theme"
)

const notice = "╌╌ Unavailable ╌╌\n\nThis feature could not be loaded.\nCheck the logs and try again!"

// Placeholder is a static screen that only shows a notice.
type Placeholder struct {
	title string
}

var _ screen.Screen = (*Placeholder)(nil)

func New(title string) *Placeholder {
	return &Placeholder{title: title}
}

func (p *Placeholder) Init() tea.Cmd { return nil }

func (p *Placeholder) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *Placeholder) View(width, height int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text)
	return style.Render(notice)
}

func (p *Placeholder) Title() string { return p.title }
