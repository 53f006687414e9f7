package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/educator/internal/ui/layout"
)

// Screen is one full-screen view managed by the router. Update returns the
// screen to show next, which is usually the receiver.
type Screen interface {
	// Init runs when the screen becomes active for the first time.
	Init() tea.Cmd

	// Update handles a message.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body; the app draws header and footer
	// around it.
	View(width, height int) string

	// Title is shown in the header. Empty hides it.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints instead of
// the app-level defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
