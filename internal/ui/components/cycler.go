package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/educator/internal/ui/theme"
)

// Cycler is a horizontal option selector: left/right arrows cycle through
// a fixed set of labeled values.
type Cycler struct {
	Options  []string
	Labels   []string
	Selected int
}

// NewCycler creates a cycler over parallel option/label slices. When labels
// is nil the raw options double as labels.
func NewCycler(options, labels []string) Cycler {
	if labels == nil {
		labels = options
	}
	return Cycler{Options: options, Labels: labels}
}

// Update handles left/right cycling.
func (c Cycler) Update(msg tea.Msg) (Cycler, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Options) == 0 {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		c.Selected = (c.Selected - 1 + len(c.Options)) % len(c.Options)
	case "right", "l":
		c.Selected = (c.Selected + 1) % len(c.Options)
	}
	return c, nil
}

// View renders the cycler with arrows around the selected label.
func (c Cycler) View(active bool) string {
	if len(c.Options) == 0 {
		return ""
	}

	label := c.Labels[c.Selected]
	if active {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render("◀ " + label + " ▶")
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render("  " + label)
}

// Value returns the selected option value.
func (c Cycler) Value() string {
	if len(c.Options) == 0 {
		return ""
	}
	return c.Options[c.Selected]
}

// Select moves the selection to the given option value if present.
func (c *Cycler) Select(value string) {
	for i, opt := range c.Options {
		if opt == value {
			c.Selected = i
			return
		}
	}
}
