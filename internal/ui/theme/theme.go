// Package theme holds the shared color palette and the handful of styles
// that are reused across screens. Screens build their own one-off styles
// from the palette colors.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette, tuned for dark terminals.
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#10B981") // Emerald
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// API status indicators shown in the header.
var (
	Online  = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Offline = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

// Form field labels.
var (
	LabelActive   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	LabelInactive = lipgloss.NewStyle().Foreground(TextDim)
)

// Buttons.
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
