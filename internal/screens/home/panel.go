package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/educator/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go, scaled down).
const panelTitleFull = ` ███████╗██████╗ ██╗   ██╗ ██████╗ █████╗ ████████╗ ██████╗ ██████╗
 ██╔════╝██╔══██╗██║   ██║██╔════╝██╔══██╗╚══██╔══╝██╔═══██╗██╔══██╗
 █████╗  ██║  ██║██║   ██║██║     ███████║   ██║   ██║   ██║██████╔╝
 ██╔══╝  ██║  ██║██║   ██║██║     ██╔══██║   ██║   ██║   ██║██╔══██╗
 ███████╗██████╔╝╚██████╔╝╚██████╗██║  ██║   ██║   ╚██████╔╝██║  ██║
 ╚══════╝╚═════╝  ╚═════╝  ╚═════╝╚═╝  ╚═╝   ╚═╝    ╚═════╝ ╚═╝  ╚═╝`

const panelTitleCompact = "E · D · U · C · A · T · O · R"

const tutorArt = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ABC │
└─────┘`

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for panel border (2) + inner padding (4)
	w := frameWidth - 6
	// Cap so it doesn't stretch absurdly wide
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(panelTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(panelTitleFull))
}

// renderTutorBox renders the tutor bot centered at content width.
func renderTutorBox(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Primary).Render(tutorArt))
}

// renderStatsBar renders usage stats in a bordered box matching content width.
func renderStatsBar(generations int, llmRequests int64, cw int, compact bool) string {
	genStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	reqStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			genStyle.Render(fmt.Sprintf("✎%d", generations)),
			reqStyle.Render(fmt.Sprintf("⚡%d", llmRequests)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s",
			genStyle.Render(fmt.Sprintf("✎ %d GENERATED", generations)),
			reqStyle.Render(fmt.Sprintf("⚡ %d LLM CALLS", llmRequests)),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderPanelFrame wraps content in a double-border frame, centering
// vertically and horizontally within the given dimensions.
func renderPanelFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
