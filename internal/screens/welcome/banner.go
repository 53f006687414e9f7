package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/educator/internal/ui/theme"
)

const bannerArt = `
 ███████╗██████╗ ██╗   ██╗ ██████╗ █████╗ ████████╗ ██████╗ ██████╗
 ██╔════╝██╔══██╗██║   ██║██╔════╝██╔══██╗╚══██╔══╝██╔═══██╗██╔══██╗
 █████╗  ██║  ██║██║   ██║██║     ███████║   ██║   ██║   ██║██████╔╝
 ██╔══╝  ██║  ██║██║   ██║██║     ██╔══██║   ██║   ██║   ██║██╔══██╗
 ███████╗██████╔╝╚██████╔╝╚██████╗██║  ██║   ██║   ╚██████╔╝██║  ██║
 ╚══════╝╚═════╝  ╚═════╝  ╚═════╝╚═╝  ╚═╝   ╚═╝    ╚═════╝ ╚═╝  ╚═╝`

const bannerCompact = "E D U C A T O R"

// RenderBanner returns the EDUCATOR banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 74 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 74 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
