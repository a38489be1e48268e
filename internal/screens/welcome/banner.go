package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/watcrack/internal/ui/theme"
)

const bannerArt = `
 ██╗    ██╗ █████╗ ████████╗ ██████╗██████╗  █████╗  ██████╗██╗  ██╗
 ██║    ██║██╔══██╗╚══██╔══╝██╔════╝██╔══██╗██╔══██╗██╔════╝██║ ██╔╝
 ██║ █╗ ██║███████║   ██║   ██║     ██████╔╝███████║██║     █████╔╝
 ██║███╗██║██╔══██║   ██║   ██║     ██╔══██╗██╔══██║██║     ██╔═██╗
 ╚███╔███╔╝██║  ██║   ██║   ╚██████╗██║  ██║██║  ██║╚██████╗██║  ██╗
  ╚══╝╚══╝ ╚═╝  ╚═╝   ╚═╝    ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝`

const bannerCompact = "W A T C R A C K"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 72

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than bannerMinWidth.
func RenderBanner(th *theme.Theme, width int) string {
	style := lipgloss.NewStyle().
		Foreground(th.P.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
