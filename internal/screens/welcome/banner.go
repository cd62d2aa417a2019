package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shiseikan/internal/ui/theme"
)

const bannerArt = `
 ███████╗██╗  ██╗██╗███████╗███████╗██╗██╗  ██╗ █████╗ ███╗   ██╗
 ██╔════╝██║  ██║██║██╔════╝██╔════╝██║██║ ██╔╝██╔══██╗████╗  ██║
 ███████╗███████║██║███████╗█████╗  ██║█████╔╝ ███████║██╔██╗ ██║
 ╚════██║██╔══██║██║╚════██║██╔══╝  ██║██╔═██╗ ██╔══██║██║╚██╗██║
 ███████║██║  ██║██║███████║███████╗██║██║  ██╗██║  ██║██║ ╚████║
 ╚══════╝╚═╝  ╚═╝╚═╝╚══════╝╚══════╝╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝`

const bannerCompact = "S H I S E I K A N"

// RenderBanner returns the banner styled in the primary color. Terminals
// narrower than 70 columns get the compact form.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 70 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
