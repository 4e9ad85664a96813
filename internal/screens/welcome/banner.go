package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safetypro/internal/ui/theme"
)

const bannerArt = `
 ███████╗ █████╗ ███████╗███████╗████████╗██╗   ██╗
 ██╔════╝██╔══██╗██╔════╝██╔════╝╚══██╔══╝╚██╗ ██╔╝
 ███████╗███████║█████╗  █████╗     ██║    ╚████╔╝
 ╚════██║██╔══██║██╔══╝  ██╔══╝     ██║     ╚██╔╝
 ███████║██║  ██║██║     ███████╗   ██║      ██║
 ╚══════╝╚═╝  ╚═╝╚═╝     ╚══════╝   ╚═╝      ╚═╝   P R O`

const bannerCompact = "S A F E T Y P R O"

// RenderBanner returns the SAFETYPRO banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 60 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 60 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
