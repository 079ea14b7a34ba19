package slide

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha subset, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

var (
	// defaultBorderStyle frames the presented surface.
	defaultBorderStyle = lipgloss.NewStyle().BorderForeground(colorLavender)
	// defaultShadeStyle recolors the backing surface while it is pushed back.
	defaultShadeStyle = lipgloss.NewStyle().Foreground(colorOverlay0)
)
