package theme

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, used by the dark theme.
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	mochaRed      lipgloss.Color = "#f38ba8"
	mochaPeach    lipgloss.Color = "#fab387"
	mochaYellow   lipgloss.Color = "#f9e2af"
	mochaGreen    lipgloss.Color = "#a6e3a1"
	mochaTeal     lipgloss.Color = "#94e2d5"
	mochaPink     lipgloss.Color = "#f5c2e7"
	mochaLavender lipgloss.Color = "#b4befe"

	mochaText     lipgloss.Color = "#cdd6f4"
	mochaSurface0 lipgloss.Color = "#313244"
	mochaBase     lipgloss.Color = "#1e1e2e"
	mochaCrust    lipgloss.Color = "#11111b"
)

// ---------------------------------------------------------------------------
// Popcorn light palette
// ---------------------------------------------------------------------------

const (
	crimson   lipgloss.Color = "#DC143C"
	gold      lipgloss.Color = "#FFD700"
	black     lipgloss.Color = "#000000"
	orange    lipgloss.Color = "#FFA500"
	limeGreen lipgloss.Color = "#32CD32"
	white     lipgloss.Color = "#FFFFFF"
	cream     lipgloss.Color = "#FFFEF7"
)
