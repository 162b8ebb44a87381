package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#82AAFF")
	colorGlyph  = lipgloss.Color("#FFCB6B")
	colorMuted  = lipgloss.Color("#546E7A")
	colorText   = lipgloss.Color("#EEFFFF")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	positionStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 4).
			Align(lipgloss.Center)

	// displayGlyphStyle and fallbackGlyphStyle stand in for the two font treatments.
	displayGlyphStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorGlyph)

	fallbackGlyphStyle = lipgloss.NewStyle().
				Foreground(colorText)

	metaStyle = lipgloss.NewStyle().
			Foreground(colorText)

	detailStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorText)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
