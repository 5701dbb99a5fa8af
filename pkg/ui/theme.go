package ui

import "github.com/charmbracelet/lipgloss"

// Theme carries the design tokens and the renderer all widgets draw with.
// Widgets never call lipgloss.NewStyle directly; styles come from the
// theme's renderer so output profiles stay consistent under tests.
type Theme struct {
	Renderer *lipgloss.Renderer

	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Danger    lipgloss.Color

	Border        lipgloss.Color
	FocusedBorder lipgloss.Color
	BgSubtle      lipgloss.Color
}

// DefaultTheme returns the Dracula-leaning default palette.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Renderer: r,

		Text:    lipgloss.Color("#F8F8F2"),
		Subtext: lipgloss.Color("#BFBFBF"),
		Muted:   lipgloss.Color("#6272A4"),

		Primary:   lipgloss.Color("#BD93F9"),
		Secondary: lipgloss.Color("#8BE9FD"),
		Success:   lipgloss.Color("#50FA7B"),
		Danger:    lipgloss.Color("#FF5555"),

		Border:        lipgloss.Color("#44475A"),
		FocusedBorder: lipgloss.Color("#BD93F9"),
		BgSubtle:      lipgloss.Color("#363949"),
	}
}
