package tui

import "github.com/charmbracelet/lipgloss"

// Theme/palette helpers.
//
// The dashboard must remain readable on both light and dark terminal
// backgrounds, so colors are adaptive throughout.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted    = ac("240", "243")
	colorAccent   = ac("62", "99")
	colorDanger   = ac("124", "203")
	colorDone     = ac("28", "78")
	colorSelected = ac("232", "255")

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleMuted  = lipgloss.NewStyle().Foreground(colorMuted)
	styleError  = lipgloss.NewStyle().Foreground(colorDanger)
	styleDone   = lipgloss.NewStyle().Foreground(colorDone).Strikethrough(true)
	styleDue    = lipgloss.NewStyle().Foreground(colorMuted)
	styleLate   = lipgloss.NewStyle().Foreground(colorDanger)
	styleCursor = lipgloss.NewStyle().Bold(true).Foreground(colorSelected)
	styleHelp   = lipgloss.NewStyle().Foreground(colorMuted)
)
