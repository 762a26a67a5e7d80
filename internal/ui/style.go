package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette, dark terminal friendly.
var (
	white  = lipgloss.Color("255")
	blue   = lipgloss.Color("39")
	green  = lipgloss.Color("76")
	red    = lipgloss.Color("204")
	orange = lipgloss.Color("214")
	dim    = lipgloss.Color("243")
	faint  = lipgloss.Color("238")
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(dim).Bold(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(dim)
	faintStyle   = lipgloss.NewStyle().Foreground(faint)
	successStyle = lipgloss.NewStyle().Foreground(green)
	dangerStyle  = lipgloss.NewStyle().Foreground(red)
	accentStyle  = lipgloss.NewStyle().Foreground(blue)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(faint).
			Padding(1, 2).
			Width(58)

	nodeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(faint).
			Foreground(dim).
			Padding(0, 1)
)

// nodeColor is the highlight color of each workflow node.
func nodeColor(active string) lipgloss.Color {
	switch active {
	case "messenger":
		return white
	case "scanner":
		return blue
	default:
		return green
	}
}

func categoryColor(c string) lipgloss.Color {
	switch c {
	case "red":
		return red
	case "orange":
		return orange
	case "blue":
		return blue
	default:
		return dim
	}
}
