package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/flixhummel/mcduterm/internal/display"
)

// CRT-ish palette. The real unit has a green phosphor display with amber
// and cyan annunciators; lipgloss maps these to the nearest ANSI256 colors
// on terminals without truecolor.
var (
	whiteColor   = lipgloss.Color("#E8E8E8")
	greenColor   = lipgloss.Color("#33FF33")
	amberColor   = lipgloss.Color("#FFBF00")
	cyanColor    = lipgloss.Color("#33CCCC")
	magentaColor = lipgloss.Color("#FF66FF")
	grayColor    = lipgloss.Color("#767676")
	bezelColor   = lipgloss.Color("#444444")
)

var lineStyles = map[display.Color]lipgloss.Style{
	display.ColorWhite:   lipgloss.NewStyle().Foreground(whiteColor),
	display.ColorGreen:   lipgloss.NewStyle().Foreground(greenColor),
	display.ColorAmber:   lipgloss.NewStyle().Foreground(amberColor),
	display.ColorCyan:    lipgloss.NewStyle().Foreground(cyanColor),
	display.ColorMagenta: lipgloss.NewStyle().Foreground(magentaColor),
	display.ColorGray:    lipgloss.NewStyle().Foreground(grayColor),
}

// ScreenStyle frames the display like the unit's bezel.
var ScreenStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(bezelColor).
	Padding(0, 1)

// HelpStyle renders the key help line under the screen.
var HelpStyle = lipgloss.NewStyle().
	Foreground(grayColor).
	PaddingLeft(1)

// styleFor returns the line style for a display color.
func styleFor(c display.Color) lipgloss.Style {
	if s, ok := lineStyles[c]; ok {
		return s
	}
	return lineStyles[display.ColorWhite]
}
