// ABOUTME: Renders system colors as filled terminal swatches
// ABOUTME: Picks black or white label text by perceptual lightness for contrast
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/claudeup/syscolor"
	"github.com/lucasb-eyer/go-colorful"
)

// lightnessThreshold is the CIE L* (0..1) above which labels switch to black
const lightnessThreshold = 0.55

var (
	labelDark  = syscolor.RGB(0x00, 0x00, 0x00)
	labelLight = syscolor.RGB(0xFF, 0xFF, 0xFF)
)

// ContrastText returns black or white, whichever reads better on c
func ContrastText(c syscolor.Color) syscolor.Color {
	cf, _ := colorful.MakeColor(c)
	l, _, _ := cf.Lab()
	if l > lightnessThreshold {
		return labelDark
	}
	return labelLight
}

// Swatch returns the hex code of c printed on a block of c.
// Under NO_COLOR only the padded hex code remains.
func Swatch(c syscolor.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.String())).
		Foreground(lipgloss.Color(ContrastText(c).String())).
		Padding(0, 1).
		Render(c.String())
}

// Block returns width cells filled with c and no text
func Block(c syscolor.Color, width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.String())).
		Width(width).
		Render("")
}
