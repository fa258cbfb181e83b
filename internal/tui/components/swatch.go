package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/simidle/simidle/internal/palette"
	"github.com/simidle/simidle/internal/tui/colors"
)

// swatchHex normalizes a stored hex code for lipgloss
func swatchHex(hex string) lipgloss.Color {
	return lipgloss.Color("#" + palette.StripHash(hex))
}

// RenderOrb draws the orb colour as a dot on the space colour
func RenderOrb(e palette.ColorElement) string {
	return lipgloss.NewStyle().
		Foreground(swatchHex(e.OrbHexCode)).
		Background(swatchHex(e.SpaceHexCode)).
		Padding(0, 1).
		Render("●")
}

// RenderSwatch draws an element as a labelled strip on its space colour.
// The label is the colour code, or the preset name when it has one.
func RenderSwatch(e palette.ColorElement, width int) string {
	label := e.ColorCode()
	if name := palette.PresetName(e); name != "" {
		label = fmt.Sprintf("%s  %s", name, label)
	}

	text := lipgloss.NewStyle().
		Foreground(colors.Contrast(palette.IsDark(e.SpaceHexCode))).
		Background(swatchHex(e.SpaceHexCode))
	orb := lipgloss.NewStyle().
		Foreground(swatchHex(e.OrbHexCode)).
		Background(swatchHex(e.SpaceHexCode))

	body := orb.Render(" ● ") + text.Render(label)
	if pad := width - lipgloss.Width(body); pad > 0 {
		body += text.Render(fmt.Sprintf("%*s", pad, ""))
	}
	return body
}

// RenderHexBlock draws a solid block in hex with the code written on it
func RenderHexBlock(hex string, width int) string {
	return lipgloss.NewStyle().
		Foreground(colors.Contrast(palette.IsDark(hex))).
		Background(swatchHex(hex)).
		Width(width).
		Align(lipgloss.Center).
		Render("#" + palette.StripHash(hex))
}
