package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/simidle/simidle/internal/palette"
	"github.com/simidle/simidle/internal/tui/colors"
)

// Block characters for partial fills
var blocks = []string{" ", "▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

// renderMeter draws value (0..255) as a horizontal bar of width cells.
// The last cell uses a partial block so small steps stay visible.
func renderMeter(value, width int, color lipgloss.Color) string {
	if width < 1 {
		return ""
	}
	value = palette.ClampValue(value)

	eighths := value * width * 8 / 255
	full := eighths / 8
	partial := eighths % 8

	var b strings.Builder
	b.WriteString(strings.Repeat(blocks[8], full))
	if full < width {
		b.WriteString(blocks[partial])
		b.WriteString(strings.Repeat(" ", width-full-1))
	}

	track := lipgloss.NewStyle().Foreground(color).Background(colors.DarkGray)
	return track.Render(b.String())
}

var channelColors = map[palette.Component]lipgloss.Color{
	palette.ComponentRed:   colors.ChannelRed,
	palette.ComponentGreen: colors.ChannelGreen,
	palette.ComponentBlue:  colors.ChannelBlue,
}

// renderChannels shows the R, G and B meters of hex, marking selected
func renderChannels(hex string, selected palette.Component) string {
	labelStyle := lipgloss.NewStyle().Foreground(colors.LightGray)
	activeStyle := lipgloss.NewStyle().Foreground(colors.NeonPink).Bold(true)

	lines := make([]string, 0, 3)
	for _, c := range []palette.Component{palette.ComponentRed, palette.ComponentGreen, palette.ComponentBlue} {
		value := palette.ComponentValue(hex, c)
		marker, style := "  ", labelStyle
		if c == selected {
			marker, style = "▶ ", activeStyle
		}
		label := style.Render(fmt.Sprintf("%s%-5s %3d ", marker, c, value))
		lines = append(lines, label+renderMeter(value, MeterWidth, channelColors[c]))
	}
	return strings.Join(lines, "\n")
}
