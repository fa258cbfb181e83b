package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/simidle/simidle/internal/tui/colors"
)

const (
	topLeft     = "╭"
	topRight    = "╮"
	bottomLeft  = "╰"
	bottomRight = "╯"
	horizontal  = "─"
	vertical    = "│"
)

// BoxRenderer is the function signature for rendering btop-style boxes
type BoxRenderer func(leftTitle, rightTitle, content string, width, height int, borderColor lipgloss.Color) string

// RenderBtopBox draws a rounded box with optional pre-styled titles set
// into the top border.
// Example: ╭─ Palette ─────────── 3/5 ─╮
func RenderBtopBox(leftTitle, rightTitle, content string, width, height int, borderColor lipgloss.Color) string {
	innerWidth := max(width-2, 1)
	border := lipgloss.NewStyle().Foreground(borderColor)

	// Dashes between the titles, at least one when both are present
	fill := innerWidth - lipgloss.Width(leftTitle) - lipgloss.Width(rightTitle)
	if leftTitle != "" {
		fill--
	}
	if rightTitle != "" {
		fill--
	}
	if leftTitle != "" && rightTitle != "" {
		fill = max(fill, 1)
	}
	fill = max(fill, 0)

	var top strings.Builder
	top.WriteString(border.Render(topLeft))
	if leftTitle != "" {
		top.WriteString(border.Render(horizontal) + leftTitle)
	}
	top.WriteString(border.Render(strings.Repeat(horizontal, fill)))
	if rightTitle != "" {
		top.WriteString(rightTitle + border.Render(horizontal))
	}
	top.WriteString(border.Render(topRight))

	bottom := border.Render(bottomLeft + strings.Repeat(horizontal, innerWidth) + bottomRight)

	lines := strings.Split(content, "\n")
	rows := make([]string, 0, max(height-2, 0))
	for i := 0; i < height-2; i++ {
		line := strings.Repeat(" ", innerWidth)
		if i < len(lines) {
			line = fitWidth(lines[i], innerWidth)
		}
		rows = append(rows, border.Render(vertical)+line+border.Render(vertical))
	}

	return lipgloss.JoinVertical(lipgloss.Left, top.String(), strings.Join(rows, "\n"), bottom)
}

// fitWidth pads or cuts a rendered line to exactly width cells
func fitWidth(line string, width int) string {
	w := lipgloss.Width(line)
	if w < width {
		return line + strings.Repeat(" ", width-w)
	}
	if w > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}

// Default colors for convenience (re-exported from colors package)
var (
	DefaultBorderColor = colors.NeonPink
	SecondaryBorder    = colors.Gray
	AccentBorder       = colors.NeonCyan
)
