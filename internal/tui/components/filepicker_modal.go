package components

import (
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/simidle/simidle/internal/tui/colors"
)

// FilePickerModal wraps a file picker used to choose a palette code file
type FilePickerModal struct {
	Title       string
	Picker      filepicker.Model
	Help        help.Model
	HelpKeys    help.KeyMap
	BorderColor lipgloss.Color
	Width       int
	Height      int
}

// NewFilePickerModal creates a file picker modal with default styling
func NewFilePickerModal(title string, picker filepicker.Model, helpModel help.Model, helpKeys help.KeyMap, borderColor lipgloss.Color) FilePickerModal {
	return FilePickerModal{
		Title:       title,
		Picker:      picker,
		Help:        helpModel,
		HelpKeys:    helpKeys,
		BorderColor: borderColor,
		Width:       80,
		Height:      20,
	}
}

// View returns the inner content of the file picker (without the box)
func (m FilePickerModal) View() string {
	pathStyle := lipgloss.NewStyle().Foreground(colors.LightGray)

	content := lipgloss.JoinVertical(lipgloss.Left,
		"",
		pathStyle.Render(m.Picker.CurrentDirectory),
		"",
		m.Picker.View(),
		"",
		m.Help.View(m.HelpKeys),
	)

	return lipgloss.NewStyle().Padding(0, 2).Render(content)
}

// RenderCentered boxes the picker and centers it on screen
func (m FilePickerModal) RenderCentered(screenWidth, screenHeight int) string {
	titleStyle := lipgloss.NewStyle().Foreground(m.BorderColor).Bold(true)
	box := RenderBtopBox(titleStyle.Render(" "+m.Title+" "), "", m.View(), m.Width, m.Height, m.BorderColor)
	return lipgloss.Place(screenWidth, screenHeight, lipgloss.Center, lipgloss.Center, box)
}
