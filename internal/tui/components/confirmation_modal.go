package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/simidle/simidle/internal/tui/colors"
)

// ConfirmationModal renders a styled yes/no dialog
type ConfirmationModal struct {
	Title       string
	Message     string
	Detail      string // Optional rendered line under the message, e.g. a swatch
	Keys        help.KeyMap
	Help        help.Model
	BorderColor lipgloss.Color
	Width       int
	Height      int
}

// ConfirmationKeyMap defines keybindings for a confirmation modal
type ConfirmationKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

func (k ConfirmationKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

func (k ConfirmationKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// NewConfirmationModal creates a modal with default sizing
func NewConfirmationModal(title, message, detail string, keys help.KeyMap, helpModel help.Model, borderColor lipgloss.Color) ConfirmationModal {
	return ConfirmationModal{
		Title:       title,
		Message:     message,
		Detail:      detail,
		Keys:        keys,
		Help:        helpModel,
		BorderColor: borderColor,
		Width:       50,
		Height:      11,
	}
}

// View renders the modal content without the box
func (m ConfirmationModal) View() string {
	parts := []string{m.Message}
	if m.Detail != "" {
		parts = append(parts, "", m.Detail)
	}
	parts = append(parts, "", m.Help.View(m.Keys))
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// RenderCentered boxes the modal and centers it on screen
func (m ConfirmationModal) RenderCentered(screenWidth, screenHeight int) string {
	titleStyle := lipgloss.NewStyle().Foreground(m.BorderColor).Bold(true)
	inner := lipgloss.Place(m.Width-4, m.Height-2, lipgloss.Center, lipgloss.Center, m.View())
	box := RenderBtopBox(titleStyle.Render(" "+m.Title+" "), "", inner, m.Width, m.Height, m.BorderColor)
	return lipgloss.Place(screenWidth, screenHeight, lipgloss.Center, lipgloss.Center, box)
}

// DangerBorder is the border used for destructive confirmations
var DangerBorder = colors.StateError
