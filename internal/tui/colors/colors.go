package colors

import "github.com/charmbracelet/lipgloss"

// === Chrome ===
// Neon accents on a dark base; palette swatches bring their own colours
var (
	NeonPurple = lipgloss.Color("#bd93f9")
	NeonPink   = lipgloss.Color("#ff79c6")
	NeonCyan   = lipgloss.Color("#8be9fd")
	DarkGray   = lipgloss.Color("#282a36") // Background
	Gray       = lipgloss.Color("#44475a") // Borders
	LightGray  = lipgloss.Color("#a9b1d6") // Secondary text
	White      = lipgloss.Color("#f8f8f2")
	Black      = lipgloss.Color("#1e1e1e")
)

// === Banner Colors ===
var (
	StateError   = lipgloss.Color("#ff5555") // 🔴 Rejected / invalid
	StateSuccess = lipgloss.Color("#50fa7b") // 🟢 Added / applied / imported
	StateInfo    = lipgloss.Color("#8be9fd") // 🔵 Copied / posted
	Warning      = lipgloss.Color("#f1fa8c") // 🟡 Duplicates / protected colours
)

// === Channel Meter Colors ===
var (
	ChannelRed   = lipgloss.Color("#ff5555")
	ChannelGreen = lipgloss.Color("#50fa7b")
	ChannelBlue  = lipgloss.Color("#6272ff")
)

// Contrast picks readable text for a swatch background
func Contrast(dark bool) lipgloss.Color {
	if dark {
		return White
	}
	return Black
}
