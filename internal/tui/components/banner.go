package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/simidle/simidle/internal/tui/colors"
)

// BannerKind is the severity of a one-line status message
type BannerKind int

const (
	BannerNone BannerKind = iota
	BannerInfo
	BannerSuccess
	BannerWarning
	BannerError
)

// bannerInfo holds the display properties for each kind
type bannerInfo struct {
	icon  string
	color lipgloss.Color
}

var bannerMap = map[BannerKind]bannerInfo{
	BannerInfo:    {"ℹ", colors.StateInfo},
	BannerSuccess: {"✔", colors.StateSuccess},
	BannerWarning: {"⚠", colors.Warning},
	BannerError:   {"✖", colors.StateError},
}

// Icon returns the kind's icon
func (k BannerKind) Icon() string {
	if info, ok := bannerMap[k]; ok {
		return info.icon
	}
	return ""
}

// Color returns the kind's color
func (k BannerKind) Color() lipgloss.Color {
	if info, ok := bannerMap[k]; ok {
		return info.color
	}
	return colors.LightGray
}

// RenderBanner returns the styled icon and message, or "" for BannerNone
func RenderBanner(kind BannerKind, message string) string {
	if kind == BannerNone || message == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(kind.Color()).Render(kind.Icon() + " " + message)
}
