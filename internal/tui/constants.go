package tui

import "time"

const (
	// How long a status banner stays up
	BannerDuration = 3 * time.Second

	// Layout
	ScreenWidth      = 64 // Width of the main boxes
	SwatchWidth      = ScreenWidth - 8
	HexBlockWidth    = 14
	MeterWidth       = 32
	PopupWidth       = 50
	FilePickerHeight = 12

	// Component value steps
	FineStep   = 1
	CoarseStep = 16
)
