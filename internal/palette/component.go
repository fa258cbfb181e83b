package palette

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Component selects one RGB channel of a hex colour
type Component int

const (
	ComponentNone Component = iota
	ComponentRed
	ComponentGreen
	ComponentBlue
)

// String returns the single-letter label of the component
func (c Component) String() string {
	switch c {
	case ComponentRed:
		return "R"
	case ComponentGreen:
		return "G"
	case ComponentBlue:
		return "B"
	default:
		return "-"
	}
}

// HexOffset returns where the component's two digits start in "#RRGGBB".
// ComponentNone has no digits and returns 0.
func (c Component) HexOffset() int {
	switch c {
	case ComponentRed:
		return 1
	case ComponentGreen:
		return 3
	case ComponentBlue:
		return 5
	default:
		return 0
	}
}

// RGB decodes a hex colour with or without "#"
func RGB(hex string) (r, g, b uint8, ok bool) {
	c, err := colorful.Hex(normalizeHex(hex))
	if err != nil {
		return 0, 0, 0, false
	}
	r, g, b = c.RGB255()
	return r, g, b, true
}

// ComponentValue returns the 0-255 value of one channel, or 0 when the hex
// string does not decode or no component is selected
func ComponentValue(hex string, c Component) int {
	r, g, b, ok := RGB(hex)
	if !ok {
		return 0
	}
	switch c {
	case ComponentRed:
		return int(r)
	case ComponentGreen:
		return int(g)
	case ComponentBlue:
		return int(b)
	default:
		return 0
	}
}

// ReplaceComponent rewrites one channel's two digits with value (clamped
// to 0-255, uppercase). Strings too short to hold the channel are returned
// unchanged.
func ReplaceComponent(hex string, c Component, value int) string {
	if c == ComponentNone {
		return hex
	}
	offset := c.HexOffset()
	if !strings.HasPrefix(hex, "#") {
		offset--
	}
	if offset < 0 || offset+2 > len(hex) {
		return hex
	}
	return hex[:offset] + fmt.Sprintf("%02X", ClampValue(value)) + hex[offset+2:]
}

// ClampValue limits a channel value to 0-255
func ClampValue(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// IsDark reports whether a colour is closer to black than to white in
// perceptual lightness. Undecodable colours count as light.
func IsDark(hex string) bool {
	c, err := colorful.Hex(normalizeHex(hex))
	if err != nil {
		return false
	}
	l, _, _ := c.Lab()
	return l < 0.5
}

// IsHexDigit reports whether r is 0-9, a-f or A-F
func IsHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsHexString reports whether s is non-empty and made only of hex digits
func IsHexString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsHexDigit(r) {
			return false
		}
	}
	return true
}

func normalizeHex(hex string) string {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	return hex
}
