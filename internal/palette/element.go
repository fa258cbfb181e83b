package palette

import "strings"

// ColorElement is an orb/space colour pair stored as hex strings.
// Hex strings are "#RRGGBB" for display, but the "#" is optional.
type ColorElement struct {
	OrbHexCode   string `json:"orbHexCode"`
	SpaceHexCode string `json:"spaceHexCode"`
}

// NewColorElement creates an element from orb and space hex strings
func NewColorElement(orbHexCode, spaceHexCode string) ColorElement {
	return ColorElement{
		OrbHexCode:   orbHexCode,
		SpaceHexCode: spaceHexCode,
	}
}

// ColorCode returns the 12-character orb+space code without "#" prefixes.
// Comparison on the code is case-sensitive.
func (e ColorElement) ColorCode() string {
	return StripHash(e.OrbHexCode) + StripHash(e.SpaceHexCode)
}

// StripHash removes every "#" from a hex string
func StripHash(hex string) string {
	return strings.ReplaceAll(hex, "#", "")
}

// ColorCodes returns the colour code of each element in order
func ColorCodes(elements []ColorElement) []string {
	codes := make([]string, 0, len(elements))
	for _, e := range elements {
		codes = append(codes, e.ColorCode())
	}
	return codes
}

// ContainsCode reports whether any element shares the given colour code
func ContainsCode(elements []ColorElement, code string) bool {
	for _, e := range elements {
		if e.ColorCode() == code {
			return true
		}
	}
	return false
}
