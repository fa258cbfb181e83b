package palette

import "strings"

const (
	// HexLength is the number of hex digits in one colour (RRGGBB)
	HexLength = 6
	// ColorCodeLength is the number of hex digits in one orb+space entry
	ColorCodeLength = HexLength * 2
)

// ElementSet is an ordered, read-only list of colour elements with a
// fixed-width string form: each element contributes its 12-character
// colour code, with no separators.
type ElementSet struct {
	elements []ColorElement
}

// NewElementSet creates a set from a list of elements
func NewElementSet(elements []ColorElement) ElementSet {
	copied := make([]ColorElement, len(elements))
	copy(copied, elements)
	return ElementSet{elements: copied}
}

// ParseElementSet reads consecutive 12-character chunks from s.
// A trailing chunk shorter than 12 characters is dropped. Digits are not
// validated here. Parsed hex codes carry a "#" prefix.
func ParseElementSet(s string) ElementSet {
	runes := []rune(s)
	var elements []ColorElement

	for i := 0; i+ColorCodeLength <= len(runes); i += ColorCodeLength {
		chunk := runes[i : i+ColorCodeLength]
		elements = append(elements, ColorElement{
			OrbHexCode:   "#" + string(chunk[:HexLength]),
			SpaceHexCode: "#" + string(chunk[HexLength:]),
		})
	}

	return ElementSet{elements: elements}
}

// Elements returns a copy of the elements in order
func (s ElementSet) Elements() []ColorElement {
	copied := make([]ColorElement, len(s.elements))
	copy(copied, s.elements)
	return copied
}

// Len returns the number of elements
func (s ElementSet) Len() int {
	return len(s.elements)
}

// String returns the concatenated colour codes
func (s ElementSet) String() string {
	return ColorCodesString(s.elements)
}

// ColorCodesString concatenates the colour code of each element
func ColorCodesString(elements []ColorElement) string {
	var b strings.Builder
	b.Grow(len(elements) * ColorCodeLength)
	for _, e := range elements {
		b.WriteString(e.ColorCode())
	}
	return b.String()
}
