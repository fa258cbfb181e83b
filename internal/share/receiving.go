package share

import (
	"slices"

	"github.com/simidle/simidle/internal/palette"
)

const (
	// MaxPaletteElements is the palette bucket capacity
	MaxPaletteElements = 5
	// MaxCandidateElements is the candidate bucket capacity
	MaxCandidateElements = 6
	// MaxIncomingCandidates caps a freshly received candidate list
	MaxIncomingCandidates = 5
)

// ReceivingSelectionState is the two-bucket model for placing received
// colours. Every method returns a new snapshot and leaves the receiver
// untouched.
type ReceivingSelectionState struct {
	available  []palette.ColorElement
	palette    []palette.ColorElement
	candidates []palette.ColorElement
}

// NewReceivingSelectionState starts with the palette equal to the
// elements the user already owns
func NewReceivingSelectionState(available, candidates []palette.ColorElement) ReceivingSelectionState {
	return ReceivingSelectionState{
		available:  slices.Clone(available),
		palette:    slices.Clone(available),
		candidates: slices.Clone(candidates),
	}
}

// AvailableElements returns the owned elements the state started with
func (s ReceivingSelectionState) AvailableElements() []palette.ColorElement {
	return slices.Clone(s.available)
}

// Palette returns the palette bucket
func (s ReceivingSelectionState) Palette() []palette.ColorElement {
	return slices.Clone(s.palette)
}

// Candidates returns the candidate bucket
func (s ReceivingSelectionState) Candidates() []palette.ColorElement {
	return slices.Clone(s.candidates)
}

// IsPaletteFull reports whether no candidate can be moved in
func (s ReceivingSelectionState) IsPaletteFull() bool {
	return len(s.palette) >= MaxPaletteElements
}

// WithColorCandidates replaces the candidates, dropping colours already
// in the palette and keeping at most MaxIncomingCandidates
func (s ReceivingSelectionState) WithColorCandidates(candidates []palette.ColorElement) ReceivingSelectionState {
	next := make([]palette.ColorElement, 0, len(candidates))
	for _, c := range candidates {
		if palette.ContainsCode(s.palette, c.ColorCode()) {
			continue
		}
		next = append(next, c)
		if len(next) == MaxIncomingCandidates {
			break
		}
	}
	return s.with(s.palette, next)
}

// ClearCandidates empties the candidate bucket
func (s ReceivingSelectionState) ClearCandidates() ReceivingSelectionState {
	return s.with(s.palette, nil)
}

// MoveCandidateToPalette appends candidate index to the palette.
// Nothing happens when the palette is full or index is out of range.
func (s ReceivingSelectionState) MoveCandidateToPalette(index int) ReceivingSelectionState {
	if s.IsPaletteFull() || index < 0 || index >= len(s.candidates) {
		return s
	}
	element := s.candidates[index]
	return s.with(
		append(slices.Clone(s.palette), element),
		slices.Delete(slices.Clone(s.candidates), index, index+1),
	)
}

// MovePaletteToCandidate moves palette index back to the candidates.
// Nothing happens when the candidates are full or index is out of range.
// Protection of owned colours is checked by ReceivingSelectionLogic.
func (s ReceivingSelectionState) MovePaletteToCandidate(index int) ReceivingSelectionState {
	if len(s.candidates) >= MaxCandidateElements || index < 0 || index >= len(s.palette) {
		return s
	}
	element := s.palette[index]
	return s.with(
		slices.Delete(slices.Clone(s.palette), index, index+1),
		append(slices.Clone(s.candidates), element),
	)
}

// Reset restores the palette to the available elements with no candidates
func (s ReceivingSelectionState) Reset() ReceivingSelectionState {
	return s.with(s.available, nil)
}

func (s ReceivingSelectionState) with(pal, candidates []palette.ColorElement) ReceivingSelectionState {
	return ReceivingSelectionState{
		available:  s.available,
		palette:    slices.Clone(pal),
		candidates: slices.Clone(candidates),
	}
}

// MovementError is why a palette element cannot go back to the candidates
type MovementError int

const (
	MovementOK MovementError = iota
	MovementIndexOutOfBounds
	MovementProtectedElement
)

func (e MovementError) String() string {
	switch e {
	case MovementOK:
		return "ok"
	case MovementIndexOutOfBounds:
		return "index out of bounds"
	case MovementProtectedElement:
		return "protected element"
	default:
		return "unknown"
	}
}

// MovementValidation is valid(Element) when Err is MovementOK
type MovementValidation struct {
	Element palette.ColorElement
	Err     MovementError
}

// Valid reports whether the movement may proceed
func (v MovementValidation) Valid() bool {
	return v.Err == MovementOK
}

// ReceivingSelectionLogic guards moves out of the palette bucket
type ReceivingSelectionLogic struct{}

// CanMovePaletteElement is false for colours the user already owned
func (ReceivingSelectionLogic) CanMovePaletteElement(element palette.ColorElement, available []palette.ColorElement) bool {
	return !palette.ContainsCode(available, element.ColorCode())
}

// ValidatePaletteMovement checks bounds first, then protection
func (l ReceivingSelectionLogic) ValidatePaletteMovement(index int, pal, available []palette.ColorElement) MovementValidation {
	if index < 0 || index >= len(pal) {
		return MovementValidation{Err: MovementIndexOutOfBounds}
	}
	element := pal[index]
	if !l.CanMovePaletteElement(element, available) {
		return MovementValidation{Element: element, Err: MovementProtectedElement}
	}
	return MovementValidation{Element: element}
}

// MovePaletteToCandidate validates and then applies the move
func (l ReceivingSelectionLogic) MovePaletteToCandidate(state ReceivingSelectionState, index int) (ReceivingSelectionState, MovementValidation) {
	v := l.ValidatePaletteMovement(index, state.palette, state.available)
	if !v.Valid() {
		return state, v
	}
	return state.MovePaletteToCandidate(index), v
}

// PlaceReceived moves accepted colours into the palette in order until it
// is full and returns the resulting palette and the leftovers
func PlaceReceived(existing, accepted []palette.ColorElement) (pal, leftover []palette.ColorElement) {
	state := NewReceivingSelectionState(existing, nil).WithColorCandidates(accepted)
	for len(state.candidates) > 0 && !state.IsPaletteFull() {
		state = state.MoveCandidateToPalette(0)
	}
	return state.Palette(), state.Candidates()
}
