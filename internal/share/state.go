package share

import (
	"slices"

	"github.com/simidle/simidle/internal/palette"
)

// SharingSelectionState tracks which palette entries are picked for export.
// Entries are matched by colour code; updates return a new snapshot.
type SharingSelectionState struct {
	available  []palette.ColorElement
	candidates []palette.ColorElement
}

// NewSharingSelectionState starts with every element available
func NewSharingSelectionState(elements []palette.ColorElement) SharingSelectionState {
	return SharingSelectionState{available: slices.Clone(elements)}
}

func (s SharingSelectionState) Available() []palette.ColorElement {
	return slices.Clone(s.available)
}

func (s SharingSelectionState) Candidates() []palette.ColorElement {
	return slices.Clone(s.candidates)
}

// Select moves element from the available list to the candidates
func (s SharingSelectionState) Select(element palette.ColorElement) SharingSelectionState {
	i := indexOfCode(s.available, element.ColorCode())
	if i < 0 {
		return s
	}
	return SharingSelectionState{
		available:  slices.Delete(slices.Clone(s.available), i, i+1),
		candidates: append(slices.Clone(s.candidates), s.available[i]),
	}
}

// Remove moves element back to the end of the available list
func (s SharingSelectionState) Remove(element palette.ColorElement) SharingSelectionState {
	i := indexOfCode(s.candidates, element.ColorCode())
	if i < 0 {
		return s
	}
	return SharingSelectionState{
		available:  append(slices.Clone(s.available), s.candidates[i]),
		candidates: slices.Delete(slices.Clone(s.candidates), i, i+1),
	}
}

// ShareCode is the wire code of the selected candidates
func (s SharingSelectionState) ShareCode() string {
	return palette.NewElementSet(s.candidates).String()
}

func indexOfCode(elements []palette.ColorElement, code string) int {
	return slices.IndexFunc(elements, func(e palette.ColorElement) bool {
		return e.ColorCode() == code
	})
}

// PasteResult is the outcome of the last paste: Elements on success,
// otherwise Err carries the reader's message
type PasteResult struct {
	Elements []palette.ColorElement
	Err      error
}

// ContentKind discriminates ContentView
type ContentKind int

const (
	ContentEmpty ContentKind = iota
	ContentError
)

// ContentView is what the import screen should show
type ContentView struct {
	Kind    ContentKind
	Message string
}

// ImportUIState holds the import screen's last paste. Updates return a
// new value.
type ImportUIState struct {
	lastPasteResult *PasteResult
}

// LastPasteResult returns the last paste, if any
func (s ImportUIState) LastPasteResult() (PasteResult, bool) {
	if s.lastPasteResult == nil {
		return PasteResult{}, false
	}
	return *s.lastPasteResult, true
}

// WithPasteResult records a paste
func (s ImportUIState) WithPasteResult(r PasteResult) ImportUIState {
	r.Elements = slices.Clone(r.Elements)
	return ImportUIState{lastPasteResult: &r}
}

// ClearPasteResult forgets the last paste
func (s ImportUIState) ClearPasteResult() ImportUIState {
	return ImportUIState{}
}

// Content projects the state for a palette holding existingCount entries.
// A full palette wins over any paste error.
func (s ImportUIState) Content(existingCount int) ContentView {
	if existingCount >= MaxPaletteElements {
		return ContentView{Kind: ContentError, Message: RejectionReason{Kind: RejectPaletteFull}.Message()}
	}
	if s.lastPasteResult != nil && s.lastPasteResult.Err != nil {
		return ContentView{Kind: ContentError, Message: s.lastPasteResult.Err.Error()}
	}
	return ContentView{Kind: ContentEmpty}
}
