package share

import (
	"fmt"

	"github.com/simidle/simidle/internal/palette"
	"github.com/simidle/simidle/internal/utils"
)

// DefaultMaxImportElements is the per-import cap when none is configured
const DefaultMaxImportElements = 5

// RejectionKind identifies why an import was refused
type RejectionKind int

const (
	RejectPaletteFull RejectionKind = iota
	RejectAllColorsAlreadyExist
	RejectTooManyColorsAfterFiltering
)

// RejectionReason explains a refused import. MaxAllowed is only set for
// RejectTooManyColorsAfterFiltering.
type RejectionReason struct {
	Kind       RejectionKind
	MaxAllowed int
}

// Message is the user-facing text for the reason
func (r RejectionReason) Message() string {
	switch r.Kind {
	case RejectPaletteFull:
		return "Palette is full"
	case RejectAllColorsAlreadyExist:
		return "All colors already exist"
	case RejectTooManyColorsAfterFiltering:
		return fmt.Sprintf("Too many colors (max %d)", r.MaxAllowed)
	default:
		return "Import rejected"
	}
}

func (r RejectionReason) String() string {
	return r.Message()
}

// ImportEvent carries the palette being merged into and the incoming colours
type ImportEvent struct {
	Existing []palette.ColorElement
	Imported []palette.ColorElement
}

// ImportActionKind discriminates ImportAction
type ImportActionKind int

const (
	ActionImportColors ImportActionKind = iota
	ActionRejectImport
)

// ImportAction is either ImportColors(Filtered) or RejectImport(Reason)
type ImportAction struct {
	Kind     ImportActionKind
	Filtered []palette.ColorElement
	Reason   RejectionReason
}

// ImportResultKind discriminates ImportResult
type ImportResultKind int

const (
	ResultImported ImportResultKind = iota
	ResultImportRejected
)

// ImportResult is either Imported(Elements) or ImportRejected(Reason)
type ImportResult struct {
	Kind     ImportResultKind
	Elements []palette.ColorElement
	Reason   RejectionReason
}

// Accepted reports whether the import went through
func (r ImportResult) Accepted() bool {
	return r.Kind == ResultImported
}

// ImportLogic vets incoming colours against the current palette.
// It never touches a store; callers decide how to place accepted colours.
type ImportLogic struct {
	maxElements int
}

// NewImportLogic creates import logic capped at maxElements.
// Non-positive values fall back to DefaultMaxImportElements.
func NewImportLogic(maxElements int) ImportLogic {
	if maxElements <= 0 {
		maxElements = DefaultMaxImportElements
	}
	return ImportLogic{maxElements: maxElements}
}

// MaxElements returns the configured cap
func (l ImportLogic) MaxElements() int {
	return l.maxElements
}

// DetermineAction rejects when the palette is full, when every incoming
// colour is already present, or when more than the cap remain after
// de-duplication. The cap applies to this import alone, not to the
// remaining capacity.
func (l ImportLogic) DetermineAction(event ImportEvent) ImportAction {
	if len(event.Existing) >= l.maxElements {
		return reject(RejectionReason{Kind: RejectPaletteFull})
	}

	filtered := FilterNew(event.Existing, event.Imported)
	if len(filtered) == 0 {
		return reject(RejectionReason{Kind: RejectAllColorsAlreadyExist})
	}
	if len(filtered) > l.maxElements {
		return reject(RejectionReason{Kind: RejectTooManyColorsAfterFiltering, MaxAllowed: l.maxElements})
	}

	return ImportAction{Kind: ActionImportColors, Filtered: filtered}
}

// ExecuteAction turns an action into its result without side effects
func (l ImportLogic) ExecuteAction(action ImportAction) ImportResult {
	if action.Kind == ActionRejectImport {
		utils.Debug("Import rejected: %s", action.Reason.Message())
		return ImportResult{Kind: ResultImportRejected, Reason: action.Reason}
	}
	utils.Debug("Import accepted: %d colors", len(action.Filtered))
	return ImportResult{Kind: ResultImported, Elements: action.Filtered}
}

// Handle determines and executes the action for event
func (l ImportLogic) Handle(event ImportEvent) ImportResult {
	return l.ExecuteAction(l.DetermineAction(event))
}

func reject(reason RejectionReason) ImportAction {
	return ImportAction{Kind: ActionRejectImport, Reason: reason}
}

// FilterNew returns the imported elements whose colour code is not in
// existing, in their original order
func FilterNew(existing, imported []palette.ColorElement) []palette.ColorElement {
	filtered := make([]palette.ColorElement, 0, len(imported))
	for _, e := range imported {
		if !palette.ContainsCode(existing, e.ColorCode()) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
