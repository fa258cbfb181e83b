package experience

import (
	"errors"

	"github.com/simidle/simidle/internal/store"
	"github.com/simidle/simidle/internal/utils"
)

// ErrInvalidIndex is returned when a deletion targets no palette entry
var ErrInvalidIndex = errors.New("invalid palette index")

// DeletionEvent is a user gesture in the delete workflow
type DeletionEvent interface {
	isDeletionEvent()
}

// LongTap asks to delete the entry at Index
type LongTap struct{ Index int }

// DeleteConfirmed confirms deleting the entry at Index
type DeleteConfirmed struct{ Index int }

// DeleteCancel dismisses the confirmation
type DeleteCancel struct{}

func (LongTap) isDeletionEvent()         {}
func (DeleteConfirmed) isDeletionEvent() {}
func (DeleteCancel) isDeletionEvent()    {}

// DeletionAction is what the logic should do for an event
type DeletionAction interface {
	isDeletionAction()
}

// RequestDeleteConfirmation shows the confirmation for Index
type RequestDeleteConfirmation struct{ Index int }

// Delete removes the entry at Index
type Delete struct{ Index int }

// CancelDelete drops the pending deletion
type CancelDelete struct{}

func (RequestDeleteConfirmation) isDeletionAction() {}
func (Delete) isDeletionAction()                    {}
func (CancelDelete) isDeletionAction()              {}

// DeletionOutcome identifies a successful deletion result
type DeletionOutcome int

const (
	OutcomeDeleteConfirmationRequested DeletionOutcome = iota
	OutcomeDeleted
	OutcomeDeleteCancelled
)

// DeletionResult is the outcome of a successful action.
// Index is set for confirmation requests, RemainingCount for deletions.
type DeletionResult struct {
	Outcome        DeletionOutcome
	Index          int
	RemainingCount int
}

// DeletionLogic runs the long-press delete workflow against a store
type DeletionLogic struct {
	store *store.ColorStore
}

// NewDeletionLogic creates deletion logic over a store
func NewDeletionLogic(s *store.ColorStore) DeletionLogic {
	return DeletionLogic{store: s}
}

// DetermineAction maps each event to its action
func (l DeletionLogic) DetermineAction(event DeletionEvent) DeletionAction {
	switch e := event.(type) {
	case LongTap:
		return RequestDeleteConfirmation{Index: e.Index}
	case DeleteConfirmed:
		return Delete{Index: e.Index}
	default:
		return CancelDelete{}
	}
}

// ExecuteAction performs action. Indices outside the palette, negative
// ones included, fail with ErrInvalidIndex.
func (l DeletionLogic) ExecuteAction(action DeletionAction) (DeletionResult, error) {
	switch a := action.(type) {
	case RequestDeleteConfirmation:
		if !l.validIndex(a.Index) {
			return DeletionResult{}, ErrInvalidIndex
		}
		return DeletionResult{Outcome: OutcomeDeleteConfirmationRequested, Index: a.Index}, nil

	case Delete:
		if !l.validIndex(a.Index) {
			return DeletionResult{}, ErrInvalidIndex
		}
		count := l.store.Count()
		l.store.RemovePallet(a.Index)
		utils.Debug("Deleted palette entry %d", a.Index)
		return DeletionResult{Outcome: OutcomeDeleted, RemainingCount: count - 1}, nil

	default:
		return DeletionResult{Outcome: OutcomeDeleteCancelled}, nil
	}
}

// Handle determines and executes the action for event
func (l DeletionLogic) Handle(event DeletionEvent) (DeletionResult, error) {
	return l.ExecuteAction(l.DetermineAction(event))
}

func (l DeletionLogic) validIndex(i int) bool {
	return i >= 0 && i < l.store.Count()
}
