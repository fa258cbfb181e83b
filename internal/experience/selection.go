package experience

import (
	"github.com/simidle/simidle/internal/store"
	"github.com/simidle/simidle/internal/utils"
)

// SelectionAction is what finishing a colour edit should do
type SelectionAction int

const (
	ActionAdd SelectionAction = iota
	ActionApply
	ActionReset
	ActionBack
)

func (a SelectionAction) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionApply:
		return "apply"
	case ActionReset:
		return "reset"
	case ActionBack:
		return "back"
	default:
		return "unknown"
	}
}

// SelectionResult is the outcome of executing a SelectionAction
type SelectionResult int

const (
	ResultAdded SelectionResult = iota
	ResultApplied
	ResultReset
	ResultNavigatedBack
	ResultAlreadyExists
)

func (r SelectionResult) String() string {
	switch r {
	case ResultAdded:
		return "added"
	case ResultApplied:
		return "applied"
	case ResultReset:
		return "reset"
	case ResultNavigatedBack:
		return "navigated back"
	case ResultAlreadyExists:
		return "already exists"
	default:
		return "unknown"
	}
}

// SelectionLogic decides how an edit session is committed to the store
type SelectionLogic struct {
	store *store.ColorStore
}

// NewSelectionLogic creates selection logic over a store
func NewSelectionLogic(s *store.ColorStore) SelectionLogic {
	return SelectionLogic{store: s}
}

// DetermineAction returns Back when nothing changed, Add while the
// palette has room, and Apply once it is full
func (l SelectionLogic) DetermineAction(session *EditingSession) SelectionAction {
	if !session.HasChanges(l.store) {
		return ActionBack
	}
	if l.store.Count() < l.store.MaxPallets() {
		return ActionAdd
	}
	return ActionApply
}

// ExecuteAction performs action. Only Add and Apply touch the store;
// Reset only touches the session.
func (l SelectionLogic) ExecuteAction(action SelectionAction, session *EditingSession) SelectionResult {
	element := session.CreateElement()

	var result SelectionResult
	switch action {
	case ActionAdd:
		if l.store.HasMatchingPallet(element) {
			result = ResultAlreadyExists
		} else {
			l.store.AddColorsToPallet(element)
			result = ResultAdded
		}
	case ActionApply:
		l.store.UpdateCurrentColors(element)
		result = ResultApplied
	case ActionReset:
		session.ResetAll()
		result = ResultReset
	default:
		result = ResultNavigatedBack
	}

	utils.Debug("Color selection %s: %s (%s)", action, result, element.ColorCode())
	return result
}
