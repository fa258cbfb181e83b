package skill

import "github.com/simidle/simidle/internal/utils"

// HandOffKey carries a palette share code between skills
const HandOffKey = "colorElementSet"

// Event is emitted by a skill screen and interpreted by the Navigator
type Event interface {
	isEvent()
}

// NavigateEvent opens To on top of the current skill
type NavigateEvent struct{ To ID }

// BackEvent returns to the previous skill
type BackEvent struct{}

// StoreUpdateEvent sets a hand-off value shared by all skills
type StoreUpdateEvent struct {
	Key   string
	Value string
}

func (NavigateEvent) isEvent()    {}
func (BackEvent) isEvent()        {}
func (StoreUpdateEvent) isEvent() {}

// Navigator owns the skill history and the hand-off values
type Navigator struct {
	history *History[ID]
	store   map[string]string
}

// NewNavigator starts at the default skill with no hand-off values
func NewNavigator() *Navigator {
	return &Navigator{
		history: NewHistory[ID](),
		store:   make(map[string]string),
	}
}

// Dispatch applies event and reports whether the current skill changed
func (n *Navigator) Dispatch(event Event) bool {
	before := n.Current()

	switch e := event.(type) {
	case NavigateEvent:
		if !e.To.Valid() {
			utils.Debug("Ignoring navigation to unknown skill %d", int(e.To))
			return false
		}
		n.history.Push(e.To)
	case BackEvent:
		n.history.Pop()
	case StoreUpdateEvent:
		n.store[e.Key] = e.Value
	}

	after := n.Current()
	if before != after {
		utils.Debug("Navigated %s -> %s (depth %d)", before, after, n.history.Len())
	}
	return before != after
}

// NavigateTo dispatches a NavigateEvent for a skill identifier.
// Unknown identifiers are ignored.
func (n *Navigator) NavigateTo(id string) bool {
	to, ok := FromID(id)
	if !ok {
		utils.Debug("Ignoring navigation to unknown skill %q", id)
		return false
	}
	return n.Dispatch(NavigateEvent{To: to})
}

// Current is the top of the history, or Experience when it is empty
func (n *Navigator) Current() ID {
	if id, ok := n.history.Current(); ok {
		return id
	}
	return Experience
}

// Depth is the number of skills on the history
func (n *Navigator) Depth() int {
	return n.history.Len()
}

// Value returns a hand-off value
func (n *Navigator) Value(key string) string {
	return n.store[key]
}
