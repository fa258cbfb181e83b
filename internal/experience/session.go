package experience

import (
	"github.com/simidle/simidle/internal/palette"
	"github.com/simidle/simidle/internal/store"
)

// EditingState is the edit state of one colour channel
type EditingState struct {
	Selection palette.Component
	Code      string
	Value     int

	initialCode string
}

// NewEditingState starts editing hex with nothing selected
func NewEditingState(hex string) EditingState {
	return EditingState{
		Code:        hex,
		initialCode: hex,
	}
}

// InitialCode returns the hex the edit started from
func (s EditingState) InitialCode() string {
	return s.initialCode
}

// IsSelected reports whether an RGB component is selected
func (s EditingState) IsSelected() bool {
	return s.Selection != palette.ComponentNone
}

// Reset restores the initial code and clears the selection
func (s *EditingState) Reset() {
	s.Code = s.initialCode
	s.Value = 0
	s.Selection = palette.ComponentNone
}

// UpdateCode replaces the edited hex code
func (s *EditingState) UpdateCode(code string) {
	s.Code = code
}

// UpdateValue sets the selected component's value (clamped to 0-255) and
// writes it into the hex code. With nothing selected only Value changes.
func (s *EditingState) UpdateValue(v int) {
	v = palette.ClampValue(v)
	if v == s.Value && s.IsSelected() {
		return
	}
	s.Value = v
	if s.IsSelected() {
		s.Code = palette.ReplaceComponent(s.Code, s.Selection, v)
	}
}

// SelectComponent selects c and loads its current value from the code
func (s *EditingState) SelectComponent(c palette.Component) {
	s.Selection = c
	if c != palette.ComponentNone {
		s.Value = palette.ComponentValue(s.Code, c)
	}
}

// ToggleComponent selects c, or deselects it when it is already selected
func (s *EditingState) ToggleComponent(c palette.Component) {
	if s.Selection == c {
		s.SelectComponent(palette.ComponentNone)
		return
	}
	s.SelectComponent(c)
}

// EditingSession holds the orb and space channels while a colour pair is
// being edited. It is never persisted.
type EditingSession struct {
	Orb   EditingState
	Space EditingState
}

// NewEditingSession starts a session from the given colours
func NewEditingSession(orbHexCode, spaceHexCode string) *EditingSession {
	return &EditingSession{
		Orb:   NewEditingState(orbHexCode),
		Space: NewEditingState(spaceHexCode),
	}
}

// NewEditingSessionFromStore starts a session from the store's current theme
func NewEditingSessionFromStore(s *store.ColorStore) *EditingSession {
	return NewEditingSession(s.OrbHexCode(), s.SpaceHexCode())
}

func (s *EditingSession) IsOrbColorSelected() bool {
	return s.Orb.IsSelected()
}

func (s *EditingSession) IsSpaceColorSelected() bool {
	return s.Space.IsSelected()
}

// ActiveValue returns the value of the selected channel, orb first
func (s *EditingSession) ActiveValue() int {
	switch {
	case s.Orb.IsSelected():
		return s.Orb.Value
	case s.Space.IsSelected():
		return s.Space.Value
	default:
		return 0
	}
}

// UpdateActiveValue updates the selected channel, orb first
func (s *EditingSession) UpdateActiveValue(v int) {
	switch {
	case s.Orb.IsSelected():
		s.Orb.UpdateValue(v)
	case s.Space.IsSelected():
		s.Space.UpdateValue(v)
	}
}

// ResetAll resets both channels
func (s *EditingSession) ResetAll() {
	s.Orb.Reset()
	s.Space.Reset()
}

// HasChanges reports whether either edited code differs from the store's
// current colours
func (s *EditingSession) HasChanges(cs *store.ColorStore) bool {
	return s.Orb.Code != cs.OrbHexCode() || s.Space.Code != cs.SpaceHexCode()
}

// CreateElement returns the edited colour pair
func (s *EditingSession) CreateElement() palette.ColorElement {
	return palette.NewColorElement(s.Orb.Code, s.Space.Code)
}
