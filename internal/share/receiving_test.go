package share

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simidle/simidle/internal/palette"
)

func TestReceivingSelectionState_New(t *testing.T) {
	available := []palette.ColorElement{colorA, colorB}
	state := NewReceivingSelectionState(available, []palette.ColorElement{colorC})

	assert.Equal(t, available, state.Palette())
	assert.Equal(t, available, state.AvailableElements())
	assert.Equal(t, []palette.ColorElement{colorC}, state.Candidates())

	available[0] = colorF
	assert.Equal(t, colorA, state.Palette()[0], "state owns its slices")
}

func TestReceivingSelectionState_WithColorCandidates(t *testing.T) {
	state := NewReceivingSelectionState([]palette.ColorElement{colorA}, nil)

	next := state.WithColorCandidates([]palette.ColorElement{colorA, colorB, colorC})
	assert.Equal(t, []palette.ColorElement{colorB, colorC}, next.Candidates())
	assert.Empty(t, state.Candidates(), "original snapshot unchanged")

	many := []palette.ColorElement{
		colorB, colorC, colorD, colorE, colorF,
		el("#777777", "#000000"),
	}
	capped := state.WithColorCandidates(many)
	assert.Len(t, capped.Candidates(), MaxIncomingCandidates)
	assert.Equal(t, many[:5], capped.Candidates())
}

func TestReceivingSelectionState_ClearAndReset(t *testing.T) {
	state := NewReceivingSelectionState([]palette.ColorElement{colorA}, []palette.ColorElement{colorB, colorC})
	moved := state.MoveCandidateToPalette(0)
	require.Equal(t, []palette.ColorElement{colorA, colorB}, moved.Palette())

	cleared := moved.ClearCandidates()
	assert.Empty(t, cleared.Candidates())
	assert.Equal(t, []palette.ColorElement{colorA, colorB}, cleared.Palette())

	reset := moved.Reset()
	assert.Equal(t, []palette.ColorElement{colorA}, reset.Palette())
	assert.Empty(t, reset.Candidates())
}

func TestReceivingSelectionState_MoveCandidateToPalette(t *testing.T) {
	state := NewReceivingSelectionState([]palette.ColorElement{colorA}, []palette.ColorElement{colorB, colorC})

	next := state.MoveCandidateToPalette(1)
	assert.Equal(t, []palette.ColorElement{colorA, colorC}, next.Palette())
	assert.Equal(t, []palette.ColorElement{colorB}, next.Candidates())
	assert.Equal(t, []palette.ColorElement{colorB, colorC}, state.Candidates())

	for _, index := range []int{-1, 2, 10} {
		assert.Equal(t, state, state.MoveCandidateToPalette(index), "index %d", index)
	}

	full := NewReceivingSelectionState(
		[]palette.ColorElement{colorA, colorB, colorC, colorD, colorE},
		[]palette.ColorElement{colorF},
	)
	assert.Equal(t, full, full.MoveCandidateToPalette(0))
}

func TestReceivingSelectionState_MovePaletteToCandidate(t *testing.T) {
	state := NewReceivingSelectionState([]palette.ColorElement{colorA, colorB}, nil)

	next := state.MovePaletteToCandidate(0)
	assert.Equal(t, []palette.ColorElement{colorB}, next.Palette())
	assert.Equal(t, []palette.ColorElement{colorA}, next.Candidates())

	assert.Equal(t, state, state.MovePaletteToCandidate(-1))
	assert.Equal(t, state, state.MovePaletteToCandidate(2))

	crowded := NewReceivingSelectionState(
		[]palette.ColorElement{colorA},
		[]palette.ColorElement{colorB, colorC, colorD, colorE, colorF, el("#777777", "#000000")},
	)
	assert.Equal(t, crowded, crowded.MovePaletteToCandidate(0))
}

func TestReceivingSelectionLogic_CanMove(t *testing.T) {
	var logic ReceivingSelectionLogic
	available := []palette.ColorElement{colorA, colorB}

	assert.False(t, logic.CanMovePaletteElement(colorA, available))
	assert.False(t, logic.CanMovePaletteElement(el("111111", "AAAAAA"), available), "matched by code")
	assert.True(t, logic.CanMovePaletteElement(colorC, available))
}

func TestReceivingSelectionLogic_ValidatePaletteMovement(t *testing.T) {
	var logic ReceivingSelectionLogic
	available := []palette.ColorElement{colorA}
	pal := []palette.ColorElement{colorA, colorB}

	assert.Equal(t, MovementValidation{Err: MovementIndexOutOfBounds}, logic.ValidatePaletteMovement(-1, pal, available))
	assert.Equal(t, MovementValidation{Err: MovementIndexOutOfBounds}, logic.ValidatePaletteMovement(2, pal, available))

	protected := logic.ValidatePaletteMovement(0, pal, available)
	assert.False(t, protected.Valid())
	assert.Equal(t, MovementProtectedElement, protected.Err)

	valid := logic.ValidatePaletteMovement(1, pal, available)
	assert.True(t, valid.Valid())
	assert.Equal(t, colorB, valid.Element)
}

func TestReceivingSelectionLogic_MovePaletteToCandidate(t *testing.T) {
	var logic ReceivingSelectionLogic
	state := NewReceivingSelectionState([]palette.ColorElement{colorA}, []palette.ColorElement{colorB})
	state = state.MoveCandidateToPalette(0)

	same, v := logic.MovePaletteToCandidate(state, 0)
	assert.Equal(t, MovementProtectedElement, v.Err)
	assert.Equal(t, state, same)

	next, v := logic.MovePaletteToCandidate(state, 1)
	require.True(t, v.Valid())
	assert.Equal(t, []palette.ColorElement{colorA}, next.Palette())
	assert.Equal(t, []palette.ColorElement{colorB}, next.Candidates())
}

func TestPlaceReceived(t *testing.T) {
	pal, leftover := PlaceReceived(
		[]palette.ColorElement{colorA, colorB, colorC},
		[]palette.ColorElement{colorD, colorE, colorF},
	)
	assert.Equal(t, []palette.ColorElement{colorA, colorB, colorC, colorD, colorE}, pal)
	assert.Equal(t, []palette.ColorElement{colorF}, leftover)

	pal, leftover = PlaceReceived(nil, []palette.ColorElement{colorA})
	assert.Equal(t, []palette.ColorElement{colorA}, pal)
	assert.Empty(t, leftover)
}
