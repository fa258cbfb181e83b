package share

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simidle/simidle/internal/clipboard"
	"github.com/simidle/simidle/internal/palette"
)

func TestSharingSelectionState(t *testing.T) {
	state := NewSharingSelectionState([]palette.ColorElement{colorA, colorB, colorC})

	picked := state.Select(colorB)
	assert.Equal(t, []palette.ColorElement{colorA, colorC}, picked.Available())
	assert.Equal(t, []palette.ColorElement{colorB}, picked.Candidates())
	assert.Equal(t, []palette.ColorElement{colorA, colorB, colorC}, state.Available(), "snapshot unchanged")

	picked = picked.Select(colorA)
	assert.Equal(t, "222222BBBBBB111111AAAAAA", picked.ShareCode())

	back := picked.Remove(colorB)
	assert.Equal(t, []palette.ColorElement{colorC, colorB}, back.Available(), "removed entries go to the end")
	assert.Equal(t, []palette.ColorElement{colorA}, back.Candidates())
}

func TestSharingSelectionState_UnknownElement(t *testing.T) {
	state := NewSharingSelectionState([]palette.ColorElement{colorA})
	assert.Equal(t, state, state.Select(colorF))
	assert.Equal(t, state, state.Remove(colorA), "not a candidate")
}

func TestImportUIState(t *testing.T) {
	var state ImportUIState
	_, ok := state.LastPasteResult()
	assert.False(t, ok)
	assert.Equal(t, ContentView{Kind: ContentEmpty}, state.Content(2))

	failed := state.WithPasteResult(PasteResult{Err: clipboard.ErrInvalidFormat})
	assert.Equal(t, ContentView{Kind: ContentError, Message: "Invalid format"}, failed.Content(2))
	assert.Equal(t, ContentView{Kind: ContentEmpty}, state.Content(2), "snapshot unchanged")

	full := failed.Content(5)
	assert.Equal(t, ContentView{Kind: ContentError, Message: "Palette is full"}, full)

	ok2 := failed.WithPasteResult(PasteResult{Elements: []palette.ColorElement{colorA}})
	last, ok := ok2.LastPasteResult()
	require.True(t, ok)
	assert.Equal(t, []palette.ColorElement{colorA}, last.Elements)
	assert.Equal(t, ContentView{Kind: ContentEmpty}, ok2.Content(1))

	cleared := failed.ClearPasteResult()
	_, ok = cleared.LastPasteResult()
	assert.False(t, ok)
}
