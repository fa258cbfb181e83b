package share

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simidle/simidle/internal/palette"
)

func el(orb, space string) palette.ColorElement {
	return palette.NewColorElement(orb, space)
}

var (
	colorA = el("#111111", "#AAAAAA")
	colorB = el("#222222", "#BBBBBB")
	colorC = el("#333333", "#CCCCCC")
	colorD = el("#444444", "#DDDDDD")
	colorE = el("#555555", "#EEEEEE")
	colorF = el("#666666", "#FFFFFF")
)

func TestImportLogic_DetermineAction(t *testing.T) {
	logic := NewImportLogic(5)

	tests := []struct {
		name     string
		existing []palette.ColorElement
		imported []palette.ColorElement
		want     ImportAction
	}{
		{
			name:     "full palette rejects even new colors",
			existing: []palette.ColorElement{colorA, colorB, colorC, colorD, colorE},
			imported: []palette.ColorElement{colorF},
			want:     ImportAction{Kind: ActionRejectImport, Reason: RejectionReason{Kind: RejectPaletteFull}},
		},
		{
			name:     "full palette rejects duplicates as full",
			existing: []palette.ColorElement{colorA, colorB, colorC, colorD, colorE},
			imported: []palette.ColorElement{colorA},
			want:     ImportAction{Kind: ActionRejectImport, Reason: RejectionReason{Kind: RejectPaletteFull}},
		},
		{
			name:     "subset of existing",
			existing: []palette.ColorElement{colorA, colorB},
			imported: []palette.ColorElement{colorB, colorA},
			want:     ImportAction{Kind: ActionRejectImport, Reason: RejectionReason{Kind: RejectAllColorsAlreadyExist}},
		},
		{
			name:     "nothing imported",
			existing: []palette.ColorElement{colorA},
			imported: nil,
			want:     ImportAction{Kind: ActionRejectImport, Reason: RejectionReason{Kind: RejectAllColorsAlreadyExist}},
		},
		{
			name:     "disjoint list accepted unchanged",
			existing: []palette.ColorElement{colorA},
			imported: []palette.ColorElement{colorC, colorB},
			want:     ImportAction{Kind: ActionImportColors, Filtered: []palette.ColorElement{colorC, colorB}},
		},
		{
			name:     "overlap filtered out",
			existing: []palette.ColorElement{colorA, colorB},
			imported: []palette.ColorElement{colorA, colorC, colorB, colorD},
			want:     ImportAction{Kind: ActionImportColors, Filtered: []palette.ColorElement{colorC, colorD}},
		},
		{
			name:     "cap is per import not remaining capacity",
			existing: []palette.ColorElement{colorA, colorB, colorC, colorD},
			imported: []palette.ColorElement{colorE, colorF},
			want:     ImportAction{Kind: ActionImportColors, Filtered: []palette.ColorElement{colorE, colorF}},
		},
		{
			name:     "case differs so colors are distinct",
			existing: []palette.ColorElement{el("#AABBCC", "#DDEEFF")},
			imported: []palette.ColorElement{el("#aabbcc", "#ddeeff")},
			want:     ImportAction{Kind: ActionImportColors, Filtered: []palette.ColorElement{el("#aabbcc", "#ddeeff")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logic.DetermineAction(ImportEvent{Existing: tt.existing, Imported: tt.imported})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImportLogic_TooManyAfterFiltering(t *testing.T) {
	logic := NewImportLogic(2)

	action := logic.DetermineAction(ImportEvent{
		Existing: []palette.ColorElement{colorA},
		Imported: []palette.ColorElement{colorA, colorB, colorC, colorD},
	})
	require.Equal(t, ActionRejectImport, action.Kind)
	assert.Equal(t, RejectionReason{Kind: RejectTooManyColorsAfterFiltering, MaxAllowed: 2}, action.Reason)
	assert.Equal(t, "Too many colors (max 2)", action.Reason.Message())
}

func TestImportLogic_DefaultMax(t *testing.T) {
	assert.Equal(t, DefaultMaxImportElements, NewImportLogic(0).MaxElements())
	assert.Equal(t, DefaultMaxImportElements, NewImportLogic(-3).MaxElements())
	assert.Equal(t, 7, NewImportLogic(7).MaxElements())
}

func TestImportLogic_ExecuteAction(t *testing.T) {
	logic := NewImportLogic(5)

	imported := logic.ExecuteAction(ImportAction{Kind: ActionImportColors, Filtered: []palette.ColorElement{colorA}})
	assert.True(t, imported.Accepted())
	assert.Equal(t, []palette.ColorElement{colorA}, imported.Elements)

	reason := RejectionReason{Kind: RejectAllColorsAlreadyExist}
	rejected := logic.ExecuteAction(ImportAction{Kind: ActionRejectImport, Reason: reason})
	assert.False(t, rejected.Accepted())
	assert.Equal(t, ResultImportRejected, rejected.Kind)
	assert.Equal(t, reason, rejected.Reason)
}

func TestImportLogic_Handle(t *testing.T) {
	result := NewImportLogic(5).Handle(ImportEvent{
		Existing: []palette.ColorElement{colorA},
		Imported: []palette.ColorElement{colorA, colorB},
	})
	require.True(t, result.Accepted())
	assert.Equal(t, []palette.ColorElement{colorB}, result.Elements)
}

func TestRejectionReason_Message(t *testing.T) {
	assert.Equal(t, "Palette is full", RejectionReason{Kind: RejectPaletteFull}.Message())
	assert.Equal(t, "All colors already exist", RejectionReason{Kind: RejectAllColorsAlreadyExist}.Message())
	assert.Equal(t, "Too many colors (max 5)",
		RejectionReason{Kind: RejectTooManyColorsAfterFiltering, MaxAllowed: 5}.Message())
}
