package clipboard

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simidle/simidle/internal/palette"
)

// fakeBoard is an in-memory Board
type fakeBoard struct {
	text     string
	readErr  error
	writeErr error
	writes   []string
}

func (b *fakeBoard) ReadAll() (string, error) {
	return b.text, b.readErr
}

func (b *fakeBoard) WriteAll(text string) error {
	if b.writeErr != nil {
		return b.writeErr
	}
	b.writes = append(b.writes, text)
	b.text = text
	return nil
}

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []palette.ColorElement
		wantErr error
	}{
		{
			name:    "empty clipboard",
			input:   "",
			wantErr: ErrEmpty,
		},
		{
			name:    "eleven characters",
			input:   "3BB6A2FFF8E",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "whitespace only",
			input:   " \n\t ",
			wantErr: ErrNoColorCodes,
		},
		{
			name:    "six codes",
			input:   strings.Repeat("3BB6A2FFF8E1", 6),
			wantErr: ErrTooManyColors,
		},
		{
			name:    "non-hex digit",
			input:   "3BB6A2FFF8EZ",
			wantErr: ErrInvalidHex,
		},
		{
			name:    "hash prefix is not accepted",
			input:   "#3BB6A2FFF8E",
			wantErr: ErrInvalidHex,
		},
		{
			name:  "single code",
			input: "3BB6A2FFF8E1",
			want:  []palette.ColorElement{palette.NewColorElement("#3BB6A2", "#FFF8E1")},
		},
		{
			name:  "surrounding newlines trimmed",
			input: "\n3BB6A2FFF8E1e28fa6fff7f9\n",
			want: []palette.ColorElement{
				palette.NewColorElement("#3BB6A2", "#FFF8E1"),
				palette.NewColorElement("#e28fa6", "#fff7f9"),
			},
		},
		{
			name:  "five codes",
			input: strings.Repeat("4A4A4AF8F8F5", 5),
			want: []palette.ColorElement{
				palette.DefaultColor, palette.DefaultColor, palette.DefaultColor,
				palette.DefaultColor, palette.DefaultColor,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewValidator().Validate(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "Clipboard is empty", ErrEmpty.Error())
	assert.Equal(t, "Invalid format", ErrInvalidFormat.Error())
	assert.Equal(t, "Too many colors (max 5)", ErrTooManyColors.Error())
	assert.Equal(t, "No color codes found", ErrNoColorCodes.Error())
	assert.Equal(t, "Invalid hex color code", ErrInvalidHex.Error())
}

func TestReader_ReadColorCodes(t *testing.T) {
	board := &fakeBoard{text: "3BB6A2FFF8E1"}
	elements, err := NewReader(board).ReadColorCodes()
	require.NoError(t, err)
	assert.Equal(t, []palette.ColorElement{palette.NewColorElement("#3BB6A2", "#FFF8E1")}, elements)
}

func TestReader_UnreadableBoardIsEmpty(t *testing.T) {
	board := &fakeBoard{text: "3BB6A2FFF8E1", readErr: errors.New("no display")}
	_, err := NewReader(board).ReadColorCodes()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestWriter_CopyColorCodes(t *testing.T) {
	board := &fakeBoard{}
	writer := NewWriter(board)

	writer.CopyColorCodes([]palette.ColorElement{
		palette.NewColorElement("#4A4A4A", "#F8F8F5"),
		palette.NewColorElement("#3BB6A2", "#FFF8E1"),
	})
	assert.Equal(t, []string{"4A4A4AF8F8F53BB6A2FFF8E1"}, board.writes)

	// A copied palette reads back unchanged
	elements, err := NewReader(board).ReadColorCodes()
	require.NoError(t, err)
	assert.Equal(t, "4A4A4AF8F8F53BB6A2FFF8E1", palette.ColorCodesString(elements))
}

func TestWriter_FailureIsSwallowed(t *testing.T) {
	board := &fakeBoard{writeErr: errors.New("denied")}
	assert.NotPanics(t, func() {
		NewWriter(board).CopyColorCodes([]palette.ColorElement{palette.DefaultColor})
	})
	assert.Empty(t, board.writes)
}
