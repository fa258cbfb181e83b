package clipboard

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"

	"github.com/simidle/simidle/internal/palette"
	"github.com/simidle/simidle/internal/utils"
)

// MaxColors is the most colour codes one paste may carry
const MaxColors = 5

// Reader errors. Their messages are shown to the user as-is.
var (
	ErrEmpty         = errors.New("Clipboard is empty")
	ErrInvalidFormat = errors.New("Invalid format")
	ErrTooManyColors = fmt.Errorf("Too many colors (max %d)", MaxColors)
	ErrNoColorCodes  = errors.New("No color codes found")
	ErrInvalidHex    = errors.New("Invalid hex color code")
)

// Board is a clipboard that holds text
type Board interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemBoard is the operating system clipboard
type SystemBoard struct{}

func (SystemBoard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

func (SystemBoard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Validator checks and extracts palette codes from text
type Validator struct {
	maxColors int
}

// NewValidator creates a validator allowing up to MaxColors codes
func NewValidator() *Validator {
	return &Validator{maxColors: MaxColors}
}

// Validate parses text made of 12-character orb+space hex chunks.
// Surrounding whitespace is ignored; every character must be a hex digit.
func (v *Validator) Validate(text string) ([]palette.ColorElement, error) {
	if text == "" {
		return nil, ErrEmpty
	}

	trimmed := strings.TrimSpace(text)
	length := utf8.RuneCountInString(trimmed)
	if length%palette.ColorCodeLength != 0 {
		return nil, ErrInvalidFormat
	}

	count := length / palette.ColorCodeLength
	if count > v.maxColors {
		return nil, ErrTooManyColors
	}
	if count == 0 {
		return nil, ErrNoColorCodes
	}
	if !palette.IsHexString(trimmed) {
		return nil, ErrInvalidHex
	}

	return palette.ParseElementSet(trimmed).Elements(), nil
}

// ParseCodes validates text with the default validator
func ParseCodes(text string) ([]palette.ColorElement, error) {
	return NewValidator().Validate(text)
}

// Reader reads palette codes from a Board
type Reader struct {
	board     Board
	validator *Validator
}

// NewReader creates a reader over board
func NewReader(board Board) *Reader {
	return &Reader{board: board, validator: NewValidator()}
}

// ReadColorCodes reads and validates the board's text.
// An unreadable board counts as empty.
func (r *Reader) ReadColorCodes() ([]palette.ColorElement, error) {
	text, err := r.board.ReadAll()
	if err != nil {
		utils.Debug("Failed to read clipboard: %v", err)
		text = ""
	}
	return r.validator.Validate(text)
}

// Writer copies palette codes to a Board
type Writer struct {
	board Board
}

// NewWriter creates a writer over board
func NewWriter(board Board) *Writer {
	return &Writer{board: board}
}

// CopyColorCodes writes the concatenated colour codes of elements.
// Failures are logged and not reported.
func (w *Writer) CopyColorCodes(elements []palette.ColorElement) {
	codes := palette.ColorCodesString(elements)
	if err := w.board.WriteAll(codes); err != nil {
		utils.Debug("Failed to write clipboard: %v", err)
		return
	}
	utils.Debug("Copied %d color codes to clipboard", len(elements))
}

// ReadColorCodes reads palette codes from the system clipboard
func ReadColorCodes() ([]palette.ColorElement, error) {
	return NewReader(SystemBoard{}).ReadColorCodes()
}
