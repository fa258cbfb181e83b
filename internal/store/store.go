package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/simidle/simidle/internal/palette"
	"github.com/simidle/simidle/internal/utils"
)

const (
	// MaxPallets is the palette capacity
	MaxPallets = 5
	// PalletKey is the persistence key the palette JSON is stored under
	PalletKey = "colorPallet_data"
)

// PalletEntry is one saved colour pair. The ID only gives the entry a
// stable identity across list mutations.
type PalletEntry struct {
	ID      uuid.UUID
	Element palette.ColorElement
}

// NewPalletEntry wraps an element in an entry with a fresh ID
func NewPalletEntry(element palette.ColorElement) PalletEntry {
	return PalletEntry{ID: uuid.New(), Element: element}
}

type palletJSON struct {
	ID           *uuid.UUID `json:"id,omitempty"`
	OrbHexCode   string     `json:"orbHexCode"`
	SpaceHexCode string     `json:"spaceHexCode"`
}

func (p PalletEntry) MarshalJSON() ([]byte, error) {
	id := p.ID
	return json.Marshal(palletJSON{
		ID:           &id,
		OrbHexCode:   p.Element.OrbHexCode,
		SpaceHexCode: p.Element.SpaceHexCode,
	})
}

// UnmarshalJSON accepts records without an id, assigning a fresh one
func (p *PalletEntry) UnmarshalJSON(data []byte) error {
	var raw palletJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ID != nil {
		p.ID = *raw.ID
	} else {
		p.ID = uuid.New()
	}
	p.Element = palette.NewColorElement(raw.OrbHexCode, raw.SpaceHexCode)
	return nil
}

// ColorStore owns the ordered, bounded palette. Index 0 is the current
// theme. Every mutation is persisted immediately; persistence failures are
// logged and otherwise ignored. Index-based operations ignore out-of-range
// indices.
type ColorStore struct {
	persistence Persistence
	pallets     []PalletEntry
	readOnly    bool
}

// New creates a store backed by p and loads the saved palette. Nothing
// stored, or a palette that cannot be decoded, is seeded with the preset
// themes. Any other load failure is returned and nothing is written, so
// the caller must not use the store.
func New(p Persistence) (*ColorStore, error) {
	return open(p, false)
}

// NewReadOnly loads like New but never writes to p. An empty palette is
// seeded in memory only.
func NewReadOnly(p Persistence) (*ColorStore, error) {
	return open(p, true)
}

func open(p Persistence, readOnly bool) (*ColorStore, error) {
	s := &ColorStore{persistence: p, readOnly: readOnly}

	if err := s.Load(); err != nil {
		if !errors.Is(err, ErrCorrupt) {
			s.pallets = nil
			return s, err
		}
		utils.Debug("Discarding unreadable palette: %v", err)
	}

	if len(s.pallets) == 0 {
		s.setupDefaultPallets()
	}
	return s, nil
}

func (s *ColorStore) setupDefaultPallets() {
	s.pallets = s.pallets[:0]
	for _, e := range palette.PresetElements() {
		s.pallets = append(s.pallets, NewPalletEntry(e))
	}
	s.save()
}

// Load replaces the in-memory palette with the persisted one.
// Nothing stored leaves the palette empty.
func (s *ColorStore) Load() error {
	data, err := s.persistence.Load(PalletKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.pallets = nil
			return nil
		}
		return fmt.Errorf("failed to load palette: %w", err)
	}

	var pallets []PalletEntry
	if err := json.Unmarshal(data, &pallets); err != nil {
		return fmt.Errorf("failed to decode palette: %w: %v", ErrCorrupt, err)
	}
	if len(pallets) > MaxPallets {
		pallets = pallets[:MaxPallets]
	}
	s.pallets = pallets
	return nil
}

// Save writes the palette to persistence
func (s *ColorStore) Save() error {
	pallets := s.pallets
	if pallets == nil {
		pallets = []PalletEntry{}
	}
	data, err := json.Marshal(pallets)
	if err != nil {
		return fmt.Errorf("failed to encode palette: %w", err)
	}
	if err := s.persistence.Save(PalletKey, data); err != nil {
		return fmt.Errorf("failed to save palette: %w", err)
	}
	return nil
}

func (s *ColorStore) save() {
	if s.readOnly {
		return
	}
	if err := s.Save(); err != nil {
		utils.Debug("%v", err)
	}
}

// MaxPallets returns the palette capacity
func (s *ColorStore) MaxPallets() int {
	return MaxPallets
}

// Count returns the number of entries
func (s *ColorStore) Count() int {
	return len(s.pallets)
}

// Pallets returns a copy of the entries in order
func (s *ColorStore) Pallets() []PalletEntry {
	out := make([]PalletEntry, len(s.pallets))
	copy(out, s.pallets)
	return out
}

// Elements returns the palette as colour elements in order
func (s *ColorStore) Elements() []palette.ColorElement {
	out := make([]palette.ColorElement, 0, len(s.pallets))
	for _, p := range s.pallets {
		out = append(out, p.Element)
	}
	return out
}

// ShareCode returns the palette in its shareable string form
func (s *ColorStore) ShareCode() string {
	return palette.ColorCodesString(s.Elements())
}

// CurrentTheme returns the first entry, or the default theme when empty
func (s *ColorStore) CurrentTheme() palette.ColorElement {
	if len(s.pallets) == 0 {
		return palette.DefaultColor
	}
	return s.pallets[0].Element
}

// OrbHexCode returns the current orb colour
func (s *ColorStore) OrbHexCode() string {
	return s.CurrentTheme().OrbHexCode
}

// SpaceHexCode returns the current space colour
func (s *ColorStore) SpaceHexCode() string {
	return s.CurrentTheme().SpaceHexCode
}

// AddColorsToPallet inserts element at the front, evicting the oldest
// entry when full. Callers are responsible for duplicate checks.
func (s *ColorStore) AddColorsToPallet(element palette.ColorElement) {
	if len(s.pallets) >= MaxPallets {
		s.pallets = s.pallets[:MaxPallets-1]
	}
	s.pallets = append([]PalletEntry{NewPalletEntry(element)}, s.pallets...)
	utils.Debug("Added %s to palette (%d entries)", element.ColorCode(), len(s.pallets))
	s.save()
}

// ApplyPallet promotes the entry with the same ID to the front
func (s *ColorStore) ApplyPallet(entry PalletEntry) {
	for i, p := range s.pallets {
		if p.ID == entry.ID {
			s.MoveToFirst(i)
			return
		}
	}
}

// MoveToFirst promotes the entry at index to the front, keeping the
// relative order of the others
func (s *ColorStore) MoveToFirst(index int) {
	if index <= 0 || index >= len(s.pallets) {
		return
	}
	selected := s.pallets[index]
	copy(s.pallets[1:index+1], s.pallets[:index])
	s.pallets[0] = selected
	utils.Debug("Moved palette entry %d to front", index)
	s.save()
}

// RemovePallet deletes the entry at index
func (s *ColorStore) RemovePallet(index int) {
	if index < 0 || index >= len(s.pallets) {
		return
	}
	s.pallets = append(s.pallets[:index], s.pallets[index+1:]...)
	utils.Debug("Removed palette entry %d (%d left)", index, len(s.pallets))
	s.save()
}

// HasMatchingPallet reports whether an entry has the element's colour code
func (s *ColorStore) HasMatchingPallet(element palette.ColorElement) bool {
	code := element.ColorCode()
	for _, p := range s.pallets {
		if p.Element.ColorCode() == code {
			return true
		}
	}
	return false
}

// UpdateCurrentColors replaces the first entry, or adds it when empty
func (s *ColorStore) UpdateCurrentColors(element palette.ColorElement) {
	if len(s.pallets) == 0 {
		s.pallets = append(s.pallets, NewPalletEntry(element))
	} else {
		s.pallets[0] = NewPalletEntry(element)
	}
	s.save()
}

// ResetToDefaults leaves only the default theme
func (s *ColorStore) ResetToDefaults() {
	s.pallets = []PalletEntry{NewPalletEntry(palette.DefaultColor)}
	s.save()
}

// ReplaceAll replaces the palette with fresh entries for elements,
// keeping at most MaxPallets
func (s *ColorStore) ReplaceAll(elements []palette.ColorElement) {
	if len(elements) > MaxPallets {
		elements = elements[:MaxPallets]
	}
	pallets := make([]PalletEntry, 0, len(elements))
	for _, e := range elements {
		pallets = append(pallets, NewPalletEntry(e))
	}
	s.pallets = pallets
	utils.Debug("Replaced palette with %d entries", len(pallets))
	s.save()
}

// SyncFromShareCode replaces the palette with the one encoded in code when
// code is non-empty and differs from the current share code
func (s *ColorStore) SyncFromShareCode(code string) bool {
	if code == "" || code == s.ShareCode() {
		return false
	}
	s.ReplaceAll(palette.ParseElementSet(code).Elements())
	return true
}
