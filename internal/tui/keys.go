package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/simidle/simidle/internal/tui/components"
)

// PaletteKeyMap is active on the palette screen
type PaletteKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Apply  key.Binding
	Edit   key.Binding
	Delete key.Binding
	Share  key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

func (k PaletteKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Edit, k.Delete, k.Share, k.Quit}
}

func (k PaletteKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Apply},
		{k.Edit, k.Delete, k.Reset},
		{k.Share, k.Quit},
	}
}

// EditKeyMap is active while editing the current theme
type EditKeyMap struct {
	Target  key.Binding
	Red     key.Binding
	Green   key.Binding
	Blue    key.Binding
	Inc     key.Binding
	Dec     key.Binding
	IncMore key.Binding
	DecMore key.Binding
	Commit  key.Binding
	Revert  key.Binding
	Back    key.Binding
}

func (k EditKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Target, k.Red, k.Green, k.Blue, k.Inc, k.Dec, k.Commit, k.Revert, k.Back}
}

func (k EditKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Target, k.Red, k.Green, k.Blue},
		{k.Inc, k.Dec, k.IncMore, k.DecMore},
		{k.Commit, k.Revert, k.Back},
	}
}

// ShareKeyMap is active on the share screen
type ShareKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Copy   key.Binding
	Post   key.Binding
	Paste  key.Binding
	File   key.Binding
	Back   key.Binding
}

func (k ShareKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Copy, k.Post, k.Paste, k.File, k.Back}
}

func (k ShareKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Copy, k.Post},
		{k.Paste, k.File, k.Back},
	}
}

// ReceiveKeyMap is active while placing received colours
type ReceiveKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Move   key.Binding
	Reset  key.Binding
	Save   key.Binding
	Back   key.Binding
}

func (k ReceiveKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Move, k.Reset, k.Save, k.Back}
}

func (k ReceiveKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Move, k.Reset},
		{k.Save, k.Back},
	}
}

// FilePickerKeyMap is active while choosing a code file
type FilePickerKeyMap struct {
	Select key.Binding
	Back   key.Binding
}

func (k FilePickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Back}
}

func (k FilePickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var PaletteKeys = PaletteKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Apply:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
	Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
	Share:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
	Reset:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset to default")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var EditKeys = EditKeyMap{
	Target:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "orb/space")),
	Red:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "red")),
	Green:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "green")),
	Blue:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "blue")),
	Inc:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "+1")),
	Dec:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "-1")),
	IncMore: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "+16")),
	DecMore: key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "-16")),
	Commit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	Revert:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "revert")),
	Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

var ShareKeys = ShareKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "select")),
	Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy code")),
	Post:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "post")),
	Paste:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "paste code")),
	File:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open file")),
	Back:   key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "back")),
}

var ReceiveKeys = ReceiveKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch list")),
	Move:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "move")),
	Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
	Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save palette")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard")),
}

var FilePickerKeys = FilePickerKeyMap{
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

var ConfirmKeys = components.ConfirmationKeyMap{
	Confirm: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "delete")),
	Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "keep")),
}
