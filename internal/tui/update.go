package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/simidle/simidle/internal/experience"
	"github.com/simidle/simidle/internal/palette"
	"github.com/simidle/simidle/internal/share"
	"github.com/simidle/simidle/internal/skill"
	"github.com/simidle/simidle/internal/tui/components"
	"github.com/simidle/simidle/internal/utils"
)

// Update handles messages and updates the model
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case bannerExpiredMsg:
		if msg.id == m.bannerID {
			m.banner = components.BannerNone
			m.bannerText = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case PaletteState:
			return m.updatePalette(msg)
		case EditState:
			return m.updateEdit(msg)
		case DeleteConfirmState:
			return m.updateDeleteConfirm(msg)
		case ShareState:
			return m.updateShare(msg)
		case ReceiveState:
			return m.updateReceive(msg)
		case FilePickerState:
			if key.Matches(msg, FilePickerKeys.Back) {
				m.state = ShareState
				return m, nil
			}
			return m.updateFilePicker(msg)
		}

	// Directory listings and other picker internals
	default:
		if m.state == FilePickerState {
			return m.updateFilePicker(msg)
		}
	}

	return m, nil
}

// dispatch hands a skill event to the navigator and enters the new skill
// when the current one changed
func (m *RootModel) dispatch(event skill.Event) tea.Cmd {
	if !m.nav.Dispatch(event) {
		return nil
	}
	return m.enterSkill()
}

// enterSkill switches to the current skill's screen. Entering the palette
// applies a share code handed off by another skill.
func (m *RootModel) enterSkill() tea.Cmd {
	sc, ok := m.registry.Lookup(m.nav.Current())
	if !ok {
		return nil
	}
	m.state = sc.state

	switch m.nav.Current() {
	case skill.Experience:
		m.cursor = 0
		if code := m.nav.Value(skill.HandOffKey); code != "" {
			m.nav.Dispatch(skill.StoreUpdateEvent{Key: skill.HandOffKey, Value: ""})
			if m.store.SyncFromShareCode(code) {
				return m.setBanner(components.BannerSuccess, fmt.Sprintf("Palette updated (%d colors)", m.store.Count()))
			}
		}
	case skill.Share:
		m.sharing = share.NewSharingSelectionState(m.store.Elements())
		m.shareCursor = 0
		m.importUI = m.importUI.ClearPasteResult()
	}
	return nil
}

// === Palette ===

func (m RootModel) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, PaletteKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, PaletteKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, PaletteKeys.Down):
		if m.cursor < m.store.Count()-1 {
			m.cursor++
		}

	case key.Matches(msg, PaletteKeys.Apply):
		if m.cursor > 0 && m.cursor < m.store.Count() {
			m.store.MoveToFirst(m.cursor)
			m.cursor = 0
			return m, m.setBanner(components.BannerSuccess, "Applied "+m.store.CurrentTheme().ColorCode())
		}

	case key.Matches(msg, PaletteKeys.Edit):
		m.session = experience.NewEditingSessionFromStore(m.store)
		m.editSpace = false
		m.state = EditState

	case key.Matches(msg, PaletteKeys.Delete):
		result, err := m.deletion.Handle(experience.LongTap{Index: m.cursor})
		if err != nil {
			return m, m.setBanner(components.BannerError, "Nothing to delete")
		}
		m.pendingDelete = result.Index
		m.state = DeleteConfirmState

	case key.Matches(msg, PaletteKeys.Reset):
		m.store.ResetToDefaults()
		m.cursor = 0
		return m, m.setBanner(components.BannerInfo, "Palette reset to default")

	case key.Matches(msg, PaletteKeys.Share):
		return m, m.dispatch(skill.NavigateEvent{To: skill.Share})
	}
	return m, nil
}

func (m RootModel) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ConfirmKeys.Confirm):
		m.state = PaletteState
		result, err := m.deletion.Handle(experience.DeleteConfirmed{Index: m.pendingDelete})
		if err != nil {
			return m, m.setBanner(components.BannerError, "Nothing to delete")
		}
		if m.cursor >= result.RemainingCount {
			m.cursor = max(result.RemainingCount-1, 0)
		}
		return m, m.setBanner(components.BannerInfo, fmt.Sprintf("Deleted (%d left)", result.RemainingCount))

	case key.Matches(msg, ConfirmKeys.Cancel):
		m.deletion.Handle(experience.DeleteCancel{})
		m.state = PaletteState
	}
	return m, nil
}

// === Edit ===

// target is the channel being edited
func (m *RootModel) target() *experience.EditingState {
	if m.editSpace {
		return &m.session.Space
	}
	return &m.session.Orb
}

func (m RootModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, EditKeys.Target):
		// Only one channel is selected at a time
		if t := m.target(); t.IsSelected() {
			t.ToggleComponent(t.Selection)
		}
		m.editSpace = !m.editSpace

	case key.Matches(msg, EditKeys.Red):
		m.target().ToggleComponent(palette.ComponentRed)
	case key.Matches(msg, EditKeys.Green):
		m.target().ToggleComponent(palette.ComponentGreen)
	case key.Matches(msg, EditKeys.Blue):
		m.target().ToggleComponent(palette.ComponentBlue)

	case key.Matches(msg, EditKeys.Inc):
		m.session.UpdateActiveValue(m.session.ActiveValue() + FineStep)
	case key.Matches(msg, EditKeys.Dec):
		m.session.UpdateActiveValue(m.session.ActiveValue() - FineStep)
	case key.Matches(msg, EditKeys.IncMore):
		m.session.UpdateActiveValue(m.session.ActiveValue() + CoarseStep)
	case key.Matches(msg, EditKeys.DecMore):
		m.session.UpdateActiveValue(m.session.ActiveValue() - CoarseStep)

	case key.Matches(msg, EditKeys.Revert):
		m.selection.ExecuteAction(experience.ActionReset, m.session)

	case key.Matches(msg, EditKeys.Back):
		m.selection.ExecuteAction(experience.ActionBack, m.session)
		m.state = PaletteState

	case key.Matches(msg, EditKeys.Commit):
		action := m.selection.DetermineAction(m.session)
		result := m.selection.ExecuteAction(action, m.session)
		switch result {
		case experience.ResultAlreadyExists:
			return m, m.setBanner(components.BannerWarning, "This color is already in the palette")
		case experience.ResultAdded:
			m.state, m.cursor = PaletteState, 0
			return m, m.setBanner(components.BannerSuccess, "Added to palette")
		case experience.ResultApplied:
			m.state, m.cursor = PaletteState, 0
			return m, m.setBanner(components.BannerSuccess, "Palette full, current colors replaced")
		default:
			m.state = PaletteState
		}
	}
	return m, nil
}

// === Share ===

// shareItems lists the share screen rows: available entries, then selected
func (m RootModel) shareItems() []palette.ColorElement {
	return append(m.sharing.Available(), m.sharing.Candidates()...)
}

// exportElements is the selection, or the whole palette when nothing is
// selected
func (m RootModel) exportElements() []palette.ColorElement {
	if selected := m.sharing.Candidates(); len(selected) > 0 {
		return selected
	}
	return m.store.Elements()
}

func (m RootModel) updateShare(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ShareKeys.Back):
		return m, m.dispatch(skill.BackEvent{})

	case key.Matches(msg, ShareKeys.Up):
		if m.shareCursor > 0 {
			m.shareCursor--
		}

	case key.Matches(msg, ShareKeys.Down):
		if m.shareCursor < len(m.shareItems())-1 {
			m.shareCursor++
		}

	case key.Matches(msg, ShareKeys.Toggle):
		items := m.shareItems()
		if m.shareCursor >= len(items) {
			return m, nil
		}
		if m.shareCursor < len(m.sharing.Available()) {
			m.sharing = m.sharing.Select(items[m.shareCursor])
		} else {
			m.sharing = m.sharing.Remove(items[m.shareCursor])
		}

	case key.Matches(msg, ShareKeys.Copy):
		elements := m.exportElements()
		m.writer.CopyColorCodes(elements)
		return m, m.setBanner(components.BannerInfo, fmt.Sprintf("Copied %d color codes", len(elements)))

	case key.Matches(msg, ShareKeys.Post):
		elements := m.exportElements()
		poster := m.poster
		post := func() tea.Msg {
			poster.ShareColorCodes(elements)
			return nil
		}
		return m, tea.Batch(post, m.setBanner(components.BannerInfo, "Opening share page"))

	case key.Matches(msg, ShareKeys.Paste):
		elements, err := m.reader.ReadColorCodes()
		return m.receiveIncoming(elements, err)

	case key.Matches(msg, ShareKeys.File):
		m.state = FilePickerState
		return m, m.filepicker.Init()
	}
	return m, nil
}

func (m RootModel) updateFilePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.filepicker, cmd = m.filepicker.Update(msg)

	if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
		utils.Debug("Importing codes from %s", path)
		m.state = ShareState
		elements, err := share.ReadCodesFile(path)
		return m.receiveIncoming(elements, err)
	}
	return m, cmd
}

// receiveIncoming records a paste, vets it against the palette and opens
// the receive screen for the accepted colours
func (m RootModel) receiveIncoming(elements []palette.ColorElement, err error) (tea.Model, tea.Cmd) {
	m.importUI = m.importUI.WithPasteResult(share.PasteResult{Elements: elements, Err: err})
	if content := m.importUI.Content(m.store.Count()); content.Kind == share.ContentError {
		return m, m.setBanner(components.BannerError, content.Message)
	}

	result := m.importer.Handle(share.ImportEvent{Existing: m.store.Elements(), Imported: elements})
	if !result.Accepted() {
		m.importUI = m.importUI.WithPasteResult(share.PasteResult{Elements: elements, Err: errors.New(result.Reason.Message())})
		return m, m.setBanner(components.BannerWarning, result.Reason.Message())
	}

	m.importUI = m.importUI.ClearPasteResult()
	m.received = result.Elements
	m.receive = share.NewReceivingSelectionState(m.store.Elements(), nil).WithColorCandidates(result.Elements)
	m.receiveCursor = 0
	m.receiveOnCandidates = true
	m.state = ReceiveState
	return m, nil
}

// === Receive ===

func (m RootModel) receiveList() []palette.ColorElement {
	if m.receiveOnCandidates {
		return m.receive.Candidates()
	}
	return m.receive.Palette()
}

func (m RootModel) updateReceive(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ReceiveKeys.Back):
		m.state = ShareState

	case key.Matches(msg, ReceiveKeys.Switch):
		m.receiveOnCandidates = !m.receiveOnCandidates
		m.receiveCursor = 0

	case key.Matches(msg, ReceiveKeys.Up):
		if m.receiveCursor > 0 {
			m.receiveCursor--
		}

	case key.Matches(msg, ReceiveKeys.Down):
		if m.receiveCursor < len(m.receiveList())-1 {
			m.receiveCursor++
		}

	case key.Matches(msg, ReceiveKeys.Reset):
		m.receive = m.receive.Reset().WithColorCandidates(m.received)
		m.receiveCursor = 0

	case key.Matches(msg, ReceiveKeys.Move):
		var cmd tea.Cmd
		if m.receiveOnCandidates {
			if m.receive.IsPaletteFull() {
				cmd = m.setBanner(components.BannerWarning, "Palette is full")
			} else {
				m.receive = m.receive.MoveCandidateToPalette(m.receiveCursor)
			}
		} else {
			next, v := m.receiving.MovePaletteToCandidate(m.receive, m.receiveCursor)
			if v.Err == share.MovementProtectedElement {
				cmd = m.setBanner(components.BannerWarning, "Your own colors stay in the palette")
			}
			m.receive = next
		}
		if n := len(m.receiveList()); m.receiveCursor >= n {
			m.receiveCursor = max(n-1, 0)
		}
		return m, cmd

	case key.Matches(msg, ReceiveKeys.Save):
		code := palette.NewElementSet(m.receive.Palette()).String()
		m.nav.Dispatch(skill.StoreUpdateEvent{Key: skill.HandOffKey, Value: code})
		return m, m.dispatch(skill.BackEvent{})
	}
	return m, nil
}
