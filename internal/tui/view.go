package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/simidle/simidle/internal/palette"
	"github.com/simidle/simidle/internal/share"
	"github.com/simidle/simidle/internal/skill"
	"github.com/simidle/simidle/internal/tui/colors"
	"github.com/simidle/simidle/internal/tui/components"
)

var (
	TitleStyle = lipgloss.NewStyle().Foreground(colors.NeonPink).Bold(true)
	DimStyle   = lipgloss.NewStyle().Foreground(colors.LightGray)
	CountStyle = lipgloss.NewStyle().Foreground(colors.NeonCyan)

	activeTabStyle   = lipgloss.NewStyle().Foreground(colors.NeonPink).Bold(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(colors.LightGray).Padding(0, 1)
)

func (m RootModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	// === Overlays ===

	switch m.state {
	case DeleteConfirmState:
		return m.viewDeleteConfirm()
	case FilePickerState:
		modal := components.NewFilePickerModal("Import Code File", m.filepicker, m.help, FilePickerKeys, colors.NeonPink)
		return modal.RenderCentered(m.width, m.height)
	}

	// === Screens ===

	var body string
	switch m.state {
	case EditState:
		body = m.viewEdit()
	case ShareState:
		body = m.viewShare()
	case ReceiveState:
		body = m.viewReceive()
	default:
		body = m.viewPalette()
	}

	banner := components.RenderBanner(m.banner, m.bannerText)
	content := lipgloss.JoinVertical(lipgloss.Left, m.viewTabs(), body, banner)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// viewTabs shows the skills with the current one highlighted
func (m RootModel) viewTabs() string {
	tabs := make([]components.Tab, 0, skill.IDCount)
	for _, id := range skill.All() {
		sc, _ := m.registry.Lookup(id)
		count := -1
		if id == skill.Experience {
			count = m.store.Count()
		}
		tabs = append(tabs, components.Tab{Label: sc.title, Count: count})
	}
	return components.RenderTabBar(tabs, int(m.nav.Current()), activeTabStyle, inactiveTabStyle)
}

// renderRows draws elements as swatches with a cursor marker
func renderRows(elements []palette.ColorElement, cursor int, focused bool) []string {
	rows := make([]string, 0, len(elements))
	for i, e := range elements {
		prefix := "  "
		if focused && i == cursor {
			prefix = TitleStyle.Render("▌ ")
		}
		rows = append(rows, prefix+components.RenderSwatch(e, SwatchWidth))
	}
	return rows
}

func (m RootModel) viewPalette() string {
	elements := m.store.Elements()
	rows := renderRows(elements, m.cursor, true)
	if len(rows) == 0 {
		rows = append(rows, DimStyle.Render("  No saved colors. Press e to create one."))
	}
	// Keep the box height stable as entries come and go
	for len(rows) < m.store.MaxPallets() {
		rows = append(rows, "")
	}

	current := m.store.CurrentTheme()
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		components.RenderOrb(current), " ",
		DimStyle.Render("Current "), CountStyle.Render(current.ColorCode()),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		strings.Join(rows, "\n"),
		"",
		m.help.View(PaletteKeys),
	)

	right := CountStyle.Render(fmt.Sprintf(" %d/%d ", m.store.Count(), m.store.MaxPallets()))
	return components.RenderBtopBox(TitleStyle.Render(" Palette "), right,
		lipgloss.NewStyle().Padding(0, 1).Render(content), ScreenWidth, m.store.MaxPallets()+8, colors.NeonPink)
}

func (m RootModel) viewDeleteConfirm() string {
	detail := ""
	if elements := m.store.Elements(); m.pendingDelete >= 0 && m.pendingDelete < len(elements) {
		detail = components.RenderSwatch(elements[m.pendingDelete], PopupWidth-10)
	}
	modal := components.NewConfirmationModal(
		"Delete Color",
		"Remove this color from the palette?",
		detail,
		ConfirmKeys,
		m.help,
		components.DangerBorder,
	)
	return modal.RenderCentered(m.width, m.height)
}

func (m RootModel) viewEdit() string {
	s := m.session
	element := s.CreateElement()

	targetStyle := func(active bool) lipgloss.Style {
		if active {
			return TitleStyle
		}
		return DimStyle
	}

	orb := lipgloss.JoinVertical(lipgloss.Left,
		targetStyle(!m.editSpace).Render("Orb"),
		components.RenderHexBlock(s.Orb.Code, HexBlockWidth),
	)
	space := lipgloss.JoinVertical(lipgloss.Left,
		targetStyle(m.editSpace).Render("Space"),
		components.RenderHexBlock(s.Space.Code, HexBlockWidth),
	)

	t := m.target()
	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, orb, "  ", space, "  ", components.RenderOrb(element)),
		"",
		renderChannels(t.Code, t.Selection),
		"",
		DimStyle.Render("Enter will "+m.selection.DetermineAction(s).String()),
		"",
		m.help.View(EditKeys),
	)

	return components.RenderBtopBox(TitleStyle.Render(" Edit "), "",
		lipgloss.NewStyle().Padding(0, 1).Render(content), ScreenWidth, 16, colors.NeonCyan)
}

func (m RootModel) viewShare() string {
	available := m.sharing.Available()
	items := m.shareItems()

	rows := renderRows(items, m.shareCursor, true)
	for i := range rows {
		if i >= len(available) {
			rows[i] += CountStyle.Render(" ✔")
		}
	}
	if len(rows) == 0 {
		rows = append(rows, DimStyle.Render("  Palette is empty"))
	}

	code := palette.ColorCodesString(m.exportElements())
	if code == "" {
		code = "-"
	}

	importLine := DimStyle.Render("Paste a code with v, or open a file with o")
	if content := m.importUI.Content(m.store.Count()); content.Kind == share.ContentError {
		importLine = components.RenderBanner(components.BannerError, content.Message)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		DimStyle.Render("Select colors to share (none = whole palette)"),
		"",
		strings.Join(rows, "\n"),
		"",
		DimStyle.Render("Code ")+CountStyle.Render(code),
		"",
		importLine,
		"",
		m.help.View(ShareKeys),
	)

	right := CountStyle.Render(fmt.Sprintf(" %d selected ", len(m.sharing.Candidates())))
	return components.RenderBtopBox(TitleStyle.Render(" Share "), right,
		lipgloss.NewStyle().Padding(0, 1).Render(content), ScreenWidth, len(items)+14, colors.NeonPurple)
}

func (m RootModel) viewReceive() string {
	pal := m.receive.Palette()
	candidates := m.receive.Candidates()
	available := m.receive.AvailableElements()

	palRows := renderRows(pal, m.receiveCursor, !m.receiveOnCandidates)
	for i, e := range pal {
		if !m.receiving.CanMovePaletteElement(e, available) {
			palRows[i] += DimStyle.Render(" (yours)")
		}
	}
	candRows := renderRows(candidates, m.receiveCursor, m.receiveOnCandidates)
	if len(candRows) == 0 {
		candRows = append(candRows, DimStyle.Render("  No colors left"))
	}

	heading := func(label string, focused bool, n, limit int) string {
		style := DimStyle
		if focused {
			style = TitleStyle
		}
		return style.Render(fmt.Sprintf("%s %d/%d", label, n, limit))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		heading("Palette", !m.receiveOnCandidates, len(pal), share.MaxPaletteElements),
		strings.Join(palRows, "\n"),
		"",
		heading("Received", m.receiveOnCandidates, len(candidates), share.MaxCandidateElements),
		strings.Join(candRows, "\n"),
		"",
		m.help.View(ReceiveKeys),
	)

	return components.RenderBtopBox(TitleStyle.Render(" Receive "), "",
		lipgloss.NewStyle().Padding(0, 1).Render(content), ScreenWidth, len(pal)+len(candRows)+9, colors.NeonCyan)
}
