package tui

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/simidle/simidle/internal/clipboard"
	"github.com/simidle/simidle/internal/experience"
	"github.com/simidle/simidle/internal/palette"
	"github.com/simidle/simidle/internal/share"
	"github.com/simidle/simidle/internal/skill"
	"github.com/simidle/simidle/internal/store"
	"github.com/simidle/simidle/internal/tui/components"
)

type UIState int // Which screen or overlay has the keyboard

const (
	PaletteState       UIState = iota // Saved colour pairs (Experience skill)
	EditState                         // Editing the current theme
	DeleteConfirmState                // Confirming a palette deletion
	ShareState                        // Exporting and importing codes (Share skill)
	ReceiveState                      // Placing received colours
	FilePickerState                   // Choosing a code file to import
)

// screen is the entry point of a skill
type screen struct {
	title string
	state UIState
}

var screens = [...]screen{
	skill.Experience: {title: "Palette", state: PaletteState},
	skill.Share:      {title: "Share", state: ShareState},
}

// Options wires the model's external collaborators
type Options struct {
	Board             clipboard.Board
	Poster            *share.Poster
	MaxImportElements int
	StartDir          string // Where the file picker opens
	StartSkill        string // Skill identifier to open instead of the palette
}

type RootModel struct {
	store    *store.ColorStore
	nav      *skill.Navigator
	registry *skill.Registry[screen]

	selection experience.SelectionLogic
	deletion  experience.DeletionLogic
	importer  share.ImportLogic
	receiving share.ReceivingSelectionLogic

	reader *clipboard.Reader
	writer *clipboard.Writer
	poster *share.Poster

	width  int
	height int
	state  UIState

	// Palette screen
	cursor        int
	pendingDelete int

	// Edit screen
	session   *experience.EditingSession
	editSpace bool // Editing the space colour instead of the orb

	// Share screen
	sharing     share.SharingSelectionState
	shareCursor int
	importUI    share.ImportUIState

	// Receive screen
	receive             share.ReceivingSelectionState
	received            []palette.ColorElement
	receiveCursor       int
	receiveOnCandidates bool

	filepicker filepicker.Model
	help       help.Model

	banner     components.BannerKind
	bannerText string
	bannerID   int
}

// bannerExpiredMsg clears the banner it was scheduled for
type bannerExpiredMsg struct {
	id int
}

// NewRootModel creates the model over an already loaded store
func NewRootModel(s *store.ColorStore, opts Options) RootModel {
	if opts.Board == nil {
		opts.Board = clipboard.SystemBoard{}
	}
	if opts.Poster == nil {
		opts.Poster = share.NewPoster("", share.BrowserOpener{})
	}
	if opts.StartDir == "" {
		opts.StartDir, _ = os.Getwd()
	}

	fp := filepicker.New()
	fp.CurrentDirectory = opts.StartDir
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.ShowHidden = false
	fp.ShowSize = true
	fp.SetHeight(FilePickerHeight)

	m := RootModel{
		store:      s,
		nav:        skill.NewNavigator(),
		registry:   skill.NewRegistry(screens),
		selection:  experience.NewSelectionLogic(s),
		deletion:   experience.NewDeletionLogic(s),
		importer:   share.NewImportLogic(opts.MaxImportElements),
		reader:     clipboard.NewReader(opts.Board),
		writer:     clipboard.NewWriter(opts.Board),
		poster:     opts.Poster,
		filepicker: fp,
		help:       help.New(),
	}
	if opts.StartSkill != "" {
		m.nav.NavigateTo(opts.StartSkill)
	}
	m.enterSkill()
	return m
}

func (m RootModel) Init() tea.Cmd {
	return nil
}

// State returns the active screen
func (m RootModel) State() UIState {
	return m.state
}

// Banner returns the current status line
func (m RootModel) Banner() (components.BannerKind, string) {
	return m.banner, m.bannerText
}

// setBanner shows a message and schedules its removal
func (m *RootModel) setBanner(kind components.BannerKind, text string) tea.Cmd {
	m.bannerID++
	m.banner = kind
	m.bannerText = text
	return expireBanner(m.bannerID)
}

func expireBanner(id int) tea.Cmd {
	return tea.Tick(BannerDuration, func(time.Time) tea.Msg {
		return bannerExpiredMsg{id: id}
	})
}
