package cmd

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/simidle/simidle/internal/config"
	"github.com/simidle/simidle/internal/share"
	"github.com/simidle/simidle/internal/skill"
	"github.com/simidle/simidle/internal/store"
	"github.com/simidle/simidle/internal/store/sqlite"
	"github.com/simidle/simidle/internal/tui"
	"github.com/simidle/simidle/internal/utils"
)

// Version information - set via ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// keepLogs is how many debug logs survive a start
const keepLogs = 10

// rootCmd opens the interactive palette editor
var rootCmd = &cobra.Command{
	Use:     "simidle",
	Short:   "Edit, save and share SimIdle space colors",
	Long:    `SimIdle keeps up to five orb/space color pairs and exchanges them as compact hex codes.`,
	Version: Version,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initializeGlobalState()

		screen, _ := cmd.Flags().GetString("open")
		if _, ok := skill.FromID(screen); screen != "" && !ok {
			exitOnError(fmt.Errorf("unknown screen %q", screen))
		}
		exitOnError(runEditor(loadSettings(), screen))
	},
}

// runEditor holds the lock and the palette for the lifetime of the TUI
func runEditor(settings *config.Settings, startSkill string) error {
	isMaster, err := AcquireLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !isMaster {
		return errors.New("SimIdle is already running. Use 'simidle import <code>' to send colors to it")
	}
	defer ReleaseLock()

	s, closeStore, err := openStore(false)
	if err != nil {
		return fmt.Errorf("failed to open palette: %w", err)
	}
	defer closeStore()

	return startTUI(s, settings, startSkill)
}

// startTUI runs the palette editor until the user quits
func startTUI(s *store.ColorStore, settings *config.Settings, startSkill string) error {
	m := tui.NewRootModel(s, tui.Options{
		Poster:            share.NewPoster(settings.Share.PostBaseURL, share.BrowserOpener{}),
		MaxImportElements: settings.General.MaxImportElements,
		StartSkill:        startSkill,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	defer utils.SyncDebug()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate("SimIdle version {{.Version}}\n")
	rootCmd.Flags().String("open", "", "Screen to open on start (experience or share)")
}

// initializeGlobalState creates the directories and configures logging
func initializeGlobalState() {
	if err := config.EnsureDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	utils.ConfigureDebug(config.GetLogsDir())
	utils.CleanupLogs(keepLogs)
}

// loadSettings falls back to defaults when settings.json is unreadable
func loadSettings() *config.Settings {
	settings, err := config.LoadSettings()
	if err != nil {
		utils.Debug("Using default settings: %v", err)
		return config.DefaultSettings()
	}
	return settings
}

// databasePath is the SQLite file holding the palette
func databasePath() string {
	return filepath.Join(config.GetStateDir(), "simidle.db")
}

// errBusy is returned to commands that change the palette while another
// instance owns it
var errBusy = errors.New("SimIdle is already running. Close it before changing the palette")

// openStore loads the palette from the SQLite preferences database.
// A read-only store never writes, not even the preset seed.
// The returned func closes the database.
func openStore(readOnly bool) (*store.ColorStore, func(), error) {
	prefs, err := sqlite.Open(databasePath())
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := prefs.Close(); err != nil {
			utils.Debug("Failed to close palette database: %v", err)
		}
	}

	load := store.New
	if readOnly {
		load = store.NewReadOnly
	}
	s, err := load(prefs)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return s, closeFn, nil
}

// withStore opens the palette read-only for fn
func withStore(fn func(s *store.ColorStore) error) error {
	s, closeStore, err := openStore(true)
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(s)
}

// withExclusiveStore opens the palette for a command that changes it.
// It fails with errBusy while the editor or serve mode owns the palette.
func withExclusiveStore(fn func(s *store.ColorStore) error) error {
	isMaster, err := AcquireLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !isMaster {
		return errBusy
	}
	defer ReleaseLock()

	s, closeStore, err := openStore(false)
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(s)
}

// exitOnError reports err the way every command does
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// findAvailablePort tries ports starting from 'start' until one is available
func findAvailablePort(start int) (int, net.Listener) {
	for port := start; port < start+100; port++ {
		ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err == nil {
			return port, ln
		}
	}
	return 0, nil
}

// portFilePath is where a running serve instance advertises its port
func portFilePath() string {
	return filepath.Join(config.GetSimIdleDir(), "port")
}

// saveActivePort writes the active port for CLI discovery
func saveActivePort(port int) {
	if err := os.WriteFile(portFilePath(), []byte(fmt.Sprintf("%d", port)), 0644); err != nil {
		utils.Debug("Failed to write port file: %v", err)
	}
	utils.Debug("HTTP server listening on port %d", port)
}

// removeActivePort cleans up the port file on exit
func removeActivePort() {
	os.Remove(portFilePath())
}
