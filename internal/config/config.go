package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const appDirName = "simidle"

// GetSimIdleDir returns the root configuration directory.
// XDG_CONFIG_HOME wins over the platform default.
func GetSimIdleDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "."+appDirName)
}

// GetStateDir returns the directory holding the palette database
func GetStateDir() string {
	return filepath.Join(GetSimIdleDir(), "state")
}

// GetLogsDir returns the directory holding debug logs
func GetLogsDir() string {
	return filepath.Join(GetSimIdleDir(), "logs")
}

// GetSettingsPath returns the settings.json location
func GetSettingsPath() string {
	return filepath.Join(GetSimIdleDir(), "settings.json")
}

// EnsureDirs creates the config, state and logs directories
func EnsureDirs() error {
	for _, dir := range []string{GetSimIdleDir(), GetStateDir(), GetLogsDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// Settings holds user preferences
type Settings struct {
	General GeneralSettings `json:"general"`
	Share   ShareSettings   `json:"share"`
	Server  ServerSettings  `json:"server"`
}

// GeneralSettings covers palette behaviour
type GeneralSettings struct {
	MaxImportElements int `json:"max_import_elements"`
}

// ShareSettings covers social posting and fetching shared codes
type ShareSettings struct {
	PostBaseURL  string   `json:"post_base_url"`
	FetchTimeout Duration `json:"fetch_timeout"`
}

// ServerSettings covers the local hand-off server
type ServerSettings struct {
	Port int `json:"port"` // 0 picks the first free port from 8080
}

// Duration is a time.Duration stored as a string such as "10s"
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// DefaultSettings returns the built-in settings
func DefaultSettings() *Settings {
	return &Settings{
		General: GeneralSettings{
			MaxImportElements: 5,
		},
		Share: ShareSettings{
			PostBaseURL:  "https://twitter.com/intent/tweet",
			FetchTimeout: Duration(10 * time.Second),
		},
		Server: ServerSettings{
			Port: 0,
		},
	}
}

// LoadSettings reads settings.json. A missing file yields the defaults;
// fields absent from the file keep their default values.
func LoadSettings() (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(GetSettingsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if settings.General.MaxImportElements <= 0 {
		settings.General.MaxImportElements = DefaultSettings().General.MaxImportElements
	}

	return settings, nil
}

// SaveSettings writes settings.json
func SaveSettings(settings *Settings) error {
	if err := EnsureDirs(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(GetSettingsPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
