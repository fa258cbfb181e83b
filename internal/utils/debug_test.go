package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogsDir string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "simidle-debug-test-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}
	testLogsDir = dir
	ConfigureDebug(dir)

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestDebug_CreatesLogFile(t *testing.T) {
	Debug("palette loaded with %d entries", 4)
	SyncDebug()

	entries, err := os.ReadDir(testLogsDir)
	require.NoError(t, err)

	var found string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "debug-") && strings.HasSuffix(e.Name(), ".log") {
			found = e.Name()
		}
	}
	require.NotEmpty(t, found, "expected a debug-*.log file in %s", testLogsDir)

	data, err := os.ReadFile(filepath.Join(testLogsDir, found))
	require.NoError(t, err)
	assert.Contains(t, string(data), "palette loaded with 4 entries")
}

func TestDebug_FormatsWithoutPanicking(t *testing.T) {
	assert.NotPanics(t, func() {
		Debug("")
		Debug("literal %% sign")
		Debug("int: %d, float: %f, string: %s, bool: %t", 42, 3.14, "hello", true)
		Debug("missing arg %s")
	})
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	ConfigureDebug(dir)
	defer ConfigureDebug(testLogsDir)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("debug-%s.log", base.Add(time.Duration(i)*time.Hour).Format("20060102-150405"))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0644))

	CleanupLogs(3)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, 4)
	assert.Contains(t, names, "notes.txt")
	assert.Contains(t, names, fmt.Sprintf("debug-%s.log", base.Add(7*time.Hour).Format("20060102-150405")))
	assert.NotContains(t, names, fmt.Sprintf("debug-%s.log", base.Format("20060102-150405")))
}
