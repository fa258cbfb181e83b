package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/simidle/simidle/internal/config"
)

var (
	debugMu     sync.Mutex
	debugOnce   sync.Once
	debugDir    string
	debugLogger *zap.SugaredLogger
)

// ConfigureDebug sets the directory debug logs are written to.
// It must be called before the first Debug call to take effect.
func ConfigureDebug(logsDir string) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugDir = logsDir
}

// Debug writes a formatted message to the session debug log.
// Logging silently does nothing if the log file cannot be opened.
func Debug(format string, args ...any) {
	debugOnce.Do(openDebugLog)
	if debugLogger == nil {
		return
	}
	debugLogger.Debugf(format, args...)
}

// SyncDebug flushes buffered log entries
func SyncDebug() {
	if debugLogger != nil {
		_ = debugLogger.Sync()
	}
}

func openDebugLog() {
	debugMu.Lock()
	dir := debugDir
	debugMu.Unlock()

	if dir == "" {
		dir = config.GetLogsDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("debug-%s.log", time.Now().Format("20060102-150405")))

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return
	}
	debugLogger = logger.Sugar()
}

// CleanupLogs removes all but the newest keep debug logs
func CleanupLogs(keep int) {
	debugMu.Lock()
	dir := debugDir
	debugMu.Unlock()
	if dir == "" {
		dir = config.GetLogsDir()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var logs []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, "debug-") && strings.HasSuffix(name, ".log") {
			logs = append(logs, name)
		}
	}
	if len(logs) <= keep {
		return
	}

	// Timestamped names sort chronologically
	sort.Strings(logs)
	for _, name := range logs[:len(logs)-keep] {
		_ = os.Remove(filepath.Join(dir, name))
	}
}
