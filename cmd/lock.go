package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/simidle/simidle/internal/config"
)

// InstanceLock wraps the file lock held by the interactive and serve modes
type InstanceLock struct {
	flock *flock.Flock
	path  string
}

var instanceLock *InstanceLock

// lockPath is where the single-instance lock lives
func lockPath() string {
	return filepath.Join(config.GetSimIdleDir(), "simidle.lock")
}

// AcquireLock attempts to take the single-instance lock.
// It returns false without error when another instance owns the palette.
func AcquireLock() (bool, error) {
	if err := config.EnsureDirs(); err != nil {
		return false, fmt.Errorf("failed to ensure config dirs: %w", err)
	}

	path := lockPath()
	fileLock := flock.New(path)

	locked, err := fileLock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock: %w", err)
	}
	if !locked {
		return false, nil
	}

	instanceLock = &InstanceLock{
		flock: fileLock,
		path:  path,
	}
	return true, nil
}

// ReleaseLock releases the lock if this process holds it
func ReleaseLock() error {
	if instanceLock == nil || instanceLock.flock == nil {
		return nil
	}
	err := instanceLock.flock.Unlock()
	instanceLock = nil
	return err
}
