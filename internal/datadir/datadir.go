// Package datadir resolves and maintains the per-user application data tree.
package datadir

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// PluginsDir holds installed plugin payloads
	PluginsDir = "plugins"
	// ProfilesDir holds user-created launch profiles
	ProfilesDir = "profiles"
	// LogsDir holds application and setup logs
	LogsDir = "logs"

	configFileName = "admin.config"
)

var defaultRoot = ""

func init() {
	switch runtime.GOOS {
	case "windows":
		defaultRoot = filepath.Join(os.Getenv("LOCALAPPDATA"), "TechDeck")
	case "darwin":
		defaultRoot = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "TechDeck")
	default:
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			dataHome = filepath.Join(os.Getenv("HOME"), ".local", "share")
		}
		defaultRoot = filepath.Join(dataHome, "techdeck")
	}
}

// DefaultRoot returns the per-user data root for the current platform.
func DefaultRoot() string {
	return defaultRoot
}

// ConfigFile returns the admin config path inside a data root.
func ConfigFile(root string) string {
	return filepath.Join(root, configFileName)
}

// LogFile returns the setup log path inside a data root.
func LogFile(root string) string {
	return filepath.Join(root, LogsDir, "setup.log")
}

// EnsureTree creates the data root and its plugins, profiles and logs
// subdirectories with full access for the current user. Pre-existing
// directories are left untouched. The first creation failure aborts, so a
// partial tree is never reported as success.
func EnsureTree(root string) error {
	dirs := []string{
		root,
		filepath.Join(root, PluginsDir),
		filepath.Join(root, ProfilesDir),
		filepath.Join(root, LogsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("create data directory %s: %w", dir, err)
		}
	}

	return nil
}
