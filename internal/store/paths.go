package store

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// StateDir is where ghostconfig keeps its own local state (preferences).
func StateDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.ghostconfig).
	if v := strings.TrimSpace(os.Getenv("GHOSTCONFIG_STATE_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ghostconfig"), nil
}

// DefaultGhosttyConfigPath resolves the Ghostty config file:
// the OS-specific location if it exists, then $XDG_CONFIG_HOME, then ~/.config.
func DefaultGhosttyConfigPath() string {
	if p := primaryGhosttyConfigPath(); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "ghostty", "config")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ghostty", "config")
}

func primaryGhosttyConfigPath() string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "com.mitchellh.ghostty", "config")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "ghostty", "config")
		}
	}
	return ""
}
