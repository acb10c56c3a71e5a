package appdirs

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "msgx"

// Dirs holds the per-user locations msgx reads from
type Dirs struct {
	ConfigDir  string
	ConfigPath string
}

// New resolves XDG-compliant directories for the current user
func New() (*Dirs, error) {
	configDir, err := configDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", err)
	}

	return &Dirs{
		ConfigDir:  configDir,
		ConfigPath: filepath.Join(configDir, "config.yaml"),
	}, nil
}

// configDir follows the XDG Base Directory specification on Unix and
// uses AppData on Windows
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Fall back to ~/.config/msgx (Unix-like systems)
	return filepath.Join(homeDir, ".config", appName), nil
}

// Exists checks if the config directory has been created
func (d *Dirs) Exists() bool {
	info, err := os.Stat(d.ConfigDir)
	if err != nil {
		return false
	}
	return info.IsDir()
}
