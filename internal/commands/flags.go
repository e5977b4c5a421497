package commands

import (
	"os"
	"path/filepath"
	"runtime"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tinystore", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/tinystore/tinystore.log
// On Linux: $XDG_STATE_HOME/tinystore/tinystore.log
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "tinystore", "tinystore.log")
	}

	home, _ := os.UserHomeDir()
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "tinystore", "tinystore.log")
	}
	return filepath.Join(home, ".local", "state", "tinystore", "tinystore.log")
}
