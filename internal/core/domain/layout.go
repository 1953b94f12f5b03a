package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the name used for the config directory.
	AppName = "pkgsweep"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.yaml"
)

// DefaultConfigPath returns $XDG_CONFIG_HOME/pkgsweep/config.yaml, falling
// back to ~/.config when XDG_CONFIG_HOME is unset. It returns an empty
// string when neither can be determined.
func DefaultConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName, ConfigFileName)
}
