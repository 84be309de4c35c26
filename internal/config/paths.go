package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// AppName names the per-user config directory.
const AppName = "vkhello"

// Dir returns the vkhello config directory under the user config base
// ($XDG_CONFIG_HOME on Linux, Application Support on macOS, %AppData% on
// Windows), falling back to HOME.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", errors.New("cannot determine config directory")
		}
		base = home
	}
	return filepath.Join(base, AppName), nil
}

// DefaultPath returns the path of config.yaml inside Dir.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
