package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// DefaultConfigFile is $XDG_CONFIG_HOME/sire/config.yaml.
func DefaultConfigFile() string {
	return filepath.Join(xdg.ConfigHome, "sire", "config.yaml")
}

// GetConfigFile returns SIRE_CONFIG when set, else DefaultConfigFile.
func GetConfigFile() string {
	if p := os.Getenv("SIRE_CONFIG"); p != "" {
		return p
	}
	return DefaultConfigFile()
}

// ExpandPath replaces a leading "~" or "~/" with the home directory.
// "~user" forms are returned unchanged.
func ExpandPath(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && rest[0] != '/' && rest[0] != filepath.Separator) {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, rest), nil
}
