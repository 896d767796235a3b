package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	oerrors "github.com/opmodel/sire/internal/errors"
)

// Environment variable prefix for sire configuration.
const envPrefix = "SIRE"

// keys are bound to SIRE_<KEY> with dots replaced by underscores.
var keys = []string{
	"author.name",
	"author.email",
	"author.github_username",
	"description",
	"templates",
	"python",
	"exclude",
	"features.mkdocs",
	"features.virtualenv",
	"features.git",
	"log.timestamps",
}

// Loader merges the config file with SIRE_* environment variables.
type Loader struct {
	v *viper.Viper

	// file holds the config file alone, without environment overrides.
	file *viper.Viper

	found bool
}

// NewLoader creates a loader bound to the SIRE_ environment.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	return &Loader{v: v, file: viper.New()}
}

// Load reads configFile (GetConfigFile when empty) and applies environment
// overrides. A missing file yields the environment and zero values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		configFile = GetConfigFile()
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	err = l.v.ReadInConfig()
	l.found = err == nil
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, &oerrors.DetailError{
				Type:     "configuration error",
				Message:  "config file could not be read",
				Location: expandedPath,
				Hint:     "Fix the YAML or regenerate it with 'sire config init --force'.",
				Cause:    err,
			}
		}
	}

	if l.found {
		l.file.SetConfigFile(expandedPath)
		l.file.SetConfigType("yaml")
		_ = l.file.ReadInConfig()
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// FileValue returns the string value of key as written in the config file,
// ignoring environment overrides. Empty when unset or before Load.
func (l *Loader) FileValue(key string) string {
	return l.file.GetString(key)
}

// Found reports whether the last Load read a config file.
func (l *Loader) Found() bool {
	return l.found
}

const configHeader = `# sire configuration
# Environment variables (SIRE_<KEY>, dots as underscores) override these values.
`

// Write saves cfg as YAML at path, creating parent directories. An existing
// file is only replaced when force is set.
func Write(cfg *Config, path string, force bool) error {
	expandedPath, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	if !force {
		if _, err := os.Stat(expandedPath); err == nil {
			return &oerrors.DetailError{
				Type:     "validation failed",
				Message:  "config file already exists",
				Location: expandedPath,
				Hint:     "Use --force to overwrite.",
				Cause:    oerrors.ErrValidation,
			}
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(expandedPath, append([]byte(configHeader), data...), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
