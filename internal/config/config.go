// Package config provides configuration loading and management.
package config

import (
	"strconv"
	"time"

	"github.com/opmodel/sire/internal/templates"
)

// AuthorConfig identifies the author written into generated projects.
type AuthorConfig struct {
	// Name fills {real_name}. Env: SIRE_AUTHOR_NAME
	Name string `yaml:"name,omitempty" mapstructure:"name"`

	// Email fills {email}. Env: SIRE_AUTHOR_EMAIL
	Email string `yaml:"email,omitempty" mapstructure:"email"`

	// GithubUsername fills {github_username}. Env: SIRE_AUTHOR_GITHUB_USERNAME
	GithubUsername string `yaml:"github_username,omitempty" mapstructure:"github_username"`
}

// FeaturesConfig sets the default of each feature flag. Nil means enabled.
type FeaturesConfig struct {
	Mkdocs     *bool `yaml:"mkdocs,omitempty" mapstructure:"mkdocs"`
	Virtualenv *bool `yaml:"virtualenv,omitempty" mapstructure:"virtualenv"`
	Git        *bool `yaml:"git,omitempty" mapstructure:"git"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the sire configuration file.
type Config struct {
	Author AuthorConfig `yaml:"author" mapstructure:"author"`

	// Description fills {description} when no other value is given.
	Description string `yaml:"description,omitempty" mapstructure:"description"`

	// Templates is a directory holding (or named) templates. Env: SIRE_TEMPLATES
	Templates string `yaml:"templates,omitempty" mapstructure:"templates"`

	// Python is the interpreter used for virtualenvs. Env: SIRE_PYTHON
	Python string `yaml:"python,omitempty" mapstructure:"python"`

	// Exclude is a default comma-separated exclusion list. Env: SIRE_EXCLUDE
	Exclude string `yaml:"exclude,omitempty" mapstructure:"exclude"`

	Features FeaturesConfig `yaml:"features" mapstructure:"features"`

	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `sire config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Python: "python3",
		Features: FeaturesConfig{
			Mkdocs:     boolPtr(true),
			Virtualenv: boolPtr(true),
			Git:        boolPtr(true),
		},
		Log: LogConfig{Timestamps: boolPtr(true)},
	}
}

// Values returns the non-empty substitution values the config provides.
// The year is taken from now.
func (c *Config) Values(now time.Time) templates.Values {
	values := templates.Values{"year": strconv.Itoa(now.Year())}
	for k, v := range map[string]string{
		"real_name":       c.Author.Name,
		"email":           c.Author.Email,
		"github_username": c.Author.GithubUsername,
		"description":     c.Description,
	} {
		if v != "" {
			values[k] = v
		}
	}
	return values
}

// Enabled reports a feature default; nil counts as enabled.
func Enabled(b *bool) bool {
	return b == nil || *b
}

func boolPtr(b bool) *bool {
	return &b
}
