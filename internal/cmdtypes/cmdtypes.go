// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and internal/cmd/config.
package cmdtypes

import (
	"github.com/opmodel/sire/internal/config"
	oerrors "github.com/opmodel/sire/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded configuration. Never nil after startup.
	Config *config.Config

	// Loader is the loader that produced Config, used to tell file values
	// from environment overrides.
	Loader *config.Loader

	// ConfigPath is the resolved --config path with its source.
	ConfigPath config.ResolvedValue

	Verbose bool
}

// FileValue returns key as written in the config file, or "" without a loader.
func (g *GlobalConfig) FileValue(key string) string {
	if g == nil || g.Loader == nil {
		return ""
	}
	return g.Loader.FileValue(key)
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess            = oerrors.ExitSuccess
	ExitGeneralError       = oerrors.ExitGeneralError
	ExitValidationError    = oerrors.ExitValidationError
	ExitPermissionDenied   = oerrors.ExitPermissionDenied
	ExitNotFound           = oerrors.ExitNotFound
	ExitConfigurationError = oerrors.ExitConfigurationError
	ExitAborted            = oerrors.ExitAborted
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
