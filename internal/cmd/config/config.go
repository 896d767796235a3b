// Package config provides the `sire config` command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/sire/internal/cmdtypes"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Create and inspect the sire configuration file.`,
	}

	cmd.AddCommand(
		newInitCmd(gc),
		newShowCmd(gc),
	)

	return cmd
}
