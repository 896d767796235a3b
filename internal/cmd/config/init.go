package config

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/sire/internal/cmdtypes"
	"github.com/opmodel/sire/internal/cmdutil"
	"github.com/opmodel/sire/internal/config"
	"github.com/opmodel/sire/internal/output"
)

func newInitCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new sire configuration file",
		Long: `Create a new sire configuration file with default values.

The configuration file is created at $XDG_CONFIG_HOME/sire/config.yaml by
default. Use --config or SIRE_CONFIG to choose a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(gc, force)
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return initCmd
}

func runInit(gc *cmdtypes.GlobalConfig, force bool) error {
	path := gc.ConfigPath.Value
	if path == "" {
		path = config.GetConfigFile()
	}

	if err := config.Write(config.DefaultConfig(), path, force); err != nil {
		return cmdutil.Fail("writing config", err)
	}

	output.Println(output.FormatCheckmark("Configuration written to " + output.StyleNoun.Render(path)))
	output.Println("Set author.name, author.email and author.github_username to fill the license and setup.py.")
	return nil
}
