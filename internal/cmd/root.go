// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	configcmd "github.com/opmodel/sire/internal/cmd/config"
	"github.com/opmodel/sire/internal/cmdtypes"
	"github.com/opmodel/sire/internal/cmdutil"
	"github.com/opmodel/sire/internal/config"
	oerrors "github.com/opmodel/sire/internal/errors"
	"github.com/opmodel/sire/internal/output"
)

// NewRootCmd creates the root command for sire.
func NewRootCmd() *cobra.Command {
	gc := &cmdtypes.GlobalConfig{}

	var (
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "sire",
		Short: "Scaffold new Python projects",
		Long: heredoc.Doc(`
			sire creates a new Python project from a fixed template set: license,
			readme, packaging manifest, CI, lint and type checker settings, tests,
			and optionally an mkdocs site, a git repository and a virtualenv.
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, gc, configFlag, verboseFlag, timestampsFlag)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: SIRE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(
		NewProjectCmd(gc),
		NewTemplatesCmd(gc),
		configcmd.NewConfigCmd(gc),
		NewVersionCmd(),
	)

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration into gc.
func initializeGlobals(cmd *cobra.Command, gc *cmdtypes.GlobalConfig, configFlag string, verbose, timestamps bool) error {
	gc.Verbose = verbose
	gc.ConfigPath = config.ResolveConfigPath(configFlag)

	loader := config.NewLoader()
	cfg, err := loader.Load(gc.ConfigPath.Value)
	if err != nil {
		output.SetupLogging(output.LogConfig{Verbose: verbose})
		return cmdutil.Fail("loading config", oerrors.NewExitError(err, oerrors.ExitConfigurationError))
	}
	gc.Config = cfg
	gc.Loader = loader

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	config.LogResolvedValues([]config.ResolvedValue{gc.ConfigPath})
	if !loader.Found() {
		output.Debug("no config file, using defaults", "path", gc.ConfigPath.Value)
	}
	return nil
}
