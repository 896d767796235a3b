package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/sire/internal/output"
	"github.com/opmodel/sire/internal/runner"
	"github.com/opmodel/sire/internal/scaffold"
	"github.com/opmodel/sire/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show sire version information.

Displays:
  - sire version, commit, build date and Go version
  - git and python versions used by the post-render steps`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tools := []version.ToolInfo{
				version.DetectTool(cmd.Context(), runner.Exec{}, "git"),
				version.DetectTool(cmd.Context(), runner.Exec{}, scaffold.DefaultPython),
			}
			output.Println(version.FullVersionString(version.Get(), tools))
			return nil
		},
	}
}
