package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/sire/internal/cmdtypes"
	"github.com/opmodel/sire/internal/cmdutil"
	"github.com/opmodel/sire/internal/output"
)

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var tf cmdutil.TemplateFlags

	c := &cobra.Command{
		Use:   "templates",
		Short: "Show the located templates directory",
		Long: `Show which templates directory sire uses and the files it holds.

Candidates are probed in order: --templates (or SIRE_TEMPLATES, or the
config file), the executable's directory and its parent, <prefix>/share/sire,
then the XDG data directories. The built-in templates are used when nothing
matches, unless --no-embedded is set.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runTemplates(gc, tf)
		},
	}

	tf.AddTo(c)
	return c
}

func runTemplates(gc *cmdtypes.GlobalConfig, tf cmdutil.TemplateFlags) error {
	src, err := cmdutil.LocateTemplates(gc, tf)
	if err != nil {
		return cmdutil.Fail("locating templates", err)
	}

	names, err := src.List()
	if err != nil {
		return cmdutil.Fail("listing templates", err)
	}

	output.Println(fmt.Sprintf("Templates: %s\n", output.StyleNoun.Render(src.String())))
	output.Print(output.RenderSimpleTree(src.String(), names))
	return nil
}
