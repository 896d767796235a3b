package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/opmodel/sire/internal/cmdtypes"
	"github.com/opmodel/sire/internal/cmdutil"
	"github.com/opmodel/sire/internal/config"
	oerrors "github.com/opmodel/sire/internal/errors"
	"github.com/opmodel/sire/internal/output"
	"github.com/opmodel/sire/internal/prompt"
	"github.com/opmodel/sire/internal/runner"
	"github.com/opmodel/sire/internal/scaffold"
	"github.com/opmodel/sire/internal/templates"
)

// newOptions collects every flag of the new command.
type newOptions struct {
	templates cmdutil.TemplateFlags
	features  cmdutil.FeatureFlags
	values    cmdutil.ValueFlags
	exclude   string
	python    string
	dir       string
	dryRun    bool
}

// NewProjectCmd creates the new command.
func NewProjectCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &newOptions{}

	c := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new Python project",
		Long: heredoc.Doc(`
			Create a new Python project named <name> in the current directory.

			Every file of the template set is rendered with {placeholder} values
			substituted. Placeholders without a value are left as they are.
			Excluded files are not generated, and lines mentioning an excluded
			tool are removed from the files that are.

			Values come from the config file, then --answers, then --set, then
			the interactive prompt (-i). The name placeholder is always <name>.
		`),
		Example: heredoc.Doc(`
			# Create a project with every feature
			sire new demo

			# Skip mypy, code coverage and the docs site
			sire new demo -e mypy,codecov --no-mkdocs

			# Fill the license and setup.py without prompting
			sire new demo --set real_name="Ada Lovelace" --set email=ada@example.com

			# Show what would be generated
			sire new demo -e "docs/*" --dry-run
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNew(c.Context(), gc, args[0], opts)
		},
	}

	c.Flags().StringVarP(&opts.exclude, "exclude", "e", "",
		"Comma-separated files or tools to leave out (env: SIRE_EXCLUDE)")
	c.Flags().StringVar(&opts.python, "python", "",
		"Interpreter used to build the virtualenv (env: SIRE_PYTHON)")
	c.Flags().StringVarP(&opts.dir, "dir", "d", "",
		"Parent directory of the new project (default: current directory)")
	c.Flags().BoolVar(&opts.dryRun, "dry-run", false,
		"Print the files that would be generated and exit")
	opts.templates.AddTo(c)
	opts.features.AddTo(c)
	opts.values.AddTo(c)

	return c
}

func runNew(ctx context.Context, gc *cmdtypes.GlobalConfig, name string, opts *newOptions) error {
	cfg := gc.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	exclude := config.Resolve(config.ResolveOptions{
		Key:         "exclude",
		FlagValue:   opts.exclude,
		EnvVar:      "SIRE_EXCLUDE",
		ConfigValue: gc.FileValue("exclude"),
	})
	python := config.Resolve(config.ResolveOptions{
		Key:          "python",
		FlagValue:    opts.python,
		EnvVar:       "SIRE_PYTHON",
		ConfigValue:  gc.FileValue("python"),
		DefaultValue: scaffold.DefaultPython,
	})
	config.LogResolvedValues([]config.ResolvedValue{exclude, python})

	values, err := collectValues(ctx, cfg, opts.values)
	if err != nil {
		return cmdutil.Fail("collecting values", err)
	}

	src, err := cmdutil.LocateTemplates(gc, opts.templates)
	if err != nil {
		return cmdutil.Fail("locating templates", err)
	}

	genOpts := scaffold.Options{
		Name:    name,
		Dir:     opts.dir,
		Exclude: exclude.Value,
		Features: scaffold.Features{
			Mkdocs:     config.Enabled(cfg.Features.Mkdocs) && !opts.features.NoMkdocs,
			Virtualenv: config.Enabled(cfg.Features.Virtualenv) && !opts.features.NoVirtualenv,
			Git:        config.Enabled(cfg.Features.Git) && !opts.features.NoGit,
		},
		Values: values,
		Python: python.Value,
		DryRun: opts.dryRun,
	}

	log := output.ProjectLogger(name)
	log.Debug("generating project",
		"templates", src.String(),
		"exclude", genOpts.Exclude,
		"features", fmt.Sprintf("%+v", genOpts.Features),
	)

	res, err := scaffold.NewGenerator(src, runner.Exec{}).Generate(ctx, genOpts)
	if err != nil {
		return cmdutil.Fail("creating project", err)
	}

	if opts.dryRun {
		printPlan(res)
		return nil
	}
	printResult(name, res)
	return nil
}

// collectValues layers config, answers file, --set and the prompt.
func collectValues(ctx context.Context, cfg *config.Config, vf cmdutil.ValueFlags) (templates.Values, error) {
	values := cfg.Values(time.Now())

	if vf.Answers != "" {
		answers, err := prompt.LoadAnswers(vf.Answers)
		if err != nil {
			return nil, err
		}
		values = values.Merge(answers)
	}

	set, err := prompt.ParseSet(vf.Set)
	if err != nil {
		return nil, err
	}
	values = values.Merge(set)

	if vf.Interactive {
		if !output.IsInteractive() {
			return nil, oerrors.NewValidationError("--interactive needs a terminal", "", "interactive",
				"Pass values with --set or --answers instead.")
		}
		if missing := prompt.Missing(values, prompt.DefaultFields); len(missing) > 0 {
			values, err = prompt.Ask(ctx, values, missing)
			if err != nil {
				return nil, err
			}
		}
	}

	output.Debug("substitution values", "keys", prompt.Keys(values))
	return values, nil
}

func printPlan(res *scaffold.Result) {
	output.Println(fmt.Sprintf("Would create %s with exclusions [%s]\n",
		output.StyleNoun.Render(res.Root), res.Exclude.String()))
	output.Print(output.RenderSimpleTree(res.Root, res.Paths))
	for _, p := range res.Skipped {
		output.Println(output.FormatFileLine(string(p), output.StatusExcluded))
	}
}

func printResult(name string, res *scaffold.Result) {
	absRoot, err := filepath.Abs(res.Root)
	if err != nil {
		absRoot = res.Root
	}
	output.Println(fmt.Sprintf("Created project '%s' in %s\n", name, absRoot))

	files := make(map[string]string, len(res.Paths))
	for _, p := range res.Paths {
		files[p] = scaffold.OutputPath(p).Description()
	}
	output.Print(output.RenderFileTree(res.Root, files))

	for _, p := range res.Skipped {
		output.Println(output.FormatFileLine(string(p), output.StatusExcluded))
	}

	if res.GitInitialized {
		output.Println(output.FormatCheck("git", "repository initialized"))
	}
	if res.Virtualenv != "" {
		activate := filepath.Join(res.Virtualenv, "bin", "activate")
		output.Println(output.FormatCheck("virtualenv", "activate with `source "+activate+"`"))
	}

	if len(res.Reminders) > 0 {
		output.Println("")
		output.Println(output.StyleSummary.Render("Next steps"))
		for _, r := range res.Reminders {
			output.Println(output.FormatReminder(r))
		}
	}

	output.Println("")
	output.Println(output.FormatCheckmark(fmt.Sprintf("All done! `cd %s` to check out your new project.", res.Root)))
}
