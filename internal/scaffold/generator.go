package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	oerrors "github.com/opmodel/sire/internal/errors"
	"github.com/opmodel/sire/internal/output"
	"github.com/opmodel/sire/internal/runner"
	"github.com/opmodel/sire/internal/templates"
)

// DefaultPython is the interpreter used to build the virtualenv.
const DefaultPython = "python3"

// publishScript is made executable after rendering.
const publishScript = "publish.sh"

// Options describe one generation run.
type Options struct {
	// Name is the project name. It names the root and package directories.
	Name string

	// Dir is the parent directory of the project root. Empty means ".".
	Dir string

	// Exclude is the raw comma-separated exclusion list.
	Exclude string

	Features Features

	// Values are substitution values. The name key is always overridden.
	Values templates.Values

	// Python is the interpreter for the virtualenv. Empty means DefaultPython.
	Python string

	// DryRun resolves the path set without touching the filesystem.
	DryRun bool
}

// Result describes what a run produced.
type Result struct {
	// Root is the project directory.
	Root string

	Exclude ExclusionSet

	// Paths are the produced paths relative to Root, in slash form.
	Paths []string

	// Skipped are the path patterns dropped by the exclusion set.
	Skipped []OutputPath

	DocsDir bool

	GitInitialized bool

	// Virtualenv is the virtualenv directory, empty when none was built.
	Virtualenv string

	Reminders []string
}

// Generator creates projects from a template source.
type Generator struct {
	source *templates.Source
	runner runner.Runner
}

// NewGenerator returns a generator. A nil runner uses runner.Exec.
func NewGenerator(source *templates.Source, r runner.Runner) *Generator {
	if r == nil {
		r = runner.Exec{}
	}
	return &Generator{source: source, runner: r}
}

// Plan validates the options and resolves the path set without writing.
func (g *Generator) Plan(opts Options) (*Result, error) {
	if err := ValidateName(opts.Name); err != nil {
		return nil, err
	}

	root := filepath.Join(opts.Dir, opts.Name)

	exclude := Normalize(opts.Exclude, opts.Features)
	res := Resolve(exclude, opts.Name)

	return &Result{
		Root:    root,
		Exclude: exclude,
		Paths:   res.Resolved(opts.Name),
		Skipped: res.Skipped,
		DocsDir: res.DocsDir,
	}, nil
}

// Generate creates the project. On any failure or cancellation after the
// root directory was created, the whole root is removed.
func (g *Generator) Generate(ctx context.Context, opts Options) (*Result, error) {
	plan, err := g.Plan(opts)
	if err != nil {
		return nil, err
	}
	if opts.DryRun {
		return plan, nil
	}

	if err := checkTarget(plan.Root); err != nil {
		return nil, err
	}

	res, err := g.generate(ctx, plan, opts)
	if err != nil {
		log := output.ProjectLogger(opts.Name)
		if oerrors.IsAborted(err) {
			log.Warn("aborted, cleaning up", "dir", plan.Root)
		} else {
			log.Error("generation failed, cleaning up", "dir", plan.Root)
		}
		if rmErr := os.RemoveAll(plan.Root); rmErr != nil {
			log.Error("cleanup failed", "dir", plan.Root, "error", rmErr)
		}
		return nil, err
	}
	return res, nil
}

func (g *Generator) generate(ctx context.Context, res *Result, opts Options) (*Result, error) {
	log := output.ProjectLogger(opts.Name)
	root := res.Root

	dirs := []string{root, filepath.Join(root, opts.Name), filepath.Join(root, "tests")}
	if res.DocsDir {
		dirs = append(dirs, filepath.Join(root, DocsDir))
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	resolution := Resolve(res.Exclude, opts.Name)
	renderer := NewRenderer(g.source, root, opts.Name, opts.Values, res.Exclude)
	if _, err := renderer.RenderAll(ctx, resolution.Paths); err != nil {
		return nil, err
	}
	log.Debug("rendered files", "count", len(resolution.Paths), "templates", g.source.String())

	if resolution.Has(publishScript) {
		if err := makeExecutable(filepath.Join(root, publishScript)); err != nil {
			return nil, err
		}
	}

	features := res.Exclude.Features()
	if features.Git {
		res.GitInitialized = g.initGit(ctx, root, log)
	}
	if features.Virtualenv {
		res.Virtualenv = g.buildVirtualenv(ctx, root, opts, resolution.Has(ManifestName), log)
	}
	if err := ctx.Err(); err != nil {
		return nil, oerrors.Wrap(oerrors.ErrAborted, "post steps interrupted")
	}

	values := opts.Values.Merge(templates.Values{templates.KeyName: opts.Name})
	res.Reminders = Summarize(res.Paths, values)
	return res, nil
}

func makeExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.Chmod(path, info.Mode()|0o111); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}

// initGit runs git init in root. Failures are logged and ignored.
func (g *Generator) initGit(ctx context.Context, root string, log *log.Logger) bool {
	ok := g.step(ctx, runner.Command{Name: "git", Args: []string{"init"}, Dir: root}, log)
	if ok {
		log.Debug("initialized git repository", "dir", root)
	}
	return ok
}

// buildVirtualenv creates venv-<name> in root and installs the development
// dependencies. It returns the virtualenv path, or "" when creation failed.
func (g *Generator) buildVirtualenv(ctx context.Context, root string, opts Options, manifest bool, log *log.Logger) string {
	python := opts.Python
	if python == "" {
		python = DefaultPython
	}
	venvName := "venv-" + opts.Name
	venv := filepath.Join(root, venvName)

	created := false
	err := output.RunWithSpinner(ctx, "Building virtualenv "+venvName, func(ctx context.Context) error {
		if !g.step(ctx, runner.Command{Name: python, Args: []string{"-m", "venv", venvName}, Dir: root}, log) {
			return nil
		}
		created = true

		pip := filepath.Join(venv, "bin", "pip")
		if abs, err := filepath.Abs(pip); err == nil {
			pip = abs
		}
		g.step(ctx, runner.Command{Name: pip, Args: []string{"install", "wheel"}, Dir: root}, log)
		if manifest {
			g.step(ctx, runner.Command{Name: pip, Args: []string{"install", "-r", ManifestName}, Dir: root}, log)
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Warn("virtualenv step failed", "error", err)
	}

	if !created {
		return ""
	}
	return venv
}

// step runs one post-render command. It reports success; failures are
// logged as warnings.
func (g *Generator) step(ctx context.Context, cmd runner.Command, log *log.Logger) bool {
	if ctx.Err() != nil {
		return false
	}
	res, err := g.runner.Run(ctx, cmd)
	if err != nil {
		log.Warn("command failed", "cmd", cmd.String(), "error", err)
		return false
	}
	if !res.OK() {
		log.Warn("command exited non-zero", "cmd", cmd.String(), "code", res.ExitCode)
		return false
	}
	return true
}
