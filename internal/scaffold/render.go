package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/opmodel/sire/internal/errors"
	"github.com/opmodel/sire/internal/templates"
)

// Renderer writes output paths beneath a project root.
type Renderer struct {
	source      *templates.Source
	root        string
	projectName string
	values      templates.Values
	exclude     ExclusionSet
	filter      *LineFilter
}

// NewRenderer returns a renderer for one project. The project name is bound
// to the name placeholder regardless of values.
func NewRenderer(source *templates.Source, root, projectName string, values templates.Values, exclude ExclusionSet) *Renderer {
	ctx := values.Merge(templates.Values{templates.KeyName: projectName})
	return &Renderer{
		source:      source,
		root:        root,
		projectName: projectName,
		values:      ctx,
		exclude:     exclude,
		filter:      NewLineFilter(DefaultBadLines, ctx),
	}
}

// Text returns the final content for p without writing it.
func (r *Renderer) Text(p OutputPath) (string, error) {
	raw, err := r.source.Read(p.Base())
	if err != nil {
		return "", err
	}

	text := templates.Substitute(raw, r.values)
	if p.Base() == ManifestName {
		text = StripDependencies(text, r.exclude)
	}
	text = r.filter.Filter(text, r.exclude)

	return strings.TrimSpace(text) + "\n", nil
}

// Render writes p beneath the root, overwriting any existing file, and
// returns the written path.
func (r *Renderer) Render(p OutputPath) (string, error) {
	text, err := r.Text(p)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(r.root, filepath.FromSlash(p.Resolve(r.projectName)))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", dest, err)
	}
	if err := os.WriteFile(dest, []byte(text), 0o644); err != nil {
		if os.IsPermission(err) {
			return "", oerrors.NewPermissionError("cannot write file", dest, "Check permissions on the target directory.")
		}
		return "", fmt.Errorf("writing %s: %w", dest, err)
	}
	return dest, nil
}

// RenderAll writes every path in order. It stops at the first error, and
// between files when ctx is cancelled.
func (r *Renderer) RenderAll(ctx context.Context, paths []OutputPath) ([]string, error) {
	written := make([]string, 0, len(paths))
	for _, p := range paths {
		if ctx.Err() != nil {
			return written, oerrors.Wrap(oerrors.ErrAborted, "rendering interrupted")
		}
		dest, err := r.Render(p)
		if err != nil {
			return written, err
		}
		written = append(written, dest)
	}
	return written, nil
}
