package templates

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	oerrors "github.com/opmodel/sire/internal/errors"
	"github.com/opmodel/sire/internal/output"
)

// DirName is the literal name of a templates directory.
const DirName = "templates"

// appName is the per-application subdirectory used under install prefixes
// and XDG data directories.
const appName = "sire"

// Locator finds the templates directory by probing candidate roots in order.
type Locator struct {
	// Candidates are probed in order. A candidate matches when it contains a
	// templates subdirectory or is itself a directory named templates.
	Candidates []string

	// AllowEmbedded falls back to the built-in templates when no candidate
	// matches.
	AllowEmbedded bool
}

// NewLocator returns a Locator over DefaultCandidates(override).
func NewLocator(override string, allowEmbedded bool) *Locator {
	return &Locator{
		Candidates:    DefaultCandidates(override),
		AllowEmbedded: allowEmbedded,
	}
}

// DefaultCandidates returns the probe list: the explicit override, the
// directory of the running executable and its parent, the install prefix's
// share/sire, then the XDG data directories.
func DefaultCandidates(override string) []string {
	var candidates []string
	if override != "" {
		candidates = append(candidates, override)
	}

	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		binDir := filepath.Dir(exe)
		prefix := filepath.Dir(binDir)
		candidates = append(candidates,
			binDir,
			prefix,
			filepath.Join(prefix, "share", appName),
		)
	}

	candidates = append(candidates, filepath.Join(xdg.DataHome, appName))
	for _, dir := range xdg.DataDirs {
		candidates = append(candidates, filepath.Join(dir, appName))
	}

	return dedupe(candidates)
}

// Locate returns the first matching templates source. It performs read-only
// stat calls and should be called once per invocation.
func (l *Locator) Locate() (*Source, error) {
	for _, c := range l.Candidates {
		if dir, ok := match(c); ok {
			output.Debug("templates located", "dir", dir)
			return FromDir(dir), nil
		}
		output.Debug("no templates in candidate", "candidate", c)
	}

	if l.AllowEmbedded {
		output.Debug("using built-in templates")
		return Builtin(), nil
	}

	return nil, oerrors.NewTemplatesNotFoundError(l.Candidates)
}

func match(candidate string) (string, bool) {
	if candidate == "" {
		return "", false
	}
	nested := filepath.Join(candidate, DirName)
	if isDir(nested) {
		return nested, true
	}
	if filepath.Base(candidate) == DirName && isDir(candidate) {
		return candidate, true
	}
	return "", false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = filepath.Clean(s)
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
