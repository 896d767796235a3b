package scaffold

import (
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/opmodel/sire/internal/output"
)

// nameSegment is the placeholder replaced by the project name in paths.
const nameSegment = "{name}"

// OutputPath is a slash-separated path relative to the project root. It may
// contain the {name} segment.
type OutputPath string

// Resolve substitutes the project name into the path.
func (p OutputPath) Resolve(projectName string) string {
	return strings.ReplaceAll(string(p), nameSegment, projectName)
}

// Base returns the template basename backing the path.
func (p OutputPath) Base() string {
	return path.Base(string(p))
}

// Description returns a short human label for the file.
func (p OutputPath) Description() string {
	return descriptions[p.Base()]
}

// keys returns the comparison keys: basename without a leading dot, the same
// without extension, and the full path in pattern and resolved form.
func (p OutputPath) keys(projectName string) (base, stem string, full []string) {
	base = strings.ToLower(strings.TrimPrefix(p.Base(), "."))
	stem = strings.TrimSuffix(base, path.Ext(base))
	full = []string{strings.ToLower(string(p))}
	if resolved := strings.ToLower(p.Resolve(projectName)); resolved != full[0] {
		full = append(full, resolved)
	}
	return base, stem, full
}

// BasePaths are generated for every project unless excluded.
var BasePaths = []OutputPath{
	".bumpversion.cfg",
	".coveragerc",
	".flake8",
	".travis.yml",
	"CHANGELOG.md",
	"LICENSE",
	"mypy.ini",
	"publish.sh",
	"README.md",
	"requirements.txt",
	"setup.py",
	"tests/tests.py",
	"{name}/__init__.py",
}

// GitPaths are added when git is not excluded.
var GitPaths = []OutputPath{
	".gitignore",
	".pre-commit-config.yaml",
}

// DocsPaths are added when mkdocs is not excluded.
var DocsPaths = []OutputPath{
	"mkdocs.yml",
	"docs/index.md",
	"docs/about.md",
	".readthedocs.yaml",
}

// DocsDir is the documentation directory created when mkdocs is enabled.
const DocsDir = "docs"

var descriptions = map[string]string{
	".bumpversion.cfg":        "Version bump config",
	".coveragerc":             "Coverage settings",
	".flake8":                 "Lint settings",
	".travis.yml":             "CI pipeline",
	"CHANGELOG.md":            "Changelog",
	"LICENSE":                 "MIT license",
	"mypy.ini":                "Type checker settings",
	"publish.sh":              "Release script",
	"README.md":               "Project readme",
	"requirements.txt":        "Development dependencies",
	"setup.py":                "Package manifest",
	"tests.py":                "Test stub",
	"__init__.py":             "Package init",
	".gitignore":              "Git ignore rules",
	".pre-commit-config.yaml": "Pre-commit hooks",
	"mkdocs.yml":              "Docs site config",
	"index.md":                "Docs landing page",
	"about.md":                "Docs about page",
	".readthedocs.yaml":       "Docs hosting config",
}

// Resolution is the outcome of resolving the path set.
type Resolution struct {
	// Paths are the output paths to render, sorted.
	Paths []OutputPath

	// Skipped are the candidate paths dropped by the exclusion set, sorted.
	Skipped []OutputPath

	// DocsDir is set when the docs directory must be created.
	DocsDir bool
}

// Resolve computes the output path set. A path is dropped when its
// dot-stripped basename, extensionless basename or full path is in the
// exclusion set. Git and docs paths are added when their feature is not
// excluded, and are subject to the same match.
func Resolve(exclude ExclusionSet, projectName string) Resolution {
	candidates := append([]OutputPath(nil), BasePaths...)
	if !exclude.Has(TokenGit) {
		candidates = append(candidates, GitPaths...)
	}
	docs := !exclude.Has(TokenMkdocs)
	if docs {
		candidates = append(candidates, DocsPaths...)
	}

	var res Resolution
	for _, p := range candidates {
		if Excluded(p, exclude, projectName) {
			output.Debug("skipping excluded path", "path", string(p))
			res.Skipped = append(res.Skipped, p)
			continue
		}
		res.Paths = append(res.Paths, p)
	}

	res.DocsDir = docs
	sortPaths(res.Paths)
	sortPaths(res.Skipped)
	return res
}

// Excluded reports whether any comparison key of p is in the set. Tokens
// holding glob metacharacters are matched against the full path.
func Excluded(p OutputPath, exclude ExclusionSet, projectName string) bool {
	base, stem, full := p.keys(projectName)
	if exclude.Has(base) || exclude.Has(stem) {
		return true
	}
	for _, f := range full {
		if exclude.Has(f) {
			return true
		}
	}

	for _, token := range exclude.Tokens() {
		if !isGlob(token) {
			continue
		}
		for _, f := range full {
			if ok, err := doublestar.Match(token, f); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// Has reports whether a path with the given basename was resolved.
func (r Resolution) Has(base string) bool {
	for _, p := range r.Paths {
		if p.Base() == base {
			return true
		}
	}
	return false
}

// Resolved returns the concrete relative paths in slash form.
func (r Resolution) Resolved(projectName string) []string {
	out := make([]string, len(r.Paths))
	for i, p := range r.Paths {
		out[i] = p.Resolve(projectName)
	}
	return out
}

func isGlob(token string) bool {
	return strings.ContainsAny(token, "*?[")
}

func sortPaths(paths []OutputPath) {
	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })
}
