package scaffold

import (
	"strings"

	"github.com/opmodel/sire/internal/templates"
)

// BadLineTable maps a feature token to the literal line prefixes that
// reference it in rendered output.
type BadLineTable map[string][]string

// DefaultBadLines covers the built-in templates. Prefixes may contain
// placeholders; they are substituted with the render values before matching.
var DefaultBadLines = BadLineTable{
	TokenReadme: {
		`    long_description=read("README.md"),`,
		`    long_description_content_type="text/markdown",`,
		"[bumpversion:file:README.md",
		"search = > Version {current_version}",
		"replace = > Version {new_version}",
	},
	TokenMkdocs:      {"[![readthedocs](https"},
	TokenReadthedocs: {"[![readthedocs](https"},
	TokenInit: {
		"[bumpversion:file:{name}/__init__.py]",
		`search = __version__ = "{current_version}"`,
		`replace = __version__ = "{new_version}"`,
	},
	TokenFlake8:     {"        - flake8", "flake8 "},
	TokenIsort:      {"        - isort -m 3 -tc -c", "isort -m 3 -tc"},
	TokenMypy:       {"        - mypy ", "mypy "},
	TokenVirtualenv: {"proj=$", `source "venv-`, "# use virtualenv"},
	TokenGit: {
		"# or",
		"git clone https",
		`    url="http://`,
		"git push origin master",
		"# push to ",
	},
	TokenCoverage: {
		"[![codecov.io](https",
		"    - stage: coverage",
		"      script:  # coverage",
		"        - coverage run -m unittest",
		"        - coverage report",
		"        - codecov",
	},
	TokenTravis: {"[![Build Status](https"},
	TokenBlack:  {"[![Code style: black]", "        - black --check", "black "},
	TokenSetup: {
		"[bumpversion:file:setup.py]",
		`search = version="{current_version}"`,
		`replace = version="{new_version}"`,
	},
	TokenBumpversion: {"bump2version $1", "# bump the version"},
}

// LineFilter removes lines that reference excluded features.
type LineFilter struct {
	table BadLineTable
}

// NewLineFilter returns a filter over table with every prefix substituted
// with values. The table itself is not modified.
func NewLineFilter(table BadLineTable, values templates.Values) *LineFilter {
	resolved := make(BadLineTable, len(table))
	for token, prefixes := range table {
		out := make([]string, len(prefixes))
		for i, p := range prefixes {
			out[i] = templates.Substitute(p, values)
		}
		resolved[token] = out
	}
	return &LineFilter{table: resolved}
}

// Filter drops every line starting with a prefix of an excluded token.
// Kept lines stay in order, joined with "\n".
func (f *LineFilter) Filter(text string, exclude ExclusionSet) string {
	var prefixes []string
	for _, token := range exclude.Tokens() {
		prefixes = append(prefixes, f.table[token]...)
	}
	if len(prefixes) == 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if !hasAnyPrefix(line, prefixes) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// FilterLines applies DefaultBadLines without placeholder substitution.
func FilterLines(text string, exclude ExclusionSet) string {
	return (&LineFilter{table: DefaultBadLines}).Filter(text, exclude)
}

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
