// Package scaffold turns a project name, feature flags and an exclusion list
// into a rendered project tree.
package scaffold

import (
	"sort"
	"strings"
)

// Canonical feature tokens.
const (
	TokenMkdocs      = "mkdocs"
	TokenVirtualenv  = "virtualenv"
	TokenGit         = "git"
	TokenCoverage    = "coveragerc"
	TokenReadthedocs = "readthedocs"
	TokenBumpversion = "bumpversion"
	TokenPreCommit   = "pre-commit-config"
	TokenTravis      = "travis"
	TokenTests       = "tests"
	TokenReadme      = "readme"
	TokenInit        = "__init__"
	TokenSetup       = "setup"
	TokenPublish     = "publish"
	TokenRequirement = "requirements"
	TokenChangelog   = "changelog"
	TokenMypy        = "mypy"
	TokenFlake8      = "flake8"
	TokenIsort       = "isort"
	TokenBlack       = "black"
)

// synonyms maps user spellings onto canonical tokens. Lookup is by exact
// match after lowercasing and stripping one leading dot.
var synonyms = map[string]string{
	"codecov":            TokenCoverage,
	"coverage":           TokenCoverage,
	"codecoverage":       TokenCoverage,
	"rtd":                TokenReadthedocs,
	"docs":               TokenReadthedocs,
	"venv":               TokenVirtualenv,
	"virtualenvironment": TokenVirtualenv,
	"bump2version":       TokenBumpversion,
	"travis-ci":          TokenTravis,
	"ci":                 TokenTravis,
	"precommit":          TokenPreCommit,
	"pre-commit":         TokenPreCommit,
	"hooks":              TokenPreCommit,
	"init":               TokenInit,
	"test":               TokenTests,
	"changes":            TokenChangelog,
	"pypi":               TokenPublish,
	"typing":             TokenMypy,
	"vcs":                TokenGit,
	"mkdoc":              TokenMkdocs,
}

// Canonical returns the canonical token for a single user-supplied token.
// Unknown tokens pass through normalized but otherwise unchanged.
func Canonical(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	token = strings.TrimPrefix(token, ".")
	if c, ok := synonyms[token]; ok {
		return c
	}
	return token
}

// Features are the optional capabilities toggled by flags.
type Features struct {
	Mkdocs     bool
	Virtualenv bool
	Git        bool
}

// DefaultFeatures enables every feature.
func DefaultFeatures() Features {
	return Features{Mkdocs: true, Virtualenv: true, Git: true}
}

// ExclusionSet is a set of canonical feature tokens. It is built once and
// read-only afterwards.
type ExclusionSet struct {
	tokens map[string]struct{}
}

// NewExclusionSet builds a set from tokens taken as-is.
func NewExclusionSet(tokens ...string) ExclusionSet {
	s := ExclusionSet{tokens: make(map[string]struct{}, len(tokens))}
	for _, t := range tokens {
		if t != "" {
			s.tokens[t] = struct{}{}
		}
	}
	return s
}

// Normalize parses a comma-separated exclusion string and adds the token of
// every disabled feature. Tokens that match nothing are kept and ignored later.
func Normalize(raw string, features Features) ExclusionSet {
	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		if t := Canonical(part); t != "" {
			tokens = append(tokens, t)
		}
	}
	if !features.Mkdocs {
		tokens = append(tokens, TokenMkdocs)
	}
	if !features.Virtualenv {
		tokens = append(tokens, TokenVirtualenv)
	}
	if !features.Git {
		tokens = append(tokens, TokenGit)
	}
	return NewExclusionSet(tokens...)
}

// Has reports whether token is excluded.
func (s ExclusionSet) Has(token string) bool {
	_, ok := s.tokens[token]
	return ok
}

// Len returns the number of tokens.
func (s ExclusionSet) Len() int {
	return len(s.tokens)
}

// Tokens returns the tokens in sorted order.
func (s ExclusionSet) Tokens() []string {
	out := make([]string, 0, len(s.tokens))
	for t := range s.tokens {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Features reports which flag features remain enabled after exclusion.
func (s ExclusionSet) Features() Features {
	return Features{
		Mkdocs:     !s.Has(TokenMkdocs),
		Virtualenv: !s.Has(TokenVirtualenv),
		Git:        !s.Has(TokenGit),
	}
}

// String joins the tokens with commas.
func (s ExclusionSet) String() string {
	return strings.Join(s.Tokens(), ",")
}
