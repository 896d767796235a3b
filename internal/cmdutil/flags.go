// Package cmdutil provides shared command utilities: flag groups, template
// location and error reporting.
package cmdutil

import (
	"github.com/spf13/cobra"
)

// TemplateFlags select where templates come from (new, templates).
type TemplateFlags struct {
	Dir        string
	NoEmbedded bool
}

// AddTo registers the template flags on the given cobra command.
func (f *TemplateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Dir, "templates", "",
		"Directory holding (or named) templates (env: SIRE_TEMPLATES)")
	cmd.Flags().BoolVar(&f.NoEmbedded, "no-embedded", false,
		"Fail instead of falling back to the built-in templates")
}

// FeatureFlags disable optional features (new).
type FeatureFlags struct {
	NoMkdocs     bool
	NoVirtualenv bool
	NoGit        bool
}

// AddTo registers the feature flags on the given cobra command.
func (f *FeatureFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.NoMkdocs, "no-mkdocs", false,
		"Skip the mkdocs documentation site")
	cmd.Flags().BoolVar(&f.NoVirtualenv, "no-virtualenv", false,
		"Skip building a virtualenv")
	cmd.Flags().BoolVar(&f.NoGit, "no-git", false,
		"Skip git files and repository initialization")
}

// ValueFlags supply substitution values (new).
type ValueFlags struct {
	Set         []string
	Answers     string
	Interactive bool
}

// AddTo registers the value flags on the given cobra command.
func (f *ValueFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.Set, "set", nil,
		"Substitution value as key=value (can be repeated)")
	cmd.Flags().StringVar(&f.Answers, "answers", "",
		"YAML or TOML file of substitution values")
	cmd.Flags().BoolVarP(&f.Interactive, "interactive", "i", false,
		"Prompt for values that are still empty")
}
