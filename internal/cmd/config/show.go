package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/sire/internal/cmdtypes"
	"github.com/opmodel/sire/internal/config"
	"github.com/opmodel/sire/internal/output"
	"github.com/opmodel/sire/internal/scaffold"
)

func newShowCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show resolved configuration values",
		Long: `Show each configuration value and where it came from
(flag, env, config or default).`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			output.Println(showTable(gc).String())
			return nil
		},
	}
}

// showTable lists each resolved value with its source.
func showTable(gc *cmdtypes.GlobalConfig) *output.Table {
	cfg := gc.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	resolved := []config.ResolvedValue{
		gc.ConfigPath,
		fromFile(gc, "templates", "SIRE_TEMPLATES", ""),
		fromFile(gc, "python", "SIRE_PYTHON", scaffold.DefaultPython),
		fromFile(gc, "exclude", "SIRE_EXCLUDE", ""),
		fromFile(gc, "author.name", "SIRE_AUTHOR_NAME", ""),
		fromFile(gc, "author.email", "SIRE_AUTHOR_EMAIL", ""),
		fromFile(gc, "author.github_username", "SIRE_AUTHOR_GITHUB_USERNAME", ""),
		fromFile(gc, "description", "SIRE_DESCRIPTION", ""),
	}

	if gc.Loader == nil || !gc.Loader.Found() {
		resolved[0].Value += " (missing)"
	}

	tbl := output.NewTable("KEY", "VALUE", "SOURCE")
	for _, r := range resolved {
		value, source := r.Value, string(r.Source)
		if r.Source == "" {
			value, source = "", "unset"
		}
		tbl.Row(r.Key, value, source)
	}

	features := []struct {
		key string
		on  *bool
	}{
		{"features.mkdocs", cfg.Features.Mkdocs},
		{"features.virtualenv", cfg.Features.Virtualenv},
		{"features.git", cfg.Features.Git},
	}
	for _, f := range features {
		source := string(config.SourceDefault)
		if gc.FileValue(f.key) != "" {
			source = string(config.SourceConfig)
		}
		tbl.Row(f.key, fmt.Sprint(config.Enabled(f.on)), source)
	}
	return tbl
}

func fromFile(gc *cmdtypes.GlobalConfig, key, env, def string) config.ResolvedValue {
	return config.Resolve(config.ResolveOptions{
		Key:          key,
		EnvVar:       env,
		ConfigValue:  gc.FileValue(key),
		DefaultValue: def,
	})
}
