package cmdutil

import (
	"github.com/opmodel/sire/internal/cmdtypes"
	"github.com/opmodel/sire/internal/config"
	"github.com/opmodel/sire/internal/templates"
)

// LocateTemplates resolves the templates override (flag > env > config) and
// runs the locator once.
func LocateTemplates(gc *cmdtypes.GlobalConfig, flags TemplateFlags) (*templates.Source, error) {
	resolved := config.Resolve(config.ResolveOptions{
		Key:         "templates",
		FlagValue:   flags.Dir,
		EnvVar:      "SIRE_TEMPLATES",
		ConfigValue: gc.FileValue("templates"),
	})
	config.LogResolvedValues([]config.ResolvedValue{resolved})

	override, err := config.ExpandPath(resolved.Value)
	if err != nil {
		return nil, err
	}

	return templates.NewLocator(override, !flags.NoEmbedded).Locate()
}
