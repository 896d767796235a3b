package scaffold

import "github.com/opmodel/sire/internal/templates"

// reminder is a next step that applies when a given file was produced.
type reminder struct {
	file string
	text string
}

var reminders = []reminder{
	{".coveragerc", "Add the repository on codecov.io and set CODECOV_TOKEN for CI."},
	{".travis.yml", "Activate https://travis-ci.org/{github_username}/{name} to run the pipeline."},
	{".readthedocs.yaml", "Import the project on readthedocs.org to publish the docs."},
	{"publish.sh", "Configure PyPI credentials (~/.pypirc) before running ./publish.sh."},
	{".gitignore", "Add a remote: git remote add origin https://github.com/{github_username}/{name}"},
}

// Summarize returns the next-step reminders that apply to the produced
// basenames. Placeholders in reminders are substituted with values.
func Summarize(produced []string, values templates.Values) []string {
	have := make(map[string]bool, len(produced))
	for _, p := range produced {
		have[OutputPath(p).Base()] = true
	}

	var out []string
	for _, r := range reminders {
		if have[r.file] {
			out = append(out, templates.Substitute(r.text, values))
		}
	}
	return out
}
