package scaffold

import "strings"

// ManifestName is the dependency manifest whose lines are pruned.
const ManifestName = "requirements.txt"

// dependencyNames translates a feature token into the dependency lines it
// owns in the manifest. Tokens not listed own a dependency of the same name.
var dependencyNames = map[string][]string{
	TokenCoverage:    {"codecov", "coverage"},
	TokenBumpversion: {"bump2version"},
	TokenPreCommit:   {"pre-commit"},
	TokenGit:         {"pre-commit"},
	TokenPublish:     {"twine"},
}

// Dependencies returns the manifest lines owned by the excluded tokens.
func Dependencies(exclude ExclusionSet) map[string]bool {
	deps := make(map[string]bool)
	for _, token := range exclude.Tokens() {
		names, ok := dependencyNames[token]
		if !ok {
			names = []string{token}
		}
		for _, n := range names {
			deps[n] = true
		}
	}
	return deps
}

// StripDependencies drops manifest lines exactly equal to a dependency of an
// excluded token.
func StripDependencies(text string, exclude ExclusionSet) string {
	deps := Dependencies(exclude)
	if len(deps) == 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if !deps[strings.TrimSuffix(line, "\r")] {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
