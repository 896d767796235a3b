package templates

import (
	"regexp"
	"sort"
)

// KeyName is the placeholder always bound to the project name.
const KeyName = "name"

// placeholderPattern matches {identifier}. Anything else between braces is
// left untouched.
var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Values maps placeholder names to replacement text.
type Values map[string]string

// Merge returns a new Values with other layered over v. Empty strings in
// other do not shadow values in v.
func (v Values) Merge(other Values) Values {
	out := make(Values, len(v)+len(other))
	for k, val := range v {
		out[k] = val
	}
	for k, val := range other {
		if val == "" {
			if _, ok := out[k]; ok {
				continue
			}
		}
		out[k] = val
	}
	return out
}

// Substitute replaces every {identifier} in text with its value. Identifiers
// missing from values are written back verbatim as {identifier}.
func Substitute(text string, values Values) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(m string) string {
		if v, ok := values[m[1:len(m)-1]]; ok {
			return v
		}
		return m
	})
}

// Placeholders returns the sorted unique placeholder names found in text.
func Placeholders(text string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	sort.Strings(names)
	return names
}
