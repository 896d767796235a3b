// Package prompt collects substitution values from answers files and
// interactive forms.
package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	oerrors "github.com/opmodel/sire/internal/errors"
	"github.com/opmodel/sire/internal/templates"
)

// LoadAnswers reads a flat key/value answers file. The format follows the
// extension: .yaml, .yml or .toml. Non-string scalars are formatted as text.
func LoadAnswers(path string) (templates.Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError("answers file not found", path, "Check the --answers path.")
		}
		return nil, fmt.Errorf("reading answers file %s: %w", path, err)
	}

	raw := map[string]interface{}{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	default:
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("unsupported answers file extension %q", ext),
			path, "answers", "Use a .yaml, .yml or .toml file.")
	}
	if err != nil {
		return nil, &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "answers file is not valid",
			Location: path,
			Hint:     "The file must hold flat key: value pairs.",
			Cause:    fmt.Errorf("%w: %v", oerrors.ErrValidation, err),
		}
	}

	values := make(templates.Values, len(raw))
	for k, v := range raw {
		switch v.(type) {
		case map[string]interface{}, []interface{}:
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("answer %q must be a scalar", k), path, k, "")
		case nil:
			values[k] = ""
		default:
			values[k] = fmt.Sprint(v)
		}
	}
	return values, nil
}

// ParseSet parses key=value pairs from repeated --set flags.
func ParseSet(pairs []string) (templates.Values, error) {
	values := make(templates.Values, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("invalid --set value %q", p), "", "set", "Use key=value.")
		}
		values[k] = v
	}
	return values, nil
}

// Keys returns the sorted keys of values.
func Keys(values templates.Values) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
