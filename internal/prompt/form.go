package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	oerrors "github.com/opmodel/sire/internal/errors"
	"github.com/opmodel/sire/internal/templates"
)

// Field is one question in the interactive form.
type Field struct {
	Key         string
	Title       string
	Placeholder string
}

// DefaultFields are the values the built-in templates use besides the name.
var DefaultFields = []Field{
	{Key: "real_name", Title: "Your full name", Placeholder: "Ada Lovelace"},
	{Key: "email", Title: "Email address", Placeholder: "ada@example.com"},
	{Key: "github_username", Title: "GitHub username", Placeholder: "ada"},
	{Key: "description", Title: "One-line project description"},
}

// Ask runs an interactive form for fields. Existing values pre-fill the
// inputs. Cancelling the form returns an error wrapping ErrAborted.
func Ask(ctx context.Context, values templates.Values, fields []Field) (templates.Values, error) {
	answers := make([]string, len(fields))
	inputs := make([]huh.Field, len(fields))
	for i, f := range fields {
		answers[i] = values[f.Key]
		inputs[i] = huh.NewInput().
			Key(f.Key).
			Title(f.Title).
			Placeholder(f.Placeholder).
			Value(&answers[i])
	}

	form := huh.NewForm(huh.NewGroup(inputs...))
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return nil, oerrors.Wrap(oerrors.ErrAborted, "prompt cancelled")
		}
		return nil, fmt.Errorf("running prompt: %w", err)
	}

	out := make(templates.Values, len(fields))
	for i, f := range fields {
		out[f.Key] = answers[i]
	}
	return values.Merge(out), nil
}

// Missing returns the fields whose key has no non-empty value.
func Missing(values templates.Values, fields []Field) []Field {
	var out []Field
	for _, f := range fields {
		if values[f.Key] == "" {
			out = append(out, f)
		}
	}
	return out
}
