package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/sire/internal/errors"
	"github.com/opmodel/sire/internal/templates"
	"github.com/opmodel/sire/internal/testutil"
)

func sourceWith(t *testing.T, files map[string]string) *templates.Source {
	t.Helper()
	root := testutil.TemplateRoot(t, files)
	return templates.FromDir(filepath.Join(root, templates.DirName))
}

func TestRenderer_MissingPlaceholderVerbatim(t *testing.T) {
	src := sourceWith(t, map[string]string{"greeting.txt": "Hello {name}, by {real_name}"})
	r := NewRenderer(src, t.TempDir(), "demo", templates.Values{}, NewExclusionSet())

	text, err := r.Text("greeting.txt")
	require.NoError(t, err)
	assert.Equal(t, "Hello demo, by {real_name}\n", text)
}

func TestRenderer_NameValueCannotBeOverridden(t *testing.T) {
	src := sourceWith(t, map[string]string{"x.txt": "{name}"})
	r := NewRenderer(src, t.TempDir(), "demo", templates.Values{templates.KeyName: "other"}, NewExclusionSet())

	text, err := r.Text("x.txt")
	require.NoError(t, err)
	assert.Equal(t, "demo\n", text)
}

func TestRenderer_TrimsAndTerminates(t *testing.T) {
	src := sourceWith(t, map[string]string{"x.txt": "\n\n  body\n\n\n"})
	r := NewRenderer(src, t.TempDir(), "demo", nil, NewExclusionSet())

	text, err := r.Text("x.txt")
	require.NoError(t, err)
	assert.Equal(t, "body\n", text)
}

func TestRenderer_WritesResolvedPath(t *testing.T) {
	root := t.TempDir()
	src := sourceWith(t, map[string]string{"__init__.py": `__version__ = "0.0.1"`})
	r := NewRenderer(src, root, "demo", nil, NewExclusionSet())

	dest, err := r.Render("{name}/__init__.py")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "demo", "__init__.py"), dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "__version__ = \"0.0.1\"\n", string(data))
}

func TestRenderer_Overwrites(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "LICENSE", "stale")
	src := sourceWith(t, map[string]string{"LICENSE": "fresh"})

	_, err := NewRenderer(src, root, "demo", nil, NewExclusionSet()).Render("LICENSE")
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", testutil.ReadTree(t, root)["LICENSE"])
}

func TestRenderer_MissingTemplate(t *testing.T) {
	src := sourceWith(t, map[string]string{"LICENSE": "x"})
	r := NewRenderer(src, t.TempDir(), "demo", nil, NewExclusionSet())

	_, err := r.Render("mypy.ini")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrTemplateMissing))
}

func TestRenderer_ManifestStripping(t *testing.T) {
	src := sourceWith(t, map[string]string{
		"requirements.txt": "codecov\ncoverage\nmypy\n",
		"other.txt":        "codecov\ncoverage\nmypy\n",
	})
	r := NewRenderer(src, t.TempDir(), "demo", nil, NewExclusionSet(TokenCoverage))

	manifest, err := r.Text("requirements.txt")
	require.NoError(t, err)
	assert.Equal(t, "mypy\n", manifest)

	other, err := r.Text("other.txt")
	require.NoError(t, err)
	assert.Equal(t, "codecov\ncoverage\nmypy\n", other, "only the manifest is pruned")
}

func TestRenderer_BuiltinSetupWithoutReadme(t *testing.T) {
	r := NewRenderer(templates.Builtin(), t.TempDir(), "demo",
		templates.Values{"github_username": "ada"}, Normalize("readme,git", DefaultFeatures()))

	text, err := r.Text("setup.py")
	require.NoError(t, err)
	assert.NotContains(t, text, "long_description")
	assert.NotContains(t, text, "url=")
	assert.Contains(t, text, `name="demo"`)
	assert.Contains(t, text, `author="{real_name}"`)
}

func TestRenderer_BuiltinDefaultsRemoveNothing(t *testing.T) {
	values := templates.Values{"github_username": "ada"}
	r := NewRenderer(templates.Builtin(), t.TempDir(), "demo", values, Normalize("", DefaultFeatures()))

	for _, p := range Resolve(Normalize("", DefaultFeatures()), "demo").Paths {
		raw, err := templates.Builtin().Read(p.Base())
		require.NoError(t, err)

		text, err := r.Text(p)
		require.NoError(t, err)
		want := strings.TrimSpace(templates.Substitute(raw, values.Merge(templates.Values{templates.KeyName: "demo"}))) + "\n"
		assert.Equal(t, want, text, string(p))
	}
}

func TestRenderAll_Idempotent(t *testing.T) {
	exclude := Normalize("mypy", DefaultFeatures())
	paths := Resolve(exclude, "demo").Paths
	values := templates.Values{"real_name": "Ada", "email": "ada@example.com"}

	a, b := t.TempDir(), t.TempDir()
	_, err := NewRenderer(templates.Builtin(), a, "demo", values, exclude).RenderAll(context.Background(), paths)
	require.NoError(t, err)
	_, err = NewRenderer(templates.Builtin(), b, "demo", values, exclude).RenderAll(context.Background(), paths)
	require.NoError(t, err)

	assert.Equal(t, testutil.ReadTree(t, a), testutil.ReadTree(t, b))
}

func TestRenderAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	written, err := NewRenderer(templates.Builtin(), t.TempDir(), "demo", nil, NewExclusionSet()).
		RenderAll(ctx, []OutputPath{"LICENSE"})
	require.Error(t, err)
	assert.True(t, oerrors.IsAborted(err))
	assert.Empty(t, written)
}
