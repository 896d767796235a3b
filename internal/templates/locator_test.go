package templates

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/sire/internal/errors"
	"github.com/opmodel/sire/internal/testutil"
)

func TestLocate_FirstMatchWins(t *testing.T) {
	empty := t.TempDir()
	first := testutil.TemplateRoot(t, map[string]string{"LICENSE": "first"})
	second := testutil.TemplateRoot(t, map[string]string{"LICENSE": "second"})

	l := &Locator{Candidates: []string{empty, first, second}}
	src, err := l.Locate()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(first, DirName), src.Dir)
	assert.False(t, src.Embedded)

	text, err := src.Read("LICENSE")
	require.NoError(t, err)
	assert.Equal(t, "first", text)
}

func TestLocate_CandidateIsTemplatesDir(t *testing.T) {
	root := testutil.TemplateRoot(t, map[string]string{"setup.py": "x"})
	dir := filepath.Join(root, DirName)

	src, err := (&Locator{Candidates: []string{dir}}).Locate()
	require.NoError(t, err)
	assert.Equal(t, dir, src.Dir)
}

func TestLocate_FileNamedTemplatesIgnored(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, DirName, "not a directory")

	_, err := (&Locator{Candidates: []string{root}}).Locate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrTemplatesNotFound))
}

func TestLocate_NotFoundListsCandidates(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()

	_, err := (&Locator{Candidates: []string{a, b}}).Locate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrTemplatesNotFound))

	var detail *oerrors.DetailError
	require.True(t, errors.As(err, &detail))
	assert.Contains(t, err.Error(), a)
	assert.Contains(t, err.Error(), b)
}

func TestLocate_EmbeddedFallback(t *testing.T) {
	src, err := (&Locator{Candidates: []string{t.TempDir()}, AllowEmbedded: true}).Locate()
	require.NoError(t, err)
	assert.True(t, src.Embedded)
	assert.Equal(t, "embedded", src.String())
}

func TestDefaultCandidates(t *testing.T) {
	override := t.TempDir()
	candidates := DefaultCandidates(override)

	require.NotEmpty(t, candidates)
	assert.Equal(t, override, candidates[0], "override is probed first")

	exe, err := os.Executable()
	require.NoError(t, err)
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	assert.Contains(t, candidates, filepath.Dir(exe))

	seen := map[string]bool{}
	for _, c := range candidates {
		assert.False(t, seen[c], "duplicate candidate %s", c)
		seen[c] = true
	}
}

func TestSourceRead_Missing(t *testing.T) {
	root := testutil.TemplateRoot(t, map[string]string{"LICENSE": "x"})
	src := FromDir(filepath.Join(root, DirName))

	_, err := src.Read("mypy.ini")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrTemplateMissing))
}

func TestSourceRead_UsesBasename(t *testing.T) {
	root := testutil.TemplateRoot(t, map[string]string{"tests.py": "stub"})
	src := FromDir(filepath.Join(root, DirName))

	text, err := src.Read("tests/tests.py")
	require.NoError(t, err)
	assert.Equal(t, "stub", text)
}

func TestBuiltin_ContainsEveryTemplate(t *testing.T) {
	names, err := Builtin().List()
	require.NoError(t, err)

	for _, want := range []string{
		".bumpversion.cfg", ".coveragerc", ".flake8", ".travis.yml", "CHANGELOG.md",
		"LICENSE", "mypy.ini", "publish.sh", "README.md", "requirements.txt",
		"setup.py", "tests.py", "__init__.py", ".gitignore", ".pre-commit-config.yaml",
		"mkdocs.yml", "index.md", "about.md", ".readthedocs.yaml",
	} {
		assert.Contains(t, names, want)
	}
}

func TestBuiltin_SetupPlaceholders(t *testing.T) {
	text, err := Builtin().Read("setup.py")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"description", "email", "github_username", "name", "real_name"},
		Placeholders(text))
}
