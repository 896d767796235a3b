package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/sire/internal/errors"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
author:
  name: Ada Lovelace
  email: ada@example.com
  github_username: ada
description: Analytical engine helpers
templates: /opt/sire
python: python3.12
exclude: mypy,codecov
features:
  mkdocs: false
log:
  timestamps: false
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", cfg.Author.Name)
		assert.Equal(t, "ada@example.com", cfg.Author.Email)
		assert.Equal(t, "ada", cfg.Author.GithubUsername)
		assert.Equal(t, "Analytical engine helpers", cfg.Description)
		assert.Equal(t, "/opt/sire", cfg.Templates)
		assert.Equal(t, "python3.12", cfg.Python)
		assert.Equal(t, "mypy,codecov", cfg.Exclude)
		require.NotNil(t, cfg.Features.Mkdocs)
		assert.False(t, *cfg.Features.Mkdocs)
		assert.Nil(t, cfg.Features.Git)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
		assert.Equal(t, "/opt/sire", loader.FileValue("templates"))
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "nonexistent.yaml")

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.Author.Name)
		assert.Empty(t, cfg.Templates)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("SIRE_AUTHOR_NAME", "Env Author")
		t.Setenv("SIRE_TEMPLATES", "/env/templates")
		t.Setenv("SIRE_FEATURES_GIT", "false")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("templates: /file/templates\n"), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "Env Author", cfg.Author.Name)
		assert.Equal(t, "/env/templates", cfg.Templates)
		require.NotNil(t, cfg.Features.Git)
		assert.False(t, *cfg.Features.Git)
		assert.Equal(t, "/file/templates", loader.FileValue("templates"))
	})

	t.Run("invalid yaml is a configuration error", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("author: [unclosed\n"), 0o644))

		_, err := NewLoader().Load(configFile)
		require.Error(t, err)

		var detail *oerrors.DetailError
		require.True(t, errors.As(err, &detail))
		assert.Equal(t, "configuration error", detail.Type)
		assert.Equal(t, configFile, detail.Location)
	})
}

func TestLoaderFound(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	loader := NewLoader()
	_, err := loader.Load(configFile)
	require.NoError(t, err)
	assert.False(t, loader.Found())

	require.NoError(t, os.WriteFile(configFile, []byte("python: python3\n"), 0o644))
	_, err = loader.Load(configFile)
	require.NoError(t, err)
	assert.True(t, loader.Found())
}

func TestWrite(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "nested", "config.yaml")

	require.NoError(t, Write(DefaultConfig(), configFile, false))

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# sire configuration")
	assert.Contains(t, string(data), "python: python3")

	cfg, err := NewLoader().Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, "python3", cfg.Python)
	require.NotNil(t, cfg.Features.Virtualenv)
	assert.True(t, *cfg.Features.Virtualenv)

	err = Write(DefaultConfig(), configFile, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))

	assert.NoError(t, Write(DefaultConfig(), configFile, true))
}
