package cmdutil

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/sire/internal/cmdtypes"
	oerrors "github.com/opmodel/sire/internal/errors"
	"github.com/opmodel/sire/internal/templates"
	"github.com/opmodel/sire/internal/testutil"
)

func TestLocateTemplates(t *testing.T) {
	t.Setenv("SIRE_TEMPLATES", "")
	gc := &cmdtypes.GlobalConfig{}

	t.Run("flag override", func(t *testing.T) {
		root := testutil.TemplateRoot(t, map[string]string{"LICENSE": "x"})
		src, err := LocateTemplates(gc, TemplateFlags{Dir: root, NoEmbedded: true})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, templates.DirName), src.Dir)
	})

	t.Run("env override", func(t *testing.T) {
		root := testutil.TemplateRoot(t, map[string]string{"LICENSE": "x"})
		t.Setenv("SIRE_TEMPLATES", root)
		src, err := LocateTemplates(gc, TemplateFlags{NoEmbedded: true})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, templates.DirName), src.Dir)
	})

	t.Run("embedded fallback", func(t *testing.T) {
		src, err := LocateTemplates(gc, TemplateFlags{Dir: t.TempDir()})
		require.NoError(t, err)
		assert.True(t, src.Embedded)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := LocateTemplates(gc, TemplateFlags{Dir: t.TempDir(), NoEmbedded: true})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrTemplatesNotFound))
	})
}
