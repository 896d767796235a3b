package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	oerrors "github.com/opmodel/sire/internal/errors"
)

// Source is a located set of template files keyed by basename.
type Source struct {
	// Dir is the on-disk templates directory. Empty when Embedded is set.
	Dir string

	// Embedded marks the template set compiled into the binary.
	Embedded bool

	fsys fs.FS
}

// FromDir returns a Source reading from an on-disk templates directory.
func FromDir(dir string) *Source {
	return &Source{Dir: dir, fsys: os.DirFS(dir)}
}

// String returns the directory path, or "embedded" for the built-in set.
func (s *Source) String() string {
	if s.Embedded {
		return "embedded"
	}
	return s.Dir
}

// Read returns the raw text of the template with the given basename.
// A missing file yields an error wrapping ErrTemplateMissing.
func (s *Source) Read(name string) (string, error) {
	data, err := fs.ReadFile(s.fsys, path.Base(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", oerrors.NewTemplateMissingError(path.Base(name), s.String())
		}
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}
	return string(data), nil
}

// List returns the sorted basenames of all template files.
func (s *Source) List() ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("listing templates in %s: %w", s, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
