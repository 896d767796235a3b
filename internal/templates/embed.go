// Package templates locates template files and performs placeholder
// substitution on them.
package templates

import (
	"embed"
	"io/fs"
)

// builtinFS holds the template set compiled into the binary. The all: prefix
// keeps dotfiles and __init__.py.
//
//go:embed all:builtin
var builtinFS embed.FS

// Builtin returns the embedded template source.
func Builtin() *Source {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return &Source{Embedded: true, fsys: sub}
}
