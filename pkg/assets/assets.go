// Package assets loads icon bytes by lookup path.
//
// Lookup paths come from package icons ("icons/heart.svg") and are resolved
// against the root of a Source. A path that does not exist is reported as
// ErrNotFound so hosts can draw a blank glyph instead of failing.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

//go:embed icons/*.svg
var embedded embed.FS

// ErrNotFound is returned when a lookup path has no asset.
var ErrNotFound = fmt.Errorf("asset not found: %w", fs.ErrNotExist)

// Source provides asset bytes keyed by lookup path.
type Source interface {
	Load(path string) ([]byte, error)
}

// FS is a Source backed by an fs.FS.
type FS struct {
	fsys fs.FS
}

// Embedded returns the Source of the assets compiled into the binary.
func Embedded() *FS {
	return &FS{fsys: embedded}
}

// Dir returns a Source reading from the directory root on disk. root is the
// directory that contains the "icons" folder, not the folder itself.
func Dir(root string) *FS {
	return &FS{fsys: os.DirFS(root)}
}

// New wraps any fs.FS as a Source.
func New(fsys fs.FS) *FS {
	return &FS{fsys: fsys}
}

// Load reads the asset at p.
func (s *FS) Load(p string) ([]byte, error) {
	name := path.Clean(strings.TrimPrefix(p, "/"))
	if name == "." || !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: invalid path %q", ErrNotFound, p)
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
		}
		return nil, fmt.Errorf("load asset %s: %w", p, err)
	}
	return data, nil
}

// Exists reports whether p resolves to an asset.
func (s *FS) Exists(p string) bool {
	_, err := s.Load(p)
	return err == nil
}
