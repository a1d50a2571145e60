// Package icons is the closed catalog of bundled Lucide icons.
//
// Every Icon constant is generated from the files in AssetDir by iconsgen;
// run go generate after adding, removing or renaming an asset. The set is
// fixed at build time and is safe for concurrent use.
package icons

//go:generate go run ../../cmd/iconsgen -dir ../assets/icons -root icons -pkg icons -out icons_gen.go

import (
	"fmt"
	"iter"
	"path"
	"strings"
)

// Icon identifies one icon of the catalog. Icons are ordered by source file
// name.
type Icon uint16

// Named is implemented by anything that locates an icon asset, including
// Icon itself. Custom icon sets can implement it to reuse the style and
// export helpers.
type Named interface {
	Path() string
}

// Label is the display name of n: its String form when it has one, else
// the base name of its path without the extension.
func Label(n Named) string {
	if s, ok := n.(fmt.Stringer); ok {
		return s.String()
	}
	return strings.TrimSuffix(path.Base(n.Path()), path.Ext(n.Path()))
}

type entry struct {
	name string
	path string
}

var byName = func() map[string]Icon {
	m := make(map[string]Icon, len(table))
	for i, e := range table {
		m[e.name] = Icon(i)
	}
	return m
}()

// Count returns the number of icons in the catalog.
func Count() int {
	return len(table)
}

// All yields every icon in build order. The sequence can be ranged over any
// number of times.
func All() iter.Seq[Icon] {
	return func(yield func(Icon) bool) {
		for i := range table {
			if !yield(Icon(i)) {
				return
			}
		}
	}
}

// Names returns the canonical names of all icons in build order.
func Names() []string {
	names := make([]string, len(table))
	for i, e := range table {
		names[i] = e.name
	}
	return names
}

// Lookup returns the icon with the given canonical name.
func Lookup(name string) (Icon, bool) {
	id, ok := byName[name]
	return id, ok
}

// Must is like Lookup but panics when name is not in the catalog.
func Must(name string) Icon {
	id, ok := byName[name]
	if !ok {
		panic(fmt.Sprintf("icons: unknown icon %q", name))
	}
	return id
}

// Valid reports whether i is part of the catalog.
func (i Icon) Valid() bool {
	return int(i) < len(table)
}

// Name returns the canonical (kebab-case) name, or "" for an invalid icon.
func (i Icon) Name() string {
	if !i.Valid() {
		return ""
	}
	return table[i].name
}

// Path returns the lookup path of the icon's asset, relative to the asset
// source root.
func (i Icon) Path() string {
	if !i.Valid() {
		return ""
	}
	return table[i].path
}

func (i Icon) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Icon(%d)", uint16(i))
	}
	return table[i].name
}
