// Package catalog turns a directory of icon assets into the closed,
// ordered table that iconsgen compiles into package icons.
//
// Scan is the only place that touches the file system. Everything it
// returns is derived deterministically from the sorted directory listing, so
// two scans of the same listing always produce the same table.
package catalog

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultExt is the asset extension recognized when Options.Ext is empty.
const DefaultExt = "svg"

// DefaultRoot is the lookup path prefix used when Options.Root is empty.
const DefaultRoot = "icons"

// Reserved lists identifiers already declared by package icons. An asset
// whose identifier lands on one of these would not compile.
var Reserved = []string{"Icon", "Named", "Count", "All", "Names", "Lookup", "Must", "Label", "Fingerprint", "AssetDir"}

// Entry is one icon of the generated catalog.
type Entry struct {
	Ident string // exported Go identifier, e.g. "ArrowUp"
	Name  string // canonical name, e.g. "arrow-up"
	Path  string // lookup path, e.g. "icons/arrow-up.svg"
	File  string // source file base name, e.g. "arrow-up.svg"
}

// Options configures Scan.
type Options struct {
	Ext      string      // asset extension without the dot; DefaultExt if empty
	Root     string      // lookup path prefix; DefaultRoot if empty
	Reserved []string    // identifiers to reject; Reserved if nil
	Logger   *log.Logger // receives warnings; discarded if nil
}

func (o Options) withDefaults() Options {
	if o.Ext == "" {
		o.Ext = DefaultExt
	}
	o.Ext = strings.TrimPrefix(o.Ext, ".")
	if o.Root == "" {
		o.Root = DefaultRoot
	}
	if o.Reserved == nil {
		o.Reserved = Reserved
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Scan reads dir and returns one Entry per asset file, ordered by file name
// (byte-wise ascending). Only files whose extension is exactly Options.Ext
// are assets; others and subdirectories are ignored. Scan fails with a *DirError when dir cannot be read, and with a
// *DuplicateError, *ReservedError or *NameError when the listing cannot be
// turned into an unambiguous catalog.
func Scan(dir string, opts Options) ([]Entry, error) {
	opts = opts.withDefaults()

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &DirError{Dir: dir, Err: err}
	}

	var files []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		ext := strings.TrimPrefix(filepath.Ext(de.Name()), ".")
		if ext != opts.Ext {
			if strings.EqualFold(ext, opts.Ext) {
				opts.Logger.Warn("skipping asset: extension must match exactly",
					"file", filepath.Join(dir, de.Name()), "want", "."+opts.Ext)
			}
			continue
		}
		files = append(files, de.Name())
	}
	sort.Strings(files)

	reserved := make(map[string]bool, len(opts.Reserved))
	for _, r := range opts.Reserved {
		reserved[r] = true
	}

	entries := make([]Entry, 0, len(files))
	byName := make(map[string]string, len(files))
	byIdent := make(map[string]string, len(files))

	for _, file := range files {
		stem := strings.TrimSuffix(file, filepath.Ext(file))
		name := CanonicalName(stem)
		full := filepath.Join(dir, file)
		if name == "" {
			return nil, &NameError{File: full}
		}
		if prev, ok := byName[name]; ok {
			return nil, &DuplicateError{Kind: "name", Value: name, First: filepath.Join(dir, prev), Second: full}
		}
		ident := Identifier(name)
		if reserved[ident] {
			return nil, &ReservedError{Ident: ident, File: full}
		}
		if prev, ok := byIdent[ident]; ok {
			return nil, &DuplicateError{Kind: "identifier", Value: ident, First: filepath.Join(dir, prev), Second: full}
		}
		byName[name] = file
		byIdent[ident] = file

		if stem != name {
			opts.Logger.Warn("asset file name is not canonical; its lookup path will not resolve until renamed",
				"file", full, "name", name)
		}

		entries = append(entries, Entry{
			Ident: ident,
			Name:  name,
			Path:  path.Join(opts.Root, name+"."+opts.Ext),
			File:  file,
		})
	}

	opts.Logger.Debug("scanned asset directory", "dir", dir, "icons", len(entries))
	return entries, nil
}
