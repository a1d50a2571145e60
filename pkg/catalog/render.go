package catalog

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"text/template"
)

// RenderOptions configures Render.
type RenderOptions struct {
	Package   string // package clause of the generated file
	Dir       string // asset directory, recorded as AssetDir
	Generator string // program name for the header; "iconsgen" if empty
}

var genTemplate = template.Must(template.New("icons").Parse(`// Code generated by {{.Generator}} from {{.Dir}}; DO NOT EDIT.

package {{.Package}}

// AssetDir is the directory this table was generated from.
const AssetDir = {{printf "%q" .Dir}}

// Fingerprint identifies the asset listing this table was generated from.
const Fingerprint uint64 = {{printf "0x%016x" .Fingerprint}}

// Icons in build order. Each constant indexes table.
const (
{{- range $i, $e := .Entries}}
	{{$e.Ident}}{{if eq $i 0}} Icon = iota{{end}}
{{- end}}
)

var table = [...]entry{
{{- range .Entries}}
	{ {{- printf "%q" .Name}}, {{printf "%q" .Path -}} },
{{- end}}
}
`))

// Render produces the gofmt'd Go source of the catalog table for entries.
func Render(entries []Entry, opts RenderOptions) ([]byte, error) {
	if opts.Package == "" {
		return nil, fmt.Errorf("render catalog: package name is required")
	}
	if opts.Generator == "" {
		opts.Generator = "iconsgen"
	}

	var buf bytes.Buffer
	err := genTemplate.Execute(&buf, struct {
		RenderOptions
		Fingerprint uint64
		Entries     []Entry
	}{
		RenderOptions: RenderOptions{
			Package:   opts.Package,
			Dir:       filepath.ToSlash(opts.Dir),
			Generator: opts.Generator,
		},
		Fingerprint: Fingerprint(entries),
		Entries:     entries,
	})
	if err != nil {
		return nil, fmt.Errorf("render catalog: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated catalog: %w", err)
	}
	return src, nil
}
