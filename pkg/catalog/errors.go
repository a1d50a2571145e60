package catalog

import "fmt"

// DirError reports an asset directory that could not be read.
type DirError struct {
	Dir string
	Err error
}

func (e *DirError) Error() string {
	return fmt.Sprintf("read asset directory %s: %v", e.Dir, e.Err)
}

func (e *DirError) Unwrap() error {
	return e.Err
}

// DuplicateError reports two source files that normalize to the same
// canonical name or the same Go identifier. Generation cannot continue with
// an ambiguous catalog, so neither file is dropped silently.
type DuplicateError struct {
	Kind   string // "name" or "identifier"
	Value  string
	First  string
	Second string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate icon %s %q: %s and %s", e.Kind, e.Value, e.First, e.Second)
}

// ReservedError reports an identifier that would shadow part of the
// generated package's API.
type ReservedError struct {
	Ident string
	File  string
}

func (e *ReservedError) Error() string {
	return fmt.Sprintf("icon identifier %q from %s is reserved", e.Ident, e.File)
}

// NameError reports a file whose base name has no usable characters.
type NameError struct {
	File string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("icon file %s has an empty canonical name", e.File)
}
