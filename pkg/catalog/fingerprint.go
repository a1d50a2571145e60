package catalog

import "hash/fnv"

// Fingerprint hashes the source file names of entries (FNV-1a, 64 bit, each
// name followed by a newline). It changes whenever a file is added, removed
// or renamed and ignores file contents, which do not affect the table.
func Fingerprint(entries []Entry) uint64 {
	h := fnv.New64a()
	for _, e := range entries {
		h.Write([]byte(e.File))
		h.Write([]byte{'\n'})
	}
	return h.Sum64()
}

// Stale reports whether the listing of dir no longer matches fingerprint.
func Stale(dir string, opts Options, fingerprint uint64) (bool, error) {
	entries, err := Scan(dir, opts)
	if err != nil {
		return false, err
	}
	return Fingerprint(entries) != fingerprint, nil
}
