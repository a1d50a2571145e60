package version

import (
	"strings"
	"testing"
)

func TestStringUsesCommit(t *testing.T) {
	oldV, oldC := Version, Commit
	t.Cleanup(func() { Version, Commit = oldV, oldC })

	Version, Commit = "v1.2.3", "0123456789abcdef"
	if got := String(); got != "v1.2.3 (0123456789ab)" {
		t.Errorf("String() = %q", got)
	}
	Commit = "abc"
	if got := String(); got != "v1.2.3 (abc)" {
		t.Errorf("String() = %q", got)
	}
}

func TestStringStartsWithVersion(t *testing.T) {
	if got := String(); !strings.HasPrefix(got, Version) {
		t.Errorf("String() = %q, want prefix %q", got, Version)
	}
}
