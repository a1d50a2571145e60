package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/catalog"

	"github.com/charmbracelet/log"
)

// fixture creates an asset directory with the named files and returns
// options that generate into a temp file next to it.
func fixture(t *testing.T, files ...string) options {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "icons")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("<svg/>"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return options{
		dir:  dir,
		out:  filepath.Join(root, "icons_gen.go"),
		pkg:  "icons",
		root: catalog.DefaultRoot,
		ext:  catalog.DefaultExt,
	}
}

func quiet() *log.Logger { return log.New(io.Discard) }

func TestGenerateWritesTable(t *testing.T) {
	opts := fixture(t, "heart.svg", "sun.svg")
	if err := run(opts, quiet()); err != nil {
		t.Fatalf("run: %v", err)
	}
	src, err := os.ReadFile(opts.out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"package icons", "Heart", "Sun", `"icons/heart.svg"`} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated file missing %q", want)
		}
	}
}

func TestGenerateSkipsUnchangedOutput(t *testing.T) {
	opts := fixture(t, "heart.svg")
	if err := generate(opts, quiet()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	if err := os.Chtimes(opts.out, old, old); err != nil {
		t.Fatal(err)
	}

	if err := generate(opts, quiet()); err != nil {
		t.Fatalf("second generate: %v", err)
	}
	info, err := os.Stat(opts.out)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(old) {
		t.Errorf("unchanged output was rewritten (mtime %v, want %v)", info.ModTime(), old)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		prepare   func(t *testing.T, opts options)
		wantErr   bool
		wantStale bool
	}{
		{
			name:    "up to date",
			prepare: func(t *testing.T, opts options) {},
		},
		{
			name: "edited output",
			prepare: func(t *testing.T, opts options) {
				if err := os.WriteFile(opts.out, []byte("package icons\n"), 0644); err != nil {
					t.Fatal(err)
				}
			},
			wantErr:   true,
			wantStale: true,
		},
		{
			name: "asset added",
			prepare: func(t *testing.T, opts options) {
				if err := os.WriteFile(filepath.Join(opts.dir, "star.svg"), []byte("<svg/>"), 0644); err != nil {
					t.Fatal(err)
				}
			},
			wantErr:   true,
			wantStale: true,
		},
		{
			name: "output missing",
			prepare: func(t *testing.T, opts options) {
				if err := os.Remove(opts.out); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := fixture(t, "heart.svg", "sun.svg")
			if err := generate(opts, quiet()); err != nil {
				t.Fatalf("generate: %v", err)
			}
			tt.prepare(t, opts)
			before, _ := os.ReadFile(opts.out)

			opts.check = true
			err := run(opts, quiet())
			if (err != nil) != tt.wantErr {
				t.Fatalf("run -check error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := errors.Is(err, errStale); got != tt.wantStale {
				t.Errorf("errors.Is(err, errStale) = %v, want %v (err %v)", got, tt.wantStale, err)
			}
			after, _ := os.ReadFile(opts.out)
			if string(before) != string(after) {
				t.Error("-check modified the generated file")
			}
		})
	}
}

func TestGenerateDuplicateAbortsWithoutWriting(t *testing.T) {
	opts := fixture(t, "Arrow_Up.svg", "arrow-up.svg")
	err := run(opts, quiet())

	var dup *catalog.DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("run error = %v, want *catalog.DuplicateError", err)
	}
	for _, want := range []string{"Arrow_Up.svg", "arrow-up.svg"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not name %s", err, want)
		}
	}
	if _, err := os.Stat(opts.out); !os.IsNotExist(err) {
		t.Errorf("output written despite the duplicate: %v", err)
	}
}

func TestGenerateMissingDir(t *testing.T) {
	opts := fixture(t)
	opts.dir = filepath.Join(opts.dir, "missing")
	err := run(opts, quiet())

	var dirErr *catalog.DirError
	if !errors.As(err, &dirErr) {
		t.Fatalf("run error = %v, want *catalog.DirError", err)
	}
}
