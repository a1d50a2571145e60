package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/icons"
)

func TestWritePlain(t *testing.T) {
	matches := []icons.Icon{icons.Heart, icons.Sun}

	var buf bytes.Buffer
	writePlain(&buf, matches, false)
	if got, want := buf.String(), "heart\nsun\n"; got != want {
		t.Errorf("names = %q, want %q", got, want)
	}

	buf.Reset()
	writePlain(&buf, matches, true)
	want := "heart\ticons/heart.svg\nsun\ticons/sun.svg\n"
	if got := buf.String(); got != want {
		t.Errorf("paths = %q, want %q", got, want)
	}
}

func TestMarkdownTable(t *testing.T) {
	doc := markdownTable("sun", []icons.Icon{icons.Sun})
	for _, want := range []string{"`sun`", "(1 of ", "| sun | `icons/sun.svg` |"} {
		if !strings.Contains(doc, want) {
			t.Errorf("markdown missing %q:\n%s", want, doc)
		}
	}

	empty := markdownTable("zzz", nil)
	if !strings.Contains(empty, "No icons match") {
		t.Errorf("empty table = %q", empty)
	}
	if strings.Contains(empty, "| Name |") {
		t.Error("empty result should not print a table header")
	}
}
