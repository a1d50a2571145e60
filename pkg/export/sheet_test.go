package export

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/assets"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/icons"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/style"
)

func named(ids ...icons.Icon) []icons.Named {
	out := make([]icons.Named, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}

// wellFormed fails the test if data is not parseable XML.
func wellFormed(t *testing.T, data []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			t.Fatalf("sheet is not well-formed XML: %v\n%s", err, data)
		}
	}
}

func TestSheetDrawsEveryIcon(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultSheetOptions()
	opts.Color = style.RGB(0xe94560)
	opts.RotationDeg = 90

	items := named(icons.Heart, icons.Home, icons.Search, icons.Sun)
	stats, err := Sheet(context.Background(), &buf, assets.Embedded(), items, opts)
	if err != nil {
		t.Fatalf("Sheet: %v", err)
	}
	if stats.Icons != 4 || stats.Missing != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Columns != 4 || stats.Rows != 1 {
		t.Errorf("layout = %d x %d, want 4 x 1", stats.Columns, stats.Rows)
	}

	out := buf.String()
	wellFormed(t, buf.Bytes())
	if n := strings.Count(out, `viewBox="0 0 24 24"`); n != 4 {
		t.Errorf("nested icons = %d, want 4", n)
	}
	if !strings.Contains(out, `stroke="#e94560"`) {
		t.Error("icon color not applied")
	}
	if strings.Contains(out, "currentColor") {
		t.Error("currentColor left in output")
	}
	if !strings.Contains(out, "rotate(90 ") {
		t.Error("rotation not applied")
	}
	for _, id := range []icons.Icon{icons.Heart, icons.Home, icons.Search, icons.Sun} {
		if !strings.Contains(out, ">"+id.Name()+"<") {
			t.Errorf("label %q missing", id.Name())
		}
	}
}

func TestSheetMissingAssetIsBlank(t *testing.T) {
	fsys := fstest.MapFS{
		"icons/heart.svg": {Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" stroke="currentColor"><path d="M0 0"/></svg>`)},
	}
	var buf bytes.Buffer
	stats, err := Sheet(context.Background(), &buf, assets.New(fsys), named(icons.Heart, icons.Home), DefaultSheetOptions())
	if err != nil {
		t.Fatalf("Sheet: %v", err)
	}
	if stats.Missing != 1 {
		t.Errorf("Missing = %d, want 1", stats.Missing)
	}
	wellFormed(t, buf.Bytes())
	if n := strings.Count(buf.String(), "<path"); n != 1 {
		t.Errorf("paths = %d, want 1", n)
	}
}

func TestSheetWrapsRows(t *testing.T) {
	var items []icons.Named
	for id := range icons.All() {
		items = append(items, id)
		if len(items) == 10 {
			break
		}
	}
	opts := DefaultSheetOptions()
	opts.Width = 300
	opts.Labels = false

	var buf bytes.Buffer
	stats, err := Sheet(context.Background(), &buf, assets.Embedded(), items, opts)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Columns != 3 || stats.Rows != 4 {
		t.Errorf("layout = %d x %d, want 3 x 4", stats.Columns, stats.Rows)
	}
	if want := 2*16 + 4*80 - 8; stats.Height != want {
		t.Errorf("Height = %d, want %d", stats.Height, want)
	}
	if strings.Contains(buf.String(), "<text") {
		t.Error("labels drawn with Labels off")
	}
}

func TestSheetEmpty(t *testing.T) {
	var buf bytes.Buffer
	stats, err := Sheet(context.Background(), &buf, assets.Embedded(), nil, DefaultSheetOptions())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Rows != 0 || stats.Height != 32 {
		t.Errorf("stats = %+v", stats)
	}
	wellFormed(t, buf.Bytes())
}

type pathOnly string

func (p pathOnly) Path() string { return string(p) }

func TestPresentationEscapesValues(t *testing.T) {
	attrs := map[string]string{"stroke": "currentColor", "fill": `url("#a")&b`, "stroke-width": "2"}
	got := presentation(attrs, style.RGB(0xe94560))
	want := ` fill="url(&#34;#a&#34;)&amp;b" stroke="#e94560" stroke-width="2"`
	if got != want {
		t.Errorf("presentation = %q, want %q", got, want)
	}
}

func TestSheetWithQuotedAttributesIsWellFormed(t *testing.T) {
	fsys := fstest.MapFS{
		"icons/odd.svg": {Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="a&quot;b&amp;c" stroke="currentColor"><path d="M0 0L24 24"/></svg>`)},
	}
	var buf bytes.Buffer
	stats, err := Sheet(context.Background(), &buf, assets.New(fsys), []icons.Named{pathOnly("icons/odd.svg")}, DefaultSheetOptions())
	if err != nil {
		t.Fatalf("Sheet: %v", err)
	}
	if stats.Missing != 0 {
		t.Fatalf("Missing = %d, want the asset drawn", stats.Missing)
	}
	wellFormed(t, buf.Bytes())
	if !bytes.Contains(buf.Bytes(), []byte(`fill="a&#34;b&amp;c"`)) {
		t.Errorf("escaped fill not found in sheet:\n%s", buf.Bytes())
	}
	if !bytes.Contains(buf.Bytes(), []byte(">odd<")) {
		t.Errorf("label from the path not found:\n%s", buf.Bytes())
	}
}
