package assets

import (
	"errors"
	"testing"
)

func TestParseDrawingHeart(t *testing.T) {
	data, err := Embedded().Load("icons/heart.svg")
	if err != nil {
		t.Fatal(err)
	}
	d, err := ParseDrawing(data)
	if err != nil {
		t.Fatalf("ParseDrawing: %v", err)
	}
	if d.ViewBox != [4]float64{0, 0, 24, 24} {
		t.Errorf("ViewBox = %v", d.ViewBox)
	}
	if len(d.Shapes) != 1 || d.Shapes[0].Element != "path" {
		t.Fatalf("Shapes = %+v, want one path", d.Shapes)
	}
	want := Paint{Fill: "none", Stroke: "currentColor", StrokeWidth: 2}
	if d.Shapes[0].Paint != want {
		t.Errorf("Paint = %+v, want %+v", d.Shapes[0].Paint, want)
	}
	if d.Shapes[0].Segments[0].Op != MoveTo {
		t.Error("path should start with a moveto")
	}
}

func TestParseDrawingElements(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" stroke="red">
  <circle cx="12" cy="12" r="4"/>
  <rect x="2" y="2" width="20" height="10" rx="2"/>
  <rect x="0" y="0" width="4" height="4"/>
  <line x1="0" y1="0" x2="24" y2="24"/>
  <polyline points="1,1 2,2 3,1"/>
  <polygon points="0 0 4 0 2 3"/>
  <g fill="blue"><ellipse cx="5" cy="5" rx="2" ry="1" stroke="green"/></g>
  <text>ignored</text>
</svg>`
	d, err := ParseDrawing([]byte(doc))
	if err != nil {
		t.Fatalf("ParseDrawing: %v", err)
	}

	want := []struct {
		element  string
		segments int
	}{
		{"circle", 6},      // moveto, four quarter curves, close
		{"rect", 10},       // moveto, four sides, four corners, close
		{"rect", 5},        // square corners
		{"line", 2},
		{"polyline", 3},
		{"polygon", 4},
		{"ellipse", 6},
	}
	if len(d.Shapes) != len(want) {
		t.Fatalf("got %d shapes, want %d: %+v", len(d.Shapes), len(want), d.Shapes)
	}
	total := 0
	for i, w := range want {
		s := d.Shapes[i]
		if s.Element != w.element || len(s.Segments) != w.segments {
			t.Errorf("shape %d = %s with %d segments, want %s with %d", i, s.Element, len(s.Segments), w.element, w.segments)
		}
		total += w.segments
	}
	if d.Segments() != total {
		t.Errorf("Segments() = %d, want %d", d.Segments(), total)
	}

	if p := d.Shapes[0].Paint; p.Stroke != "red" || p.Fill != "black" || p.StrokeWidth != 1 {
		t.Errorf("circle paint = %+v, want inherited stroke and SVG defaults", p)
	}
	if p := d.Shapes[6].Paint; p.Fill != "blue" || p.Stroke != "green" {
		t.Errorf("ellipse paint = %+v, want group fill and own stroke", p)
	}

	// The circle closes on its start point.
	c := d.Shapes[0].Segments
	if !near(c[len(c)-2].P[2], c[0].P[0]) {
		t.Errorf("circle ends at %v, starts at %v", c[len(c)-2].P[2], c[0].P[0])
	}
}

func TestParseDrawingViewBoxFallback(t *testing.T) {
	d, err := ParseDrawing([]byte(`<svg width="16px" height="8"><path d="M0 0L1 1"/></svg>`))
	if err != nil {
		t.Fatal(err)
	}
	if d.ViewBox != [4]float64{0, 0, 16, 8} {
		t.Errorf("ViewBox = %v, want 0 0 16 8", d.ViewBox)
	}

	d, err = ParseDrawing([]byte(`<svg><path d="M0 0L1 1"/></svg>`))
	if err != nil {
		t.Fatal(err)
	}
	if d.ViewBox != [4]float64{0, 0, 24, 24} {
		t.Errorf("ViewBox = %v, want the 24 unit default", d.ViewBox)
	}
}

func TestParseDrawingErrors(t *testing.T) {
	if _, err := ParseDrawing([]byte("<g/>")); !errors.Is(err, ErrNotSVG) {
		t.Errorf("non-svg root: err = %v", err)
	}
	if _, err := ParseDrawing(nil); !errors.Is(err, ErrNotSVG) {
		t.Errorf("empty: err = %v", err)
	}
	if _, err := ParseDrawing([]byte(`<svg viewBox="0 0 24"/>`)); err == nil {
		t.Error("short viewBox should fail")
	}
	if _, err := ParseDrawing([]byte(`<svg viewBox="0 0 24 24"><path d="L1 1"/></svg>`)); err == nil {
		t.Error("bad path data should fail")
	}
}

func TestEveryEmbeddedIconParses(t *testing.T) {
	entries, err := embedded.ReadDir("icons")
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		data, err := Embedded().Load("icons/" + e.Name())
		if err != nil {
			t.Fatal(err)
		}
		d, err := ParseDrawing(data)
		if err != nil {
			t.Errorf("%s: %v", e.Name(), err)
			continue
		}
		if len(d.Shapes) == 0 || d.Segments() == 0 {
			t.Errorf("%s: no geometry", e.Name())
		}
	}
}
