package analysis

import (
	"context"
	"math"
	"testing"
	"testing/fstest"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/assets"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/icons"
)

type namedPath string

func (p namedPath) Path() string { return string(p) }

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Distribution
	}{
		{
			name:   "empty",
			values: nil,
			want:   Distribution{},
		},
		{
			name:   "single value",
			values: []float64{7},
			want:   Distribution{Mean: 7, Median: 7, P90: 7, Min: 7, Max: 7},
		},
		{
			name:   "unsorted input",
			values: []float64{5, 1, 3, 2, 4},
			want:   Distribution{Mean: 3, StdDev: math.Sqrt(2.5), Median: 3, P90: 5, Min: 1, Max: 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.values)
			if !approx(got.Mean, tt.want.Mean) || !approx(got.StdDev, tt.want.StdDev) ||
				got.Median != tt.want.Median || got.P90 != tt.want.P90 ||
				got.Min != tt.want.Min || got.Max != tt.want.Max {
				t.Errorf("Summarize(%v) = %+v, want %+v", tt.values, got, tt.want)
			}
		})
	}

	in := []float64{3, 1, 2}
	Summarize(in)
	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Errorf("Summarize reordered its input: %v", in)
	}
}

func TestAnalyze(t *testing.T) {
	fsys := fstest.MapFS{
		"icons/one.svg":   {Data: []byte(`<svg viewBox="0 0 24 24"><path d="M0 0L1 1"/></svg>`)},
		"icons/two.svg":   {Data: []byte(`<svg viewBox="0 0 24 24"><path d="M0 0L1 1L2 2L3 3"/><line x1="0" y1="0" x2="1" y2="1"/></svg>`)},
		"icons/three.svg": {Data: []byte(`<svg viewBox="0 0 24 24"><circle cx="12" cy="12" r="4"/></svg>`)},
		"icons/bad.svg":   {Data: []byte(`<html/>`)},
	}
	items := []icons.Named{
		namedPath("icons/one.svg"),
		namedPath("icons/two.svg"),
		namedPath("icons/three.svg"),
		namedPath("icons/bad.svg"),
		namedPath("icons/gone.svg"),
	}
	report, err := Analyze(context.Background(), assets.New(fsys), items)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(report.Icons) != 5 || report.Missing != 2 {
		t.Fatalf("icons = %d, missing = %d; want 5 and 2", len(report.Icons), report.Missing)
	}
	want := []struct {
		name     string
		elements int
		segments int
	}{
		{"one", 1, 2},
		{"two", 2, 6},
		{"three", 1, 6},
	}
	for i, w := range want {
		m := report.Icons[i]
		if m.Name != w.name || m.Elements != w.elements || m.Segments != w.segments || m.Missing {
			t.Errorf("icon %d = %+v, want %s with %d elements and %d segments", i, m, w.name, w.elements, w.segments)
		}
	}
	if !report.Icons[3].Missing || !report.Icons[4].Missing {
		t.Error("bad and gone should be missing")
	}

	if report.Segments.Min != 2 || report.Segments.Max != 6 || !approx(report.Segments.Mean, 14.0/3) {
		t.Errorf("segments = %+v", report.Segments)
	}
	if report.Icons[0].Score >= 0 || report.Icons[1].Score <= 0 {
		t.Errorf("scores = %v, %v; want below and above the mean", report.Icons[0].Score, report.Icons[1].Score)
	}
	if report.Icons[4].Score != 0 {
		t.Error("missing icons should have no score")
	}

	heavy := report.Heaviest(2)
	if len(heavy) != 2 || heavy[0].Name != "three" || heavy[1].Name != "two" {
		t.Errorf("Heaviest(2) = %+v, want three then two", heavy)
	}
	if got := report.Heaviest(10); len(got) != 3 {
		t.Errorf("Heaviest(10) returned %d icons, want the 3 drawable ones", len(got))
	}
	if got := report.Heaviest(-1); len(got) != 0 {
		t.Errorf("Heaviest(-1) = %v", got)
	}
}

func TestAnalyzeCatalog(t *testing.T) {
	var items []icons.Named
	for id := range icons.All() {
		items = append(items, id)
	}
	report, err := Analyze(context.Background(), assets.Embedded(), items)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.Missing != 0 {
		t.Errorf("Missing = %d, want every bundled icon drawable", report.Missing)
	}
	if report.Icons[0].Name != icons.Activity.Name() {
		t.Errorf("first icon = %q", report.Icons[0].Name)
	}
	if report.Segments.Min < 1 || report.Segments.StdDev <= 0 {
		t.Errorf("segments = %+v", report.Segments)
	}
	if c := report.BytesSegmentsCorrelation; c < -1 || c > 1 {
		t.Errorf("correlation = %v, out of range", c)
	}
}

func TestAnalyzeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Analyze(ctx, assets.Embedded(), []icons.Named{icons.Heart})
	if err == nil {
		t.Error("Analyze with a cancelled context should fail")
	}
}
