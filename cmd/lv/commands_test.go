package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/analysis"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/browser"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/config"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/export"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/history"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/search"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/style"
)

func TestSheetFormat(t *testing.T) {
	tests := []struct {
		format   string
		output   string
		explicit bool
		want     string
		wantErr  bool
	}{
		{"svg", "icons.svg", false, "svg", false},
		{"svg", "icons.png", false, "png", false},
		{"svg", "ICONS.PNG", false, "png", false},
		{"svg", "-", false, "svg", false},
		{"svg", "icons.png", true, "svg", false},
		{"PNG", "sheet", true, "png", false},
		{"gif", "icons.gif", true, "", true},
	}
	for _, tt := range tests {
		got, err := sheetFormat(tt.format, tt.output, tt.explicit)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("sheetFormat(%q, %q, %v) = %q, %v; want %q", tt.format, tt.output, tt.explicit, got, err, tt.want)
		}
	}
}

func TestWriteStats(t *testing.T) {
	r := analysis.Report{
		Icons: []analysis.IconMetrics{
			{Name: "heart", Bytes: 1024, Elements: 1, Segments: 9, Score: 1},
			{Name: "minus", Bytes: 1024, Elements: 1, Segments: 2, Score: -1},
			{Name: "gone", Missing: true},
		},
		Missing:  1,
		Segments: analysis.Distribution{Mean: 5.5, Max: 9},
	}
	var buf bytes.Buffer
	writeStats(&buf, r, 1)
	out := buf.String()
	for _, want := range []string{"3 icons, 2.0 KiB of SVG, 1 missing", "segments", "Most complex:", "heart"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "minus") {
		t.Errorf("--top 1 listed a second icon:\n%s", out)
	}

	buf.Reset()
	writeStats(&buf, analysis.Report{}, 5)
	if got := buf.String(); got != "0 icons, 0 B of SVG\n" {
		t.Errorf("empty report = %q", got)
	}
}

func TestWriteHistory(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	writeLog(&buf, nil, now)
	if !strings.Contains(buf.String(), "No icons copied yet.") {
		t.Errorf("empty log = %q", buf.String())
	}

	buf.Reset()
	writeLog(&buf, []history.Copy{
		{Icon: "heart", Color: "#e94560", Size: "l", RotationDeg: 90, CopiedAt: now.Add(-2 * time.Hour)},
		{Icon: "sun", Color: "#ffffff", Size: "m", CopiedAt: now.Add(-time.Minute)},
	}, now)
	out := buf.String()
	for _, want := range []string{"2 hours ago", "heart", "#e94560 l 90°", "1 minute ago"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "°") != 1 {
		t.Errorf("rotation should only show when set:\n%s", out)
	}

	buf.Reset()
	writeUsage(&buf, []history.Usage{{Icon: "heart", Count: 3, Last: now.Add(-time.Hour)}}, now)
	if out := buf.String(); !strings.Contains(out, "3  heart") || !strings.Contains(out, "last 1 hour ago") {
		t.Errorf("usage = %q", out)
	}
}

func TestSheetOptionsMatchBrowserColor(t *testing.T) {
	red := style.RGB(0xe94560)
	for _, dark := range []bool{true, false} {
		for _, chosen := range []style.Color{red, style.White} {
			settings := config.Settings{Dark: dark, Color: chosen, Size: style.Medium}
			opts := sheetOptions(settings, 0, true)
			state := browser.New(search.Catalog, browser.WithDark(dark), browser.WithColor(chosen))
			if opts.Color != state.IconColor() {
				t.Errorf("dark=%v color=%v: sheet draws %v, browser draws %v", dark, chosen, opts.Color, state.IconColor())
			}
		}
	}

	light := sheetOptions(config.Settings{Color: red}, 640, false)
	if light.Background != style.RGB(0xffffff) || light.Width != 640 || light.Labels {
		t.Errorf("light options = %+v", light)
	}
	if dark := sheetOptions(config.Settings{Dark: true, Color: red}, 0, true); dark.Width != export.DefaultSheetOptions().Width {
		t.Errorf("zero width should keep the default, got %v", dark.Width)
	}
}
