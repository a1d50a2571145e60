// Package analysis measures how heavy the icons of a set are to draw and how
// that weight is distributed over the catalog.
package analysis

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/assets"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/icons"

	"gonum.org/v1/gonum/stat"
)

// ============================================================================
// Icon Complexity Types
// ============================================================================

// IconMetrics describes one icon's asset
type IconMetrics struct {
	Name     string  `json:"name"`
	Path     string  `json:"path"`
	Bytes    int     `json:"bytes"`             // Asset size
	Elements int     `json:"elements"`          // Drawable elements
	Segments int     `json:"segments"`          // Path segments once arcs and shapes are flattened
	Score    float64 `json:"score"`             // Segments as a z-score against the set
	Missing  bool    `json:"missing,omitempty"` // Asset not found or not drawable
}

// Distribution summarizes one metric over the set
type Distribution struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Report is the complexity analysis of an icon set
type Report struct {
	Icons    []IconMetrics `json:"icons"`
	Missing  int           `json:"missing"`
	Bytes    Distribution  `json:"bytes"`
	Elements Distribution  `json:"elements"`
	Segments Distribution  `json:"segments"`
	// Pearson correlation of asset size and segment count; 0 when either
	// is constant.
	BytesSegmentsCorrelation float64 `json:"bytes_segments_correlation"`
}

// ============================================================================
// Analysis
// ============================================================================

// Analyze loads and measures every item. Missing or undrawable assets are
// reported but left out of the distributions.
func Analyze(ctx context.Context, src assets.Source, items []icons.Named) (Report, error) {
	report := Report{Icons: make([]IconMetrics, 0, len(items))}
	var bytes, elements, segments []float64

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		m := IconMetrics{Name: icons.Label(item), Path: item.Path()}
		data, err := src.Load(item.Path())
		switch {
		case errors.Is(err, assets.ErrNotFound):
			m.Missing = true
		case err != nil:
			return Report{}, fmt.Errorf("analyze %s: %w", item.Path(), err)
		default:
			d, err := assets.ParseDrawing(data)
			if err != nil {
				m.Missing = true
				break
			}
			m.Bytes = len(data)
			m.Elements = len(d.Shapes)
			m.Segments = d.Segments()
			bytes = append(bytes, float64(m.Bytes))
			elements = append(elements, float64(m.Elements))
			segments = append(segments, float64(m.Segments))
		}
		if m.Missing {
			report.Missing++
		}
		report.Icons = append(report.Icons, m)
	}

	report.Bytes = Summarize(bytes)
	report.Elements = Summarize(elements)
	report.Segments = Summarize(segments)
	report.BytesSegmentsCorrelation = correlation(bytes, segments)

	if sd := report.Segments.StdDev; sd > 0 {
		for i := range report.Icons {
			if m := &report.Icons[i]; !m.Missing {
				m.Score = (float64(m.Segments) - report.Segments.Mean) / sd
			}
		}
	}
	return report, nil
}

// Summarize computes the distribution of values. An empty input gives the
// zero Distribution and a single value has no spread.
func Summarize(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	d := Distribution{
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
	if len(sorted) > 1 {
		d.StdDev = stat.StdDev(sorted, nil)
	}
	return d
}

func correlation(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return 0
	}
	c := stat.Correlation(x, y, nil)
	if math.IsNaN(c) {
		return 0
	}
	return c
}

// Heaviest returns up to n drawable icons with the most segments, ties
// broken by name.
func (r Report) Heaviest(n int) []IconMetrics {
	out := make([]IconMetrics, 0, len(r.Icons))
	for _, m := range r.Icons {
		if !m.Missing {
			out = append(out, m)
		}
	}
	slices.SortFunc(out, func(a, b IconMetrics) int {
		if c := cmp.Compare(b.Segments, a.Segments); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out[:min(max(n, 0), len(out))]
}
