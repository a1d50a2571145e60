// Package export renders icon sets to files outside the terminal.
//
// Sheet lays a set of icons out with the browser grid and writes it as one
// SVG contact sheet, each icon in its own card with the chosen color, size
// and rotation applied. PNG rasterizes the same layout. PreviewServer serves
// a sheet over HTTP.
package export

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/assets"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/grid"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/icons"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/style"

	svg "github.com/ajstarks/svgo"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// SheetOptions controls the contact sheet layout and icon style.
type SheetOptions struct {
	Geometry    grid.Geometry
	Width       float64 // sheet width; the column count follows from it
	Color       style.Color
	Background  style.Color
	CardColor   style.Color
	LabelColor  style.Color
	Size        style.Size
	RotationDeg float64
	Labels      bool
	Concurrency int // parallel asset loads
	Logger      *log.Logger
}

// DefaultSheetOptions matches the browser's dark theme.
func DefaultSheetOptions() SheetOptions {
	return SheetOptions{
		Geometry:    grid.Default,
		Width:       800,
		Color:       style.White,
		Background:  style.RGB(0x000000),
		CardColor:   style.RGB(0x0b0b0b),
		LabelColor:  style.RGB(0x8b8b8b),
		Size:        style.Large,
		Labels:      true,
		Concurrency: 8,
	}
}

// SheetStats describes a written sheet.
type SheetStats struct {
	Icons   int
	Missing int // drawn as empty cards
	Columns int
	Rows    int
	Width   int
	Height  int
}

// sheetHost is the text style icons are sized against.
var sheetHost = style.Host{TextSizePx: 16, RemPx: 16}

// sheetLayout is the pixel placement shared by the SVG and PNG sheets.
type sheetLayout struct {
	geometry grid.Geometry
	layout   grid.Layout
	cols     int
	card     int
	iconPx   float64
	resolved style.Resolved
}

func (l sheetLayout) origin(row, col int) (int, int) {
	g := l.geometry
	return px(g.Padding + float64(col)*(g.CardSize+g.Gap)), px(g.Padding + float64(row)*g.RowHeight())
}

// prepare fills in option defaults and lays out n items.
func prepare(opts *SheetOptions, n int) (sheetLayout, SheetStats) {
	if opts.Geometry.CardSize <= 0 {
		opts.Geometry = grid.Default
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	g := opts.Geometry
	layout := grid.Compute(opts.Width, g, n)
	cols := min(layout.ItemsPerRow, max(n, 1))
	stats := SheetStats{
		Icons:   n,
		Columns: cols,
		Rows:    layout.RowCount,
		Width:   px(2*g.Padding + float64(cols)*g.CardSize + float64(cols-1)*g.Gap),
		Height:  px(2*g.Padding + float64(layout.RowCount)*g.RowHeight() - g.Gap),
	}
	if layout.RowCount == 0 {
		stats.Height = px(2 * g.Padding)
	}

	req := style.For(nil).WithColor(opts.Color).WithSize(opts.Size).Rotate(opts.RotationDeg)
	resolved := style.Resolve(req, sheetHost)
	return sheetLayout{
		geometry: g,
		layout:   layout,
		cols:     cols,
		card:     px(g.CardSize),
		iconPx:   min(resolved.SizePx, g.CardSize),
		resolved: resolved,
	}, stats
}

// Sheet writes an SVG contact sheet of items to w, loading each icon's bytes
// from src. Icons whose asset is missing get an empty card.
func Sheet(ctx context.Context, w io.Writer, src assets.Source, items []icons.Named, opts SheetOptions) (SheetStats, error) {
	sl, stats := prepare(&opts, len(items))

	bodies, missing, err := loadAll(ctx, src, items, opts.Concurrency, opts.Logger, parseBody)
	if err != nil {
		return SheetStats{}, err
	}
	stats.Missing = missing

	canvas := svg.New(w)
	canvas.Start(stats.Width, stats.Height)
	canvas.Title(fmt.Sprintf("%d icons", len(items)))
	canvas.Rect(0, 0, stats.Width, stats.Height, "fill:"+opts.Background.Hex())

	card := sl.card
	rows := grid.Window(grid.Range{Start: 0, End: sl.layout.RowCount}, items, sl.cols)
	for _, row := range rows {
		for col, item := range row.Items {
			idx := row.Index*sl.cols + col
			x, y := sl.origin(row.Index, col)

			canvas.Roundrect(x, y, card, card, 8, 8, "fill:"+opts.CardColor.Hex())
			if bodies[idx] != nil {
				drawIcon(canvas, *bodies[idx], x, y, card, sl.iconPx, sl.resolved)
			}
			if opts.Labels {
				canvas.Text(x+card/2, y+card-6, icons.Label(item),
					"text-anchor:middle;font-family:sans-serif;font-size:9px;fill:"+opts.LabelColor.Hex())
			}
		}
	}
	canvas.End()
	return stats, nil
}

// drawIcon nests the icon's shapes in a sized, rotated <svg> centered in the
// card at (x, y). Root presentation attributes are carried over with
// currentColor replaced by the resolved color.
func drawIcon(canvas *svg.SVG, body iconBody, x, y, card int, sizePx float64, r style.Resolved) {
	size := px(sizePx)
	ix := x + (card-size)/2
	iy := y + (card-size)/2 - 4
	cx, cy := ix+size/2, iy+size/2

	canvas.Gtransform(fmt.Sprintf("rotate(%g %d %d)", r.Degrees(), cx, cy))
	var vb strings.Builder
	xml.EscapeText(&vb, []byte(body.viewBox))
	fmt.Fprintf(canvas.Writer, `<svg x="%d" y="%d" width="%d" height="%d" viewBox="%s"%s>`,
		ix, iy, size, size, vb.String(), presentation(body.attrs, r.Color))
	canvas.Writer.Write(body.inner)
	fmt.Fprintln(canvas.Writer, "</svg>")
	canvas.Gend()
}

// presentation renders the root attributes that style the shapes, escaping
// the decoded values for an attribute context.
func presentation(attrs map[string]string, c style.Color) string {
	keys := []string{"fill", "stroke", "stroke-width", "stroke-linecap", "stroke-linejoin"}
	var b strings.Builder
	for _, k := range keys {
		v, ok := attrs[k]
		if !ok {
			continue
		}
		if v == "currentColor" {
			v = c.Hex()
		}
		fmt.Fprintf(&b, ` %s="`, k)
		xml.EscapeText(&b, []byte(v))
		b.WriteByte('"')
	}
	return b.String()
}

type iconBody struct {
	viewBox string
	attrs   map[string]string
	inner   []byte
}

func parseBody(data []byte) (iconBody, error) {
	info, err := assets.DescribeSVG(data)
	if err != nil {
		return iconBody{}, err
	}
	inner, err := assets.InnerSVG(data)
	if err != nil {
		return iconBody{}, err
	}
	viewBox := info.ViewBox
	if viewBox == "" {
		viewBox = "0 0 24 24"
	}
	return iconBody{viewBox: viewBox, attrs: info.Attrs, inner: inner}, nil
}

// loadAll fetches and parses every item's asset with at most limit loads in
// flight. A missing or unparseable asset leaves a nil entry.
func loadAll[T any](ctx context.Context, src assets.Source, items []icons.Named, limit int, logger *log.Logger, parse func([]byte) (T, error)) ([]*T, int, error) {
	out := make([]*T, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := src.Load(item.Path())
			if errors.Is(err, assets.ErrNotFound) {
				logger.Warn("asset missing", "path", item.Path())
				return nil
			}
			if err != nil {
				return err
			}
			v, err := parse(data)
			if err != nil {
				logger.Warn("asset unreadable", "path", item.Path(), "err", err)
				return nil
			}
			out[i] = &v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("load assets: %w", err)
	}
	missing := 0
	for _, v := range out {
		if v == nil {
			missing++
		}
	}
	return out, missing, nil
}

func px(v float64) int {
	return int(math.Round(v))
}
