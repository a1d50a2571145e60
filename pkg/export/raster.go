package export

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/assets"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/grid"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/icons"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/style"

	"git.sr.ht/~sbinet/gg"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font/basicfont"
)

// labelCells is how many 7px bitmap glyphs fit under a default card.
const labelCells = 10

// PNG writes the contact sheet Sheet would produce as a PNG image. Icon
// geometry is rasterized directly, so only shapes assets.ParseDrawing
// understands are drawn. Labels use a 7x13 bitmap face and are cut to fit.
func PNG(ctx context.Context, w io.Writer, src assets.Source, items []icons.Named, opts SheetOptions) (SheetStats, error) {
	sl, stats := prepare(&opts, len(items))

	drawings, missing, err := loadAll(ctx, src, items, opts.Concurrency, opts.Logger, assets.ParseDrawing)
	if err != nil {
		return SheetStats{}, err
	}
	stats.Missing = missing

	dc := gg.NewContext(stats.Width, stats.Height)
	dc.SetColor(opts.Background)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	card := float64(sl.card)
	rows := grid.Window(grid.Range{Start: 0, End: sl.layout.RowCount}, items, sl.cols)
	for _, row := range rows {
		for col, item := range row.Items {
			idx := row.Index*sl.cols + col
			ix, iy := sl.origin(row.Index, col)
			x, y := float64(ix), float64(iy)

			dc.SetColor(opts.CardColor)
			dc.DrawRoundedRectangle(x, y, card, card, 8)
			dc.Fill()
			if d := drawings[idx]; d != nil {
				rasterIcon(dc, *d, x, y, card, sl.iconPx, sl.resolved)
			}
			if opts.Labels {
				dc.SetColor(opts.LabelColor)
				dc.DrawStringAnchored(fitLabel(icons.Label(item), labelCells), x+card/2, y+card-6, 0.5, 0)
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return SheetStats{}, err
	}
	if err := dc.EncodePNG(w); err != nil {
		return SheetStats{}, fmt.Errorf("encode png: %w", err)
	}
	return stats, nil
}

// rasterIcon draws d scaled into a sizePx square centered in the card at
// (x, y), rotated about its center.
func rasterIcon(dc *gg.Context, d assets.Drawing, x, y, card, sizePx float64, r style.Resolved) {
	vb := d.ViewBox
	if vb[2] <= 0 || vb[3] <= 0 {
		return
	}
	scale := sizePx / max(vb[2], vb[3])
	left := x + (card-sizePx)/2
	top := y + (card-sizePx)/2 - 4

	dc.Push()
	defer dc.Pop()
	dc.RotateAbout(r.Rotation, left+sizePx/2, top+sizePx/2)
	dc.Translate(left, top)
	dc.Scale(scale, scale)
	dc.Translate(-vb[0], -vb[1])
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	for _, s := range d.Shapes {
		fill, hasFill := paintColor(s.Paint.Fill, r.Color)
		stroke, hasStroke := paintColor(s.Paint.Stroke, r.Color)
		if !hasFill && !hasStroke {
			continue
		}
		tracePath(dc, s.Segments)
		if hasFill {
			dc.SetColor(fill)
			if hasStroke {
				dc.FillPreserve()
			} else {
				dc.Fill()
			}
		}
		if hasStroke {
			dc.SetColor(stroke)
			// Path points are transformed, line widths are not.
			dc.SetLineWidth(s.Paint.StrokeWidth * scale)
			dc.Stroke()
		}
		dc.ClearPath()
	}
}

func tracePath(dc *gg.Context, segs []assets.Segment) {
	for _, s := range segs {
		p := s.P
		switch s.Op {
		case assets.MoveTo:
			dc.MoveTo(p[0].X, p[0].Y)
		case assets.LineTo:
			dc.LineTo(p[0].X, p[0].Y)
		case assets.QuadTo:
			dc.QuadraticTo(p[0].X, p[0].Y, p[1].X, p[1].Y)
		case assets.CubicTo:
			dc.CubicTo(p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y)
		case assets.Close:
			dc.ClosePath()
		}
	}
}

// paintColor resolves an SVG paint value. currentColor and values that do
// not parse take the icon color.
func paintColor(v string, current style.Color) (color.Color, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "none", "transparent":
		return nil, false
	case "currentcolor":
		return current, true
	case "black":
		return style.Black, true
	case "white":
		return style.White, true
	}
	if c, err := style.LookupColor(v); err == nil {
		return c, true
	}
	return current, true
}

// fitLabel cuts s to at most cells terminal cells. The bitmap face only
// has ASCII glyphs, so the tail is "...".
func fitLabel(s string, cells int) string {
	return runewidth.Truncate(s, cells, "...")
}
