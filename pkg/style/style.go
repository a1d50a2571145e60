// Package style resolves the color, size and rotation an icon is drawn with.
//
// A Request carries what the caller asked for; a Host carries what the
// surrounding text style provides. Resolve combines the two:
//
//   - an explicit color wins over the host default;
//   - an explicit pixel size wins outright, then a size preset scaled by the
//     host's rem, then the host's text size;
//   - rotation is given in degrees and resolved to radians.
package style

import (
	"math"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/icons"
)

// Rotations are the angles offered by the rotation picker, in degrees.
var Rotations = []float64{0, 45, 90, 180, 270}

// Request describes how one icon should be drawn. Nil fields fall back to
// the host.
type Request struct {
	Icon        icons.Named
	Color       *Color
	SizePx      *float64
	Preset      *Size
	RotationDeg float64
}

// For starts a request for n with every style attribute unset.
func For(n icons.Named) Request {
	return Request{Icon: n}
}

func (r Request) WithColor(c Color) Request {
	r.Color = &c
	return r
}

func (r Request) WithSize(s Size) Request {
	r.Preset = &s
	return r
}

func (r Request) WithSizePx(px float64) Request {
	r.SizePx = &px
	return r
}

func (r Request) Rotate(deg float64) Request {
	r.RotationDeg = deg
	return r
}

// Host is the ambient text style an icon is drawn into.
type Host struct {
	DefaultColor Color
	TextSizePx   float64
	RemPx        float64
}

// DefaultHost is a 16px text style with white text.
var DefaultHost = Host{DefaultColor: White, TextSizePx: 16, RemPx: 16}

// Resolved is everything a renderer needs to draw one icon.
type Resolved struct {
	Path     string
	Color    Color
	SizePx   float64
	Rotation float64 // radians
}

// Resolve applies the precedence rules to req within host.
func Resolve(req Request, host Host) Resolved {
	out := Resolved{
		Color:    host.DefaultColor,
		SizePx:   host.TextSizePx,
		Rotation: Radians(req.RotationDeg),
	}
	if req.Icon != nil {
		out.Path = req.Icon.Path()
	}
	if req.Color != nil {
		out.Color = *req.Color
	}
	switch {
	case req.SizePx != nil:
		out.SizePx = *req.SizePx
	case req.Preset != nil:
		out.SizePx = req.Preset.Rems() * host.RemPx
	}
	return out
}

// ThemeColor is the color icons are drawn with on a theme: chosen on the
// dark theme, black on the light one.
func ThemeColor(dark bool, chosen Color) Color {
	if dark {
		return chosen
	}
	return Black
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts r.Rotation back to degrees, normalized to [0, 360).
func (r Resolved) Degrees() float64 {
	d := math.Mod(r.Rotation*180/math.Pi, 360)
	if d < 0 {
		d += 360
	}
	return d
}
