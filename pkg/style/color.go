package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

var (
	Black = Color{0, 0, 0, 0xff}
	White = Color{0xff, 0xff, 0xff, 0xff}
)

// RGB builds an opaque color from a 0xrrggbb value.
func RGB(hex uint32) Color {
	return Color{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#' is
// optional.
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	alpha := uint8(0xff)
	if len(s) == 8 {
		a, err := strconv.ParseUint(s[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: bad alpha: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:6]
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when it is not opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) String() string { return c.Hex() }

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Colorful converts c to a colorful.Color, dropping alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// IsLight reports whether c reads as a light color (CIE L* above 0.5), for
// choosing a contrasting foreground.
func (c Color) IsLight() bool {
	l, _, _ := c.Colorful().Lab()
	return l > 0.5
}

// Preset is a named palette entry.
type Preset struct {
	Name  string
	Color Color
}

// Presets is the color picker palette.
var Presets = []Preset{
	{"White", RGB(0xffffff)},
	{"Red", RGB(0xe94560)},
	{"Coral", RGB(0xff6b6b)},
	{"Yellow", RGB(0xfeca57)},
	{"Cyan", RGB(0x48dbfb)},
	{"Green", RGB(0x1dd1a1)},
	{"Purple", RGB(0x5f27cd)},
	{"Blue", RGB(0x54a0ff)},
}

// PresetName returns the palette name of c, if it is a preset.
func PresetName(c Color) (string, bool) {
	for _, p := range Presets {
		if p.Color == c {
			return p.Name, true
		}
	}
	return "", false
}

// LookupColor resolves a preset name (case-insensitive) or a hex string.
func LookupColor(s string) (Color, error) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, strings.TrimSpace(s)) {
			return p.Color, nil
		}
	}
	return ParseColor(s)
}
