package style

import (
	"fmt"
	"strings"
)

// Size is one of five ordered icon size presets.
type Size uint8

const (
	XSmall Size = iota
	Small
	Medium
	Large
	XLarge
)

// Sizes lists every preset, smallest first.
var Sizes = []Size{XSmall, Small, Medium, Large, XLarge}

var sizeRems = [...]float64{0.75, 0.875, 1.0, 1.5, 2.0}

var sizeLabels = [...]string{"XS", "S", "M", "L", "XL"}

// Valid reports whether s is one of the five presets.
func (s Size) Valid() bool {
	return int(s) < len(sizeRems)
}

// Rems returns the preset's multiplier of the host's base unit. Invalid
// values map to Medium.
func (s Size) Rems() float64 {
	if !s.Valid() {
		return sizeRems[Medium]
	}
	return sizeRems[s]
}

// Label returns the short picker label ("XS" .. "XL").
func (s Size) Label() string {
	if !s.Valid() {
		return "?"
	}
	return sizeLabels[s]
}

// String returns the lowercase label, the form ParseSize accepts.
func (s Size) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Size(%d)", uint8(s))
	}
	return strings.ToLower(sizeLabels[s])
}

// ParseSize accepts a short label (xs, s, m, l, xl) or a long name (xsmall,
// small, medium, large, xlarge), in any case.
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xs", "xsmall", "x-small":
		return XSmall, nil
	case "s", "small":
		return Small, nil
	case "m", "medium":
		return Medium, nil
	case "l", "large":
		return Large, nil
	case "xl", "xlarge", "x-large":
		return XLarge, nil
	}
	return 0, fmt.Errorf("unknown size %q (want xs, s, m, l or xl)", s)
}
