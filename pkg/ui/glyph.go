package ui

import (
	"math"
	"strings"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/style"

	"github.com/mattn/go-runewidth"
)

// Labels longer than maxLabel are cut to labelKeep cells plus "...".
const (
	maxLabel  = 10
	labelKeep = 8
)

// TruncateLabel shortens an icon name to fit under a card.
func TruncateLabel(name string) string {
	if runewidth.StringWidth(name) <= maxLabel {
		return name
	}
	return runewidth.Truncate(name, labelKeep, "") + "..."
}

// arrows index by rotation in eighths of a turn, clockwise from up.
var arrows = [...]string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

// RotationArrow points in the direction an upright icon's top faces after
// rotating by deg clockwise.
func RotationArrow(deg float64) string {
	eighth := int(math.Round(math.Mod(deg, 360)/45)) % 8
	if eighth < 0 {
		eighth += 8
	}
	return arrows[eighth]
}

// Glyph is the text stand-in for an icon on a terminal: the initials of its
// name, more of them at larger sizes.
func Glyph(name string, size style.Size) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '-' })
	if len(words) == 0 {
		return "?"
	}
	limit := 1
	switch size {
	case style.Medium:
		limit = 2
	case style.Large, style.XLarge:
		limit = 3
	}
	var b strings.Builder
	for i, w := range words {
		if i == limit {
			break
		}
		b.WriteString(strings.ToUpper(w[:1]))
	}
	if size == style.XLarge {
		return strings.Join(strings.Split(b.String(), ""), " ")
	}
	return b.String()
}
