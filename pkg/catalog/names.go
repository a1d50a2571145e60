package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// IdentSentinel is prefixed to identifiers whose first character is not a
// letter, so that "2fa" becomes "N2fa".
const IdentSentinel = "N"

// CanonicalName derives the canonical icon name from a file's base name
// (without extension). The stem is case folded; every run of characters
// outside [a-z0-9] becomes a single hyphen and leading or trailing hyphens
// are dropped. "Arrow_Up" and "arrow-up" both yield "arrow-up".
func CanonicalName(stem string) string {
	folded := cases.Fold().String(stem)

	var b strings.Builder
	b.Grow(len(folded))
	pendingBreak := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingBreak && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingBreak = false
			b.WriteRune(r)
			continue
		}
		pendingBreak = true
	}
	return b.String()
}

// Identifier derives the exported Go identifier for a canonical name by
// upper-camel-casing its hyphen separated words. A name starting with a digit
// is prefixed with IdentSentinel.
func Identifier(name string) string {
	var b strings.Builder
	b.Grow(len(name) + len(IdentSentinel))
	for _, word := range strings.Split(name, "-") {
		if word == "" {
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	ident := b.String()
	if ident == "" {
		return ""
	}
	if c := ident[0]; c < 'A' || c > 'Z' {
		ident = IdentSentinel + ident
	}
	return ident
}
