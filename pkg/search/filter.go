// Package search reduces the icon catalog to the icons matching a query.
package search

import (
	"fmt"
	"iter"
	"strings"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/icons"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Source enumerates the icons to filter. Package icons satisfies it through
// Catalog.
type Source interface {
	All() iter.Seq[icons.Icon]
}

type catalogSource struct{}

func (catalogSource) All() iter.Seq[icons.Icon] { return icons.All() }

// Catalog is the Source over the full generated catalog.
var Catalog Source = catalogSource{}

// Mode selects how a query is matched.
type Mode int

const (
	// Substring keeps icons whose name contains the query, in catalog order.
	Substring Mode = iota
	// Fuzzy keeps icons whose name contains the query's characters in order,
	// best matches first.
	Fuzzy
)

func (m Mode) String() string {
	switch m {
	case Substring:
		return "substring"
	case Fuzzy:
		return "fuzzy"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses the String form of a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "substring":
		return Substring, nil
	case "fuzzy":
		return Fuzzy, nil
	default:
		return Substring, fmt.Errorf("unknown search mode %q", s)
	}
}

// Filter returns the icons of src whose canonical name contains query,
// ignoring case, in src order. An empty or blank query returns every icon.
func Filter(query string, src Source) []icons.Icon {
	needle := normalize(query)
	var out []icons.Icon
	for id := range src.All() {
		if needle == "" || strings.Contains(id.Name(), needle) {
			out = append(out, id)
		}
	}
	return out
}

// FilterMode is Filter with a selectable matching mode.
func FilterMode(mode Mode, query string, src Source) []icons.Icon {
	if mode != Fuzzy {
		return Filter(query, src)
	}

	needle := normalize(query)
	var all []icons.Icon
	for id := range src.All() {
		all = append(all, id)
	}
	if needle == "" {
		return all
	}

	names := make([]string, len(all))
	for i, id := range all {
		names[i] = id.Name()
	}
	matches := fuzzy.Find(needle, names)
	out := make([]icons.Icon, 0, len(matches))
	for _, m := range matches {
		out = append(out, all[m.Index])
	}
	return out
}

// normalize trims and case folds query; canonical names are already folded
// ASCII. Folding the upper-cased query makes q and its upper case normalize
// identically, even for runes like 'ß'. Casers are stateful and not shared.
func normalize(query string) string {
	q := strings.TrimSpace(query)
	if q == "" {
		return ""
	}
	return cases.Fold().String(cases.Upper(language.Und).String(q))
}
