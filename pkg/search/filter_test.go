package search

import (
	"iter"
	"slices"
	"testing"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/icons"
)

type sliceSource []icons.Icon

func (s sliceSource) All() iter.Seq[icons.Icon] { return slices.Values(s) }

func names(ids []icons.Icon) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Name()
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"prefix", "arrow", []string{"arrow-down", "arrow-left", "arrow-right", "arrow-up"}},
		{"upper case", "ARROW", []string{"arrow-down", "arrow-left", "arrow-right", "arrow-up"}},
		{"mixed case", "ArRoW-Up", []string{"arrow-up"}},
		{"surrounding space", "  heart ", []string{"heart-crack", "heart"}},
		{"infix", "ord", []string{"sword", "swords"}},
		{"no match", "xyz123", []string{}},
		{"inner space kept", "arrow up", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Filter(tt.query, Catalog))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	for _, q := range []string{"", " ", "\t\n"} {
		got := Filter(q, Catalog)
		if len(got) != icons.Count() {
			t.Errorf("Filter(%q) returned %d icons, want %d", q, len(got), icons.Count())
		}
		if !slices.Equal(got, slices.Collect(icons.All())) {
			t.Errorf("Filter(%q) should keep catalog order", q)
		}
	}
}

func TestFilterIsSubsetInOrder(t *testing.T) {
	all := slices.Collect(icons.All())
	for _, q := range []string{"a", "e", "-", "s", "circle"} {
		got := Filter(q, Catalog)
		last := -1
		for _, id := range got {
			i := slices.Index(all, id)
			if i <= last {
				t.Fatalf("Filter(%q) out of catalog order at %s", q, id)
			}
			last = i
		}
	}
}

// Case folding makes a query and its upper case equivalent for any input.
func TestFilterCaseInsensitive(t *testing.T) {
	for _, q := range []string{"bell", "Bell", "BELL", "bElL", "ß", "straße"} {
		if !slices.Equal(Filter(q, Catalog), FilterMode(Substring, q, Catalog)) {
			t.Errorf("Filter and FilterMode(Substring) disagree on %q", q)
		}
	}
	pairs := [][2]string{{"bell", "BELL"}, {"ß", "SS"}, {"straße", "STRASSE"}}
	for _, p := range pairs {
		if normalize(p[0]) != normalize(p[1]) {
			t.Errorf("normalize(%q) = %q, normalize(%q) = %q", p[0], normalize(p[0]), p[1], normalize(p[1]))
		}
	}
}

func TestFilterCustomSource(t *testing.T) {
	src := sliceSource{icons.Sun, icons.Moon, icons.Star}
	if got := names(Filter("", src)); !slices.Equal(got, []string{"sun", "moon", "star"}) {
		t.Errorf("Filter(\"\") = %v, want source order", got)
	}
	if got := names(Filter("s", src)); !slices.Equal(got, []string{"sun", "star"}) {
		t.Errorf("Filter(s) = %v", got)
	}
	if got := Filter("x", sliceSource{}); len(got) != 0 {
		t.Errorf("empty source returned %v", got)
	}
}

func TestFilterModeFuzzy(t *testing.T) {
	got := FilterMode(Fuzzy, "hrt", Catalog)
	if !slices.Contains(got, icons.Heart) || !slices.Contains(got, icons.HeartCrack) {
		t.Errorf("fuzzy hrt = %v, want heart and heart-crack", names(got))
	}
	if slices.Contains(got, icons.Sun) {
		t.Errorf("fuzzy hrt should not match sun")
	}

	// Every substring match is also a fuzzy match.
	for _, q := range []string{"arrow", "CIRCLE", "o"} {
		fz := FilterMode(Fuzzy, q, Catalog)
		for _, id := range Filter(q, Catalog) {
			if !slices.Contains(fz, id) {
				t.Errorf("fuzzy %q missing substring match %s", q, id)
			}
		}
	}

	if all := FilterMode(Fuzzy, "  ", Catalog); len(all) != icons.Count() {
		t.Errorf("fuzzy blank query returned %d icons", len(all))
	}
	if none := FilterMode(Fuzzy, "qqqq", Catalog); len(none) != 0 {
		t.Errorf("fuzzy qqqq = %v", names(none))
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", Substring, false},
		{"substring", Substring, false},
		{" Fuzzy ", Fuzzy, false},
		{"regex", Substring, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
	for _, m := range []Mode{Substring, Fuzzy} {
		if got, _ := ParseMode(m.String()); got != m {
			t.Errorf("ParseMode(%q) = %v", m.String(), got)
		}
	}
	if Mode(7).String() != "Mode(7)" {
		t.Errorf("Mode(7).String() = %q", Mode(7).String())
	}
}
