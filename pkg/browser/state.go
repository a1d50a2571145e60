// Package browser holds the state of one interactive browsing session: the
// query and the icons it matches, the hovered and selected icons, and the
// style the grid is drawn with.
//
// State is mutated only through its methods. Every mutator commits its change
// and then notifies subscribers synchronously, once, in subscription order.
// The hovered and selected icons are always members of the filtered list, or
// absent. State is not safe for concurrent use; a UI event loop owns it.
package browser

import (
	"fmt"
	"io"
	"slices"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/icons"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/search"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/style"

	"github.com/charmbracelet/log"
)

// Field names the part of State a mutation changed.
type Field uint8

const (
	FieldQuery Field = iota + 1
	FieldMode
	FieldHovered
	FieldSelected
	FieldColor
	FieldSize
	FieldRotation
	FieldTheme
)

var fieldNames = map[Field]string{
	FieldQuery:    "query",
	FieldMode:     "mode",
	FieldHovered:  "hovered",
	FieldSelected: "selected",
	FieldColor:    "color",
	FieldSize:     "size",
	FieldRotation: "rotation",
	FieldTheme:    "theme",
}

func (f Field) String() string {
	if s, ok := fieldNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Field(%d)", uint8(f))
}

// Event is delivered to subscribers after a mutation.
type Event struct {
	Field Field
}

// DefaultPreview is shown in the preview panel when nothing is hovered.
const DefaultPreview = "heart"

type subscriber struct {
	id int
	fn func(Event)
}

// State is the browser session state.
type State struct {
	src    search.Source
	logger *log.Logger

	query    string
	mode     search.Mode
	filtered []icons.Icon

	hovered     icons.Icon
	hasHovered  bool
	selected    icons.Icon
	hasSelected bool

	color       style.Color
	size        style.Size
	rotationDeg float64
	dark        bool

	subs   []subscriber
	nextID int
}

// Option configures a State in New.
type Option func(*State)

func WithColor(c style.Color) Option { return func(s *State) { s.color = c } }
func WithSize(sz style.Size) Option { return func(s *State) { s.size = sz } }
func WithRotation(deg float64) Option { return func(s *State) { s.rotationDeg = deg } }
func WithDark(dark bool) Option { return func(s *State) { s.dark = dark } }
func WithMode(m search.Mode) Option { return func(s *State) { s.mode = m } }
func WithLogger(logger *log.Logger) Option { return func(s *State) { s.logger = logger } }

// New returns a State over src with an empty query, so the filtered list is
// the whole of src. A nil src means the generated catalog. Defaults are a
// dark theme, white icons at the Large preset, and no rotation.
func New(src search.Source, opts ...Option) *State {
	if src == nil {
		src = search.Catalog
	}
	s := &State{
		src:   src,
		color: style.White,
		size:  style.Large,
		dark:  true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.filtered = search.FilterMode(s.mode, "", s.src)
	return s
}

// Subscribe registers fn to run after every mutation. The returned function
// removes it; calling it more than once is harmless.
func (s *State) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool { return sub.id == id })
	}
}

func (s *State) notify(f Field) {
	// Subscribers may unsubscribe from inside the callback.
	for _, sub := range slices.Clone(s.subs) {
		sub.fn(Event{Field: f})
	}
}

// SetQuery re-filters the catalog for q, then clears the hovered and
// selected icons if they no longer match.
func (s *State) SetQuery(q string) {
	s.query = q
	s.refilter()
	s.notify(FieldQuery)
}

// SetMode switches the matching mode and re-filters with the current query.
func (s *State) SetMode(m search.Mode) {
	s.mode = m
	s.refilter()
	s.notify(FieldMode)
}

func (s *State) refilter() {
	s.filtered = search.FilterMode(s.mode, s.query, s.src)
	if s.hasHovered && !slices.Contains(s.filtered, s.hovered) {
		s.hasHovered = false
	}
	if s.hasSelected && !slices.Contains(s.filtered, s.selected) {
		s.hasSelected = false
	}
	s.logger.Debug("filtered", "query", s.query, "mode", s.mode, "matches", len(s.filtered))
}

// SetHovered marks id as hovered. Callers pass an icon taken from the
// current filtered list.
func (s *State) SetHovered(id icons.Icon) {
	s.hovered, s.hasHovered = id, true
	s.notify(FieldHovered)
}

// ClearHovered removes the hover.
func (s *State) ClearHovered() {
	s.hasHovered = false
	s.notify(FieldHovered)
}

// SetSelected selects id and reports whether it was accepted. Icons outside
// the filtered list are refused and the selection is left as it was.
func (s *State) SetSelected(id icons.Icon) bool {
	if !slices.Contains(s.filtered, id) {
		return false
	}
	s.selected, s.hasSelected = id, true
	s.notify(FieldSelected)
	return true
}

// ClearSelected removes the selection.
func (s *State) ClearSelected() {
	s.hasSelected = false
	s.notify(FieldSelected)
}

func (s *State) SetColor(c style.Color) {
	s.color = c
	s.notify(FieldColor)
}

func (s *State) SetSize(sz style.Size) {
	s.size = sz
	s.notify(FieldSize)
}

func (s *State) SetRotation(deg float64) {
	s.rotationDeg = deg
	s.notify(FieldRotation)
}

// ToggleTheme flips between the dark and light theme.
func (s *State) ToggleTheme() {
	s.dark = !s.dark
	s.notify(FieldTheme)
}

func (s *State) Query() string { return s.query }
func (s *State) Mode() search.Mode { return s.mode }
func (s *State) Len() int { return len(s.filtered) }
func (s *State) Color() style.Color { return s.color }
func (s *State) Size() style.Size { return s.size }
func (s *State) RotationDeg() float64 { return s.rotationDeg }
func (s *State) Dark() bool { return s.dark }

// Filtered returns a copy of the icons matching the current query.
func (s *State) Filtered() []icons.Icon {
	return slices.Clone(s.filtered)
}

// At returns the i-th filtered icon.
func (s *State) At(i int) (icons.Icon, bool) {
	if i < 0 || i >= len(s.filtered) {
		return 0, false
	}
	return s.filtered[i], true
}

// IndexOf returns the position of id in the filtered list, or -1.
func (s *State) IndexOf(id icons.Icon) int {
	return slices.Index(s.filtered, id)
}

func (s *State) Hovered() (icons.Icon, bool) { return s.hovered, s.hasHovered }
func (s *State) Selected() (icons.Icon, bool) { return s.selected, s.hasSelected }

// Preview returns the icon for the preview panel: the hovered icon, or
// DefaultPreview.
func (s *State) Preview() icons.Icon {
	if s.hasHovered {
		return s.hovered
	}
	if id, ok := icons.Lookup(DefaultPreview); ok {
		return id
	}
	return 0
}

// IconColor is the color icons are drawn with: the chosen color on the dark
// theme, black on the light one.
func (s *State) IconColor() style.Color {
	return style.ThemeColor(s.dark, s.color)
}

// Style returns the draw request for id under the current settings.
func (s *State) Style(id icons.Named) style.Request {
	return style.For(id).WithColor(s.IconColor()).WithSize(s.size).Rotate(s.rotationDeg)
}

// Snapshot is a point-in-time copy of State.
type Snapshot struct {
	Query       string
	Mode        search.Mode
	Filtered    []icons.Icon
	Hovered     icons.Icon
	HasHovered  bool
	Selected    icons.Icon
	HasSelected bool
	Color       style.Color
	Size        style.Size
	RotationDeg float64
	Dark        bool
}

// Snapshot copies the current state. Later mutations do not affect it.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Query:       s.query,
		Mode:        s.mode,
		Filtered:    s.Filtered(),
		Hovered:     s.hovered,
		HasHovered:  s.hasHovered,
		Selected:    s.selected,
		HasSelected: s.hasSelected,
		Color:       s.color,
		Size:        s.size,
		RotationDeg: s.rotationDeg,
		Dark:        s.dark,
	}
}
