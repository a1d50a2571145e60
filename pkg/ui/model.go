// Package ui is the terminal icon browser: a search box, a virtualized grid
// of icon cards and a sidebar with the color, size, rotation and theme
// pickers and a preview of the hovered icon.
//
// The Model owns a browser.State and is its only mutator. The grid is laid
// out with package grid and only the visible rows are rendered.
package ui

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/assets"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/browser"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/grid"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/history"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/icons"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/search"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/style"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"
)

type focusArea int

const (
	focusSearch focusArea = iota
	focusGrid
)

// recentLimit is how many recently copied icons the sidebar lists.
const recentLimit = 5

// History stores copied icons. *history.DB implements it.
type History interface {
	Record(c *history.Copy) error
	Recent(limit int) ([]string, error)
}

// cellHost sizes the preview readout as a 16px host would.
var cellHost = style.Host{TextSizePx: 16, RemPx: 16}

// Model is the bubbletea model of the browser.
type Model struct {
	state    *browser.State
	assets   assets.Source
	logger   *log.Logger
	clip     func(string) error
	history  History
	renderer *lipgloss.Renderer

	theme   Theme
	keys    keyMap
	help    help.Model
	overlay HelpOverlayModel
	search  textinput.Model
	focus   focusArea

	width  int
	height int
	layout grid.Layout
	scroll int
	cursor int
	status string
	recent []string

	previews    map[icons.Icon]string
	unsubscribe func()
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the debug logger. The default discards.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) { m.clip = write }
}

// WithHistory records every copy in h and lists recent copies in the
// sidebar.
func WithHistory(h History) Option {
	return func(m *Model) { m.history = h }
}

// WithRenderer sets the lipgloss renderer, e.g. one bound to a session's
// output.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) { m.renderer = r }
}

// New returns a Model driving state, loading preview assets from src.
func New(state *browser.State, src assets.Source, opts ...Option) *Model {
	m := &Model{
		state:    state,
		assets:   src,
		clip:     clipboard.WriteAll,
		keys:     defaultKeyMap(),
		help:     help.New(),
		previews: make(map[icons.Icon]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	if m.renderer == nil {
		m.renderer = lipgloss.DefaultRenderer()
	}
	m.theme = NewTheme(m.renderer, state.Dark())
	m.overlay = NewHelpOverlayModel(m.theme, m.keys)

	ti := textinput.New()
	ti.Placeholder = "Search icons..."
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 40
	ti.SetValue(state.Query())
	ti.Focus()
	m.search = ti

	m.unsubscribe = state.Subscribe(m.onChange)
	m.relayout()
	m.loadRecent()
	return m
}

func (m *Model) loadRecent() {
	if m.history == nil {
		return
	}
	recent, err := m.history.Recent(recentLimit)
	if err != nil {
		m.logger.Warn("history", "err", err)
		return
	}
	m.recent = recent
}

// State returns the state the model drives.
func (m *Model) State() *browser.State { return m.state }

// Status returns the last status line message.
func (m *Model) Status() string { return m.status }

// Close detaches the model from its state.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) onChange(e browser.Event) {
	switch e.Field {
	case browser.FieldQuery, browser.FieldMode:
		m.relayout()
		m.syncCursor()
	case browser.FieldTheme:
		m.theme = NewTheme(m.renderer, m.state.Dark())
		m.overlay.SetTheme(m.theme)
	}
	m.logger.Debug("state changed", "field", e.Field)
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) sidebarVisible() bool {
	return m.width >= BreakpointNarrow
}

func (m *Model) gridWidth() int {
	if m.sidebarVisible() {
		return max(m.width-SidebarWidth, MinGridWidth)
	}
	return m.width
}

func (m *Model) bodyHeight() int {
	return max(m.height-HeaderHeight-FooterHeight, CardHeight)
}

func (m *Model) viewportRows() int {
	return max(m.bodyHeight()/CardHeight, 1)
}

// relayout recomputes the grid for the current width and filtered count.
func (m *Model) relayout() {
	m.layout = grid.Compute(float64(m.gridWidth()), cellGeometry, m.state.Len())
	m.scroll = grid.ClampScroll(m.scroll, m.viewportRows(), m.layout.RowCount)
}

// syncCursor follows the hovered icon to its new position after a filter
// change, or goes back to the top if it was filtered out.
func (m *Model) syncCursor() {
	if id, ok := m.state.Hovered(); ok {
		m.cursor = m.state.IndexOf(id)
		row, _ := m.layout.Position(m.cursor)
		m.scroll = grid.ScrollTo(m.scroll, row, m.viewportRows())
		return
	}
	m.cursor = 0
	m.scroll = 0
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.search.Width = max(m.gridWidth()-24, 10)
		m.help.Width = msg.Width
		m.overlay.SetSize(msg.Width, msg.Height)
		m.relayout()
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.overlay.IsVisible() {
			m.overlay, _ = m.overlay.Update(msg)
			return m, nil
		}
		if msg.String() == "ctrl+c" {
			m.Close()
			return m, tea.Quit
		}
		if m.focus == focusSearch {
			return m.updateSearch(msg)
		}
		return m.updateGrid(msg)
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.state.SetQuery("")
			return m, nil
		}
		m.blurSearch()
		return m, nil
	case "enter", "down", "tab":
		m.blurSearch()
		m.moveTo(m.cursor)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.state.Query() {
		m.state.SetQuery(q)
	}
	return m, cmd
}

func (m *Model) blurSearch() {
	m.search.Blur()
	m.focus = focusGrid
}

func (m *Model) focusSearchBox() tea.Cmd {
	m.focus = focusSearch
	return m.search.Focus()
}

func (m *Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	perRow := m.layout.ItemsPerRow
	page := perRow * m.viewportRows()

	switch {
	case key.Matches(msg, k.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.overlay.Toggle()
	case key.Matches(msg, k.Search):
		return m, m.focusSearchBox()
	case key.Matches(msg, k.Clear):
		m.search.SetValue("")
		m.state.SetQuery("")
	case key.Matches(msg, k.Up):
		if m.cursor-perRow >= 0 {
			m.moveTo(m.cursor - perRow)
		} else {
			return m, m.focusSearchBox()
		}
	case key.Matches(msg, k.Down):
		m.moveDown(perRow)
	case key.Matches(msg, k.Left):
		m.moveTo(m.cursor - 1)
	case key.Matches(msg, k.Right):
		m.moveTo(m.cursor + 1)
	case key.Matches(msg, k.PageUp):
		m.moveTo(m.cursor - page)
	case key.Matches(msg, k.PageDown):
		m.moveDown(page)
	case key.Matches(msg, k.Home):
		m.moveTo(0)
	case key.Matches(msg, k.End):
		m.moveTo(m.state.Len() - 1)
	case key.Matches(msg, k.Copy):
		m.selectAndCopy()
	case key.Matches(msg, k.Color):
		m.state.SetColor(nextColor(m.state.Color()))
	case key.Matches(msg, k.Size):
		m.state.SetSize(min(m.state.Size()+1, style.XLarge))
	case key.Matches(msg, k.SizeDown):
		if s := m.state.Size(); s > style.XSmall {
			m.state.SetSize(s - 1)
		}
	case key.Matches(msg, k.Rotate):
		m.state.SetRotation(nextRotation(m.state.RotationDeg()))
	case key.Matches(msg, k.Theme):
		m.state.ToggleTheme()
	case key.Matches(msg, k.Mode):
		if m.state.Mode() == search.Fuzzy {
			m.state.SetMode(search.Substring)
		} else {
			m.state.SetMode(search.Fuzzy)
		}
	}
	return m, nil
}

// moveDown moves by n items, stopping on the last item when the target is
// past the end but the cursor is not yet on the last row.
func (m *Model) moveDown(n int) {
	last := m.state.Len() - 1
	target := m.cursor + n
	if target > last {
		curRow, _ := m.layout.Position(m.cursor)
		lastRow, _ := m.layout.Position(last)
		if curRow == lastRow {
			return
		}
		target = last
	}
	m.moveTo(target)
}

// moveTo puts the cursor on item i, hovers it and scrolls it into view.
func (m *Model) moveTo(i int) {
	n := m.state.Len()
	if n == 0 {
		return
	}
	i = min(max(i, 0), n-1)
	id, _ := m.state.At(i)
	m.cursor = i
	m.state.SetHovered(id)
	row, _ := m.layout.Position(i)
	m.scroll = grid.ScrollTo(m.scroll, row, m.viewportRows())
}

func (m *Model) selectAndCopy() {
	id, ok := m.state.Hovered()
	if !ok {
		if id, ok = m.state.At(m.cursor); !ok {
			return
		}
	}
	m.state.SetSelected(id)
	if err := m.clip(id.Name()); err != nil {
		m.logger.Warn("clipboard", "err", err)
		m.status = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("copied %q", id.Name())

	if m.history == nil {
		return
	}
	rec := &history.Copy{
		Icon:        id.Name(),
		Color:       m.state.Color().Hex(),
		Size:        m.state.Size().String(),
		RotationDeg: m.state.RotationDeg(),
	}
	if err := m.history.Record(rec); err != nil {
		m.logger.Warn("history", "err", err)
		return
	}
	m.loadRecent()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll = grid.ClampScroll(m.scroll-1, m.viewportRows(), m.layout.RowCount)
		return
	case tea.MouseButtonWheelDown:
		m.scroll = grid.ClampScroll(m.scroll+1, m.viewportRows(), m.layout.RowCount)
		return
	}

	idx, ok := m.hitTest(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionMotion:
		if !ok {
			if _, hovering := m.state.Hovered(); hovering {
				m.state.ClearHovered()
			}
			return
		}
		id, _ := m.state.At(idx)
		if cur, hovering := m.state.Hovered(); !hovering || cur != id {
			m.cursor = idx
			m.state.SetHovered(id)
		}
	case tea.MouseActionPress:
		if ok && msg.Button == tea.MouseButtonLeft {
			m.blurSearch()
			m.moveTo(idx)
			m.selectAndCopy()
		}
	}
}

// hitTest maps a screen cell to the index of the card under it.
func (m *Model) hitTest(x, y int) (int, bool) {
	gx, gy := x-GridPad, y-HeaderHeight
	if gx < 0 || gy < 0 || x >= m.gridWidth() {
		return -1, false
	}
	step := CardWidth + CardGap
	if gx%step >= CardWidth {
		return -1, false
	}
	if gy/CardHeight >= m.viewportRows() {
		return -1, false
	}
	idx := m.layout.Index(gy/CardHeight+m.scroll, gx/step, m.state.Len())
	return idx, idx >= 0
}

func nextColor(c style.Color) style.Color {
	i := slices.IndexFunc(style.Presets, func(p style.Preset) bool { return p.Color == c })
	return style.Presets[(i+1)%len(style.Presets)].Color
}

func nextRotation(deg float64) float64 {
	i := slices.Index(style.Rotations, deg)
	return style.Rotations[(i+1)%len(style.Rotations)]
}

// ══════════════════════════════════════════════════════════════════════════════
// VIEW
// ══════════════════════════════════════════════════════════════════════════════

func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	if m.overlay.IsVisible() {
		return m.overlay.View()
	}

	body := m.viewGrid()
	if m.sidebarVisible() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.viewSidebar())
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(), body, m.viewFooter())
}

func (m *Model) viewHeader() string {
	counter := fmt.Sprintf("%d icons", m.state.Len())
	if m.state.Mode() == search.Fuzzy {
		counter += " · fuzzy"
	}
	muted := m.renderer.NewStyle().Foreground(m.theme.Subtext)
	line := m.search.View() + "  " + muted.Render(counter)
	return line + "\n" + RenderDivider(m.theme, m.gridWidth())
}

func (m *Model) viewGrid() string {
	frame := m.renderer.NewStyle().Width(m.gridWidth()).Height(m.bodyHeight())

	items := m.state.Filtered()
	if len(items) == 0 {
		msg := fmt.Sprintf("No icons match %q", m.state.Query())
		return frame.PaddingLeft(GridPad).Foreground(m.theme.Subtext).Render(msg)
	}

	hovered, hasHovered := m.state.Hovered()
	selected, hasSelected := m.state.Selected()
	visible := grid.VisibleRange(m.scroll, m.viewportRows(), m.layout.RowCount)
	gap := strings.Repeat(" ", CardGap)
	pad := strings.Repeat(" ", GridPad)

	var rows []string
	for _, row := range grid.Window(visible, items, m.layout.ItemsPerRow) {
		cards := make([]string, 0, 2*len(row.Items))
		for i, id := range row.Items {
			if i > 0 {
				cards = append(cards, gap)
			}
			cards = append(cards, m.renderCard(id, hasHovered && id == hovered, hasSelected && id == selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, pad, lipgloss.JoinHorizontal(lipgloss.Top, cards...)))
	}
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) renderCard(id icons.Icon, hovered, selected bool) string {
	r := style.Resolve(m.state.Style(id), cellHost)
	glyph := Glyph(id.Name(), m.state.Size())
	if deg := r.Degrees(); deg != 0 {
		glyph += RotationArrow(deg)
	}
	glyphStyle := m.renderer.NewStyle().
		Foreground(lipgloss.Color(r.Color.Hex())).
		Bold(m.state.Size() >= style.Medium)
	label := m.renderer.NewStyle().Foreground(m.theme.Subtext).Render(TruncateLabel(id.Name()))
	return CardStyle(m.theme, hovered, selected).Render(glyphStyle.Render(glyph) + "\n" + label)
}

func (m *Model) viewSidebar() string {
	t := m.theme
	text := m.renderer.NewStyle().Foreground(t.Text)
	muted := m.renderer.NewStyle().Foreground(t.Subtext)
	inner := SidebarWidth - 4

	var b strings.Builder
	b.WriteString(text.Render("Theme: "+t.Name()) + muted.Render("  [t]") + "\n")
	b.WriteString(RenderDivider(t, inner) + "\n")

	b.WriteString(SectionTitle(t, "Color") + "\n")
	for i, p := range style.Presets {
		b.WriteString(RenderSwatch(t, p.Color, p.Color == m.state.Color()))
		if i%4 == 3 {
			b.WriteString("\n")
		}
	}
	name, ok := style.PresetName(m.state.Color())
	if !ok {
		name = "Custom"
	}
	b.WriteString(muted.Render(name+" "+m.state.Color().Hex()) + "\n")
	b.WriteString(RenderDivider(t, inner) + "\n")

	b.WriteString(SectionTitle(t, "Size") + "\n")
	chips := make([]string, 0, len(style.Sizes))
	for _, s := range style.Sizes {
		chips = append(chips, RenderChip(t, s.Label(), s == m.state.Size()))
	}
	b.WriteString(strings.Join(chips, " ") + "\n")
	b.WriteString(RenderDivider(t, inner) + "\n")

	b.WriteString(SectionTitle(t, "Rotation: "+RenderDegrees(m.state.RotationDeg())) + "\n")
	chips = chips[:0]
	for _, deg := range style.Rotations {
		chips = append(chips, RenderChip(t, RenderDegrees(deg), deg == m.state.RotationDeg()))
	}
	b.WriteString(strings.Join(chips, "") + "\n")
	b.WriteString(RenderDivider(t, inner) + "\n")

	if len(m.recent) > 0 {
		b.WriteString(SectionTitle(t, "Recent") + "\n")
		b.WriteString(muted.Render(runewidth.Truncate(strings.Join(m.recent, " "), inner, "…")) + "\n")
		b.WriteString(RenderDivider(t, inner) + "\n")
	}

	b.WriteString(SectionTitle(t, "Preview") + "\n")
	b.WriteString(m.viewPreview())

	return PanelStyle(t).
		Width(SidebarWidth - 2).
		Height(m.bodyHeight() - 2).
		Render(b.String())
}

func (m *Model) viewPreview() string {
	id := m.state.Preview()
	r := style.Resolve(m.state.Style(id).WithSize(style.XLarge), cellHost)

	glyph := Glyph(id.Name(), style.XLarge)
	if deg := r.Degrees(); deg != 0 {
		glyph += " " + RotationArrow(deg)
	}
	big := m.renderer.NewStyle().
		Foreground(lipgloss.Color(r.Color.Hex())).
		Bold(true).
		Width(SidebarWidth - 4).
		Align(lipgloss.Center).
		Padding(1, 0)
	muted := m.renderer.NewStyle().Foreground(m.theme.Subtext)

	lines := []string{
		big.Render(glyph),
		m.renderer.NewStyle().Foreground(m.theme.Text).Render(id.Name()),
		muted.Render(r.Path),
		muted.Render(fmt.Sprintf("%gpx · %s · %s", r.SizePx, RenderDegrees(m.state.RotationDeg()), r.Color.Hex())),
		muted.Render(m.describe(id)),
	}
	return strings.Join(lines, "\n")
}

// describe summarizes an icon's asset, caching the result per icon.
func (m *Model) describe(id icons.Icon) string {
	if s, ok := m.previews[id]; ok {
		return s
	}
	s := describeAsset(m.assets, id)
	m.previews[id] = s
	return s
}

func describeAsset(src assets.Source, n icons.Named) string {
	if src == nil {
		return ""
	}
	data, err := src.Load(n.Path())
	if errors.Is(err, assets.ErrNotFound) {
		return "asset not found"
	}
	if err != nil {
		return "asset unreadable"
	}
	info, err := assets.DescribeSVG(data)
	if err != nil {
		return "not an svg"
	}
	return fmt.Sprintf("viewBox %s · %s", info.ViewBox, info.Shapes())
}

func (m *Model) viewFooter() string {
	if m.status != "" {
		return m.renderer.NewStyle().Foreground(m.theme.Primary).Render(m.status) + "  " + m.help.View(m.keys)
	}
	return m.help.View(m.keys)
}
