package ui

import "github.com/Dicklesworthstone/lucide_viewer/pkg/grid"

// Layout breakpoints for responsive design.
const (
	// BreakpointNarrow is the width below which the sidebar is hidden and the
	// grid takes the whole screen.
	BreakpointNarrow = 80
)

// Card and panel dimensions, in terminal cells.
const (
	// CardWidth fits a label of 8 characters plus "..." inside the border.
	CardWidth  = 13
	CardHeight = 4
	CardGap    = 1
	GridPad    = 1

	// SidebarWidth is the fixed width of the settings panel.
	SidebarWidth = 30

	// MinGridWidth keeps at least one card visible next to the sidebar.
	MinGridWidth = CardWidth + 2*GridPad

	// HeaderHeight is the search bar plus its divider; FooterHeight the help bar.
	HeaderHeight = 2
	FooterHeight = 1
)

// cellGeometry is the grid geometry in cells. Cards are not square on a
// terminal, so only the horizontal dimension feeds grid.Compute; rows are
// CardHeight tall.
var cellGeometry = grid.Geometry{CardSize: CardWidth, Gap: CardGap, Padding: GridPad}
