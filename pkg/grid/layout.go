// Package grid packs a filtered icon list into rows of fixed-size square
// cards and selects the rows a scroll container currently shows.
//
// Everything here is a pure function of its arguments. Hosts recompute the
// layout whenever the viewport width or item count changes and window it on
// every render.
package grid

import "math"

// Geometry is the fixed shape of the grid, in host units (pixels for a
// windowed host, cells for a terminal).
type Geometry struct {
	CardSize float64
	Gap      float64
	Padding  float64 // on each side of the row
}

// Default is the pixel geometry of the browser grid.
var Default = Geometry{CardSize: 72, Gap: 8, Padding: 16}

// Pixel hosts reserve a fixed-width side panel next to the grid.
const (
	SidebarWidth = 300
	MinGridWidth = 200
)

// AvailableWidth returns the grid width left next to a sidebar, never less
// than MinGridWidth.
func AvailableWidth(viewportWidth, sidebarWidth float64) float64 {
	return math.Max(viewportWidth-sidebarWidth, MinGridWidth)
}

// RowHeight is the vertical distance between consecutive rows.
func (g Geometry) RowHeight() float64 {
	return g.CardSize + g.Gap
}

// Layout is the derived shape for one viewport width and item count.
type Layout struct {
	ItemsPerRow int
	RowCount    int
}

// Compute returns how many cards fit in a row of viewportWidth and how many
// rows itemCount cards need:
//
//	ItemsPerRow = max(1, floor((viewportWidth - 2*Padding + Gap) / (CardSize + Gap)))
//	RowCount    = ceil(itemCount / ItemsPerRow)
//
// ItemsPerRow is never below 1, whatever the width (zero, negative, NaN) or
// geometry, and saturates at math.MaxInt32 for huge or infinite widths.
func Compute(viewportWidth float64, g Geometry, itemCount int) Layout {
	perRow := 1
	if step := g.CardSize + g.Gap; step > 0 {
		n := math.Floor((viewportWidth - 2*g.Padding + g.Gap) / step)
		if n > 1 {
			perRow = int(min(n, math.MaxInt32))
		}
	}
	return Layout{ItemsPerRow: perRow, RowCount: RowCount(itemCount, perRow)}
}

// RowCount returns ceil(itemCount / itemsPerRow), treating itemsPerRow < 1
// as 1 and itemCount < 0 as 0.
func RowCount(itemCount, itemsPerRow int) int {
	if itemCount <= 0 {
		return 0
	}
	if itemsPerRow < 1 {
		itemsPerRow = 1
	}
	return (itemCount + itemsPerRow - 1) / itemsPerRow
}

// Position returns the row and column of the item at index.
func (l Layout) Position(index int) (row, col int) {
	perRow := max(l.ItemsPerRow, 1)
	return index / perRow, index % perRow
}

// Index returns the item index at row and col, or -1 if that cell is outside
// the first itemCount items.
func (l Layout) Index(row, col, itemCount int) int {
	perRow := max(l.ItemsPerRow, 1)
	if row < 0 || col < 0 || col >= perRow {
		return -1
	}
	idx := row*perRow + col
	if idx >= itemCount {
		return -1
	}
	return idx
}
