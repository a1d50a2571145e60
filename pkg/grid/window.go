package grid

// Range is a half-open interval of row indexes, [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of rows in r, or 0 if r is empty or inverted.
func (r Range) Len() int {
	return max(r.End-r.Start, 0)
}

// Row is one rendered row of the grid.
type Row[T any] struct {
	Index int
	Items []T
}

// Window returns the rows of items that fall inside visible. Row r holds
// items[r*itemsPerRow : min((r+1)*itemsPerRow, len(items))].
//
// visible is clipped to the rows that exist, so stale or oversized ranges
// requested during a resize yield fewer (or no) rows rather than an error.
// itemsPerRow below 1 is treated as 1. Window does not modify items; the
// returned rows alias it with capped capacity, so appending to a row cannot
// overwrite its neighbour.
func Window[T any](visible Range, items []T, itemsPerRow int) []Row[T] {
	if itemsPerRow < 1 {
		itemsPerRow = 1
	}
	start := max(visible.Start, 0)
	end := min(visible.End, RowCount(len(items), itemsPerRow))
	if start >= end {
		return nil
	}

	rows := make([]Row[T], 0, end-start)
	for r := start; r < end; r++ {
		lo := r * itemsPerRow
		hi := min(lo+itemsPerRow, len(items))
		rows = append(rows, Row[T]{Index: r, Items: items[lo:hi:hi]})
	}
	return rows
}

// VisibleRange returns the rows of a rowCount-row grid that a viewport of
// viewportRows shows when scrolled to scrollRow, clipped to [0, rowCount).
func VisibleRange(scrollRow, viewportRows, rowCount int) Range {
	start := min(max(scrollRow, 0), max(rowCount, 0))
	end := min(start+max(viewportRows, 0), max(rowCount, 0))
	return Range{Start: start, End: end}
}

// ClampScroll keeps scrollRow within [0, rowCount-viewportRows] so the last
// page stays full after the row count shrinks.
func ClampScroll(scrollRow, viewportRows, rowCount int) int {
	maxScroll := max(rowCount-max(viewportRows, 1), 0)
	return min(max(scrollRow, 0), maxScroll)
}

// ScrollTo returns the smallest change to scrollRow that brings row into a
// viewport of viewportRows.
func ScrollTo(scrollRow, row, viewportRows int) int {
	viewportRows = max(viewportRows, 1)
	switch {
	case row < scrollRow:
		return max(row, 0)
	case row >= scrollRow+viewportRows:
		return row - viewportRows + 1
	default:
		return scrollRow
	}
}
