package grid

import "fmt"

// Region is a merged rectangle of cells, bounds inclusive and 0-based.
// Its anchor is (FirstRow, FirstCol).
type Region struct {
	FirstRow int
	FirstCol int
	LastRow  int
	LastCol  int
}

// NewRegion returns the region spanning the two corners.
func NewRegion(firstRow, firstCol, lastRow, lastCol int) Region {
	return Region{FirstRow: firstRow, FirstCol: firstCol, LastRow: lastRow, LastCol: lastCol}
}

// Contains reports whether (row, col) lies inside r.
func (r Region) Contains(row, col int) bool {
	return row >= r.FirstRow && row <= r.LastRow && col >= r.FirstCol && col <= r.LastCol
}

// IsAnchor reports whether (row, col) is the top-left cell of r.
func (r Region) IsAnchor(row, col int) bool {
	return row == r.FirstRow && col == r.FirstCol
}

// Valid reports whether r has non-negative, non-inverted bounds.
func (r Region) Valid() bool {
	return r.FirstRow >= 0 && r.FirstCol >= 0 && r.FirstRow <= r.LastRow && r.FirstCol <= r.LastCol
}

// Degenerate reports whether r covers a single cell.
func (r Region) Degenerate() bool {
	return r.FirstRow == r.LastRow && r.FirstCol == r.LastCol
}

// Vertical reports whether r is one column wide and spans several rows.
func (r Region) Vertical() bool {
	return r.FirstCol == r.LastCol && r.FirstRow < r.LastRow
}

// Overlaps reports whether r and o share at least one cell.
func (r Region) Overlaps(o Region) bool {
	return r.FirstRow <= o.LastRow && o.FirstRow <= r.LastRow &&
		r.FirstCol <= o.LastCol && o.FirstCol <= r.LastCol
}

// Within reports whether r lies entirely inside o.
func (r Region) Within(o Region) bool {
	return r.FirstRow >= o.FirstRow && r.LastRow <= o.LastRow &&
		r.FirstCol >= o.FirstCol && r.LastCol <= o.LastCol
}

// Rows returns the number of rows covered by r.
func (r Region) Rows() int { return r.LastRow - r.FirstRow + 1 }

// Cols returns the number of columns covered by r.
func (r Region) Cols() int { return r.LastCol - r.FirstCol + 1 }

// Offset returns r moved by dr rows and dc columns.
func (r Region) Offset(dr, dc int) Region {
	return Region{
		FirstRow: r.FirstRow + dr,
		FirstCol: r.FirstCol + dc,
		LastRow:  r.LastRow + dr,
		LastCol:  r.LastCol + dc,
	}
}

// Ref renders r as an A1 range such as "A1:B3".
func (r Region) Ref() (string, error) {
	start, err := CellName(r.FirstRow, r.FirstCol)
	if err != nil {
		return "", err
	}
	end, err := CellName(r.LastRow, r.LastCol)
	if err != nil {
		return "", err
	}
	return start + ":" + end, nil
}

func (r Region) String() string {
	if ref, err := r.Ref(); err == nil {
		return ref
	}
	return fmt.Sprintf("(%d,%d):(%d,%d)", r.FirstRow, r.FirstCol, r.LastRow, r.LastCol)
}
