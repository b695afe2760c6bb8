// Package grid implements an in-memory spreadsheet grid: sparse rows of typed
// cells plus a registry of merged regions, with merge-aware value resolution,
// structural edits, keyword search and reduce-style row collapsing.
//
// A Grid is a plain mutable value without internal locking. Callers that share
// one across goroutines must serialize access themselves.
package grid

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Cell is a single value slot. The style id is opaque to the engine and is
// carried through clears and row insertion.
type Cell struct {
	value Value
	style int
}

// Value returns the stored value.
func (c *Cell) Value() Value { return c.value }

// SetValue replaces the stored value.
func (c *Cell) SetValue(v Value) { c.value = v }

// SetBlank clears the value and keeps the style.
func (c *Cell) SetBlank() { c.value = Value{} }

// Style returns the opaque style id.
func (c *Cell) Style() int { return c.style }

// SetStyle sets the opaque style id.
func (c *Cell) SetStyle(id int) { c.style = id }

// Row is a sparse sequence of cells indexed by column.
type Row struct {
	// Height is the row height in points; 0 means the default height.
	Height float64

	cells []*Cell
}

// Cell returns the cell at col, or nil when none is stored.
func (r *Row) Cell(col int) *Cell {
	if r == nil || col < 0 || col >= len(r.cells) {
		return nil
	}
	return r.cells[col]
}

// CreateCell returns the cell at col, creating a blank one if needed.
func (r *Row) CreateCell(col int) *Cell {
	if col >= len(r.cells) {
		r.cells = append(r.cells, make([]*Cell, col+1-len(r.cells))...)
	}
	if r.cells[col] == nil {
		r.cells[col] = &Cell{}
	}
	return r.cells[col]
}

// Len returns one past the last column holding a cell.
func (r *Row) Len() int {
	if r == nil {
		return 0
	}
	return len(r.cells)
}

// All iterates the stored cells in column order.
func (r *Row) All() iter.Seq2[int, *Cell] {
	return func(yield func(int, *Cell) bool) {
		if r == nil {
			return
		}
		for col, c := range r.cells {
			if c == nil {
				continue
			}
			if !yield(col, c) {
				return
			}
		}
	}
}

func (r *Row) clone() *Row {
	out := &Row{Height: r.Height, cells: make([]*Cell, len(r.cells))}
	for col, c := range r.cells {
		if c != nil {
			cp := *c
			out.cells[col] = &cp
		}
	}
	return out
}

// Grid owns rows, cells, merged regions and column widths.
type Grid struct {
	rows    []*Row
	regions []Region
	widths  map[int]float64
}

// New returns an empty grid.
func New() *Grid {
	return &Grid{widths: make(map[int]float64)}
}

// Row returns the row at i, or nil when it is missing.
func (g *Grid) Row(i int) *Row {
	if i < 0 || i >= len(g.rows) {
		return nil
	}
	return g.rows[i]
}

// CreateRow returns the row at i, creating a blank one if needed.
// i must not be negative.
func (g *Grid) CreateRow(i int) *Row {
	if i >= len(g.rows) {
		g.rows = append(g.rows, make([]*Row, i+1-len(g.rows))...)
	}
	if g.rows[i] == nil {
		g.rows[i] = &Row{}
	}
	return g.rows[i]
}

// Cell returns the stored cell at (row, col), or nil.
func (g *Grid) Cell(row, col int) *Cell {
	return g.Row(row).Cell(col)
}

// CreateCell returns the cell at (row, col), creating the row and cell if
// needed. It bypasses merge guards; use WriteCell for guarded writes.
func (g *Grid) CreateCell(row, col int) *Cell {
	return g.CreateRow(row).CreateCell(col)
}

// LastRow returns the highest row index present, or -1 for an empty grid.
func (g *Grid) LastRow() int {
	for i := len(g.rows) - 1; i >= 0; i-- {
		if g.rows[i] != nil {
			return i
		}
	}
	return -1
}

// Rows iterates the present rows in index order.
func (g *Grid) Rows() iter.Seq2[int, *Row] {
	return func(yield func(int, *Row) bool) {
		for i, r := range g.rows {
			if r == nil {
				continue
			}
			if !yield(i, r) {
				return
			}
		}
	}
}

// Regions returns a copy of the merged regions in registration order.
func (g *Grid) Regions() []Region {
	return slices.Clone(g.regions)
}

// NumRegions returns the number of merged regions.
func (g *Grid) NumRegions() int {
	return len(g.regions)
}

// SetColumnWidth sets the width of col in characters.
func (g *Grid) SetColumnWidth(col int, width float64) {
	if g.widths == nil {
		g.widths = make(map[int]float64)
	}
	g.widths[col] = width
}

// ColumnWidth returns the width recorded for col.
func (g *Grid) ColumnWidth(col int) (float64, bool) {
	w, ok := g.widths[col]
	return w, ok
}

// ColumnWidths returns a copy of all recorded column widths.
func (g *Grid) ColumnWidths() map[int]float64 {
	return maps.Clone(g.widths)
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		rows:    make([]*Row, len(g.rows)),
		regions: slices.Clone(g.regions),
		widths:  maps.Clone(g.widths),
	}
	if out.widths == nil {
		out.widths = make(map[int]float64)
	}
	for i, r := range g.rows {
		if r != nil {
			out.rows[i] = r.clone()
		}
	}
	return out
}

// Validate checks that every region is well formed, not degenerate and
// disjoint from every other region.
func (g *Grid) Validate() error {
	for i, r := range g.regions {
		if !r.Valid() || r.Degenerate() {
			return fmt.Errorf("region %v: %w", r, ErrInvalidArgument)
		}
		for _, o := range g.regions[i+1:] {
			if r.Overlaps(o) {
				return fmt.Errorf("%v and %v: %w", r, o, ErrRegionOverlap)
			}
		}
	}
	return nil
}

// trimRows drops trailing missing rows.
func (g *Grid) trimRows() {
	n := g.LastRow() + 1
	clear(g.rows[n:])
	g.rows = g.rows[:n]
}
