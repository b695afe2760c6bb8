package grid

import (
	"fmt"
	"slices"
)

// WriteCell writes v at (row, col) without merging. See WriteCellSpan.
func (g *Grid) WriteCell(row, col int, v interface{}) error {
	return g.WriteCellSpan(row, col, v, 1)
}

// WriteCellSpan is a guarded write. v is coerced with ValueOf. A nil v, or a
// target inside a merged region that is not the region's anchor, leaves the
// grid untouched and yields ErrWriteRejected. When spanRows > 1 a vertical
// region covering rows [row, row+spanRows-1] at col is registered.
func (g *Grid) WriteCellSpan(row, col int, v interface{}, spanRows int) error {
	if row < 0 || col < 0 {
		return opErr("write", row, col, ErrInvalidArgument)
	}
	if spanRows <= 0 {
		return opErr("write", row, col, fmt.Errorf("span %d: %w", spanRows, ErrInvalidArgument))
	}
	value, ok := ValueOf(v)
	if !ok {
		return opErr("write", row, col, fmt.Errorf("nil value: %w", ErrWriteRejected))
	}
	if region, ok := g.MergedRegion(row, col); ok && !region.IsAnchor(row, col) {
		return opErr("write", row, col, fmt.Errorf("inside %v: %w", region, ErrWriteRejected))
	}

	var span Region
	if spanRows > 1 {
		span = NewRegion(row, col, row+spanRows-1, col)
		for _, r := range g.regions {
			if r.Overlaps(span) {
				return opErr("write", row, col, fmt.Errorf("span %v hits %v: %w", span, r, ErrRegionOverlap))
			}
		}
	}

	g.CreateCell(row, col).SetValue(value)
	if spanRows > 1 {
		g.regions = append(g.regions, span)
	}
	return nil
}

// AddMergedRegion registers r. Single-cell regions are ignored. Overlap with
// existing regions is not checked; see Validate.
func (g *Grid) AddMergedRegion(r Region) error {
	if !r.Valid() {
		return opErr("merge", r.FirstRow, r.FirstCol, fmt.Errorf("region %v: %w", r, ErrInvalidArgument))
	}
	if r.Degenerate() {
		return nil
	}
	g.regions = append(g.regions, r)
	return nil
}

// SplitCell removes the region containing (row, col), leaving the values
// where they are. It reports whether a region was removed.
func (g *Grid) SplitCell(row, col int) bool {
	n := len(g.regions)
	g.regions = slices.DeleteFunc(g.regions, func(r Region) bool {
		return r.Contains(row, col)
	})
	return len(g.regions) < n
}

// InsertRows shifts every row at or below startRow down by count and fills
// the vacated slots with blank rows carrying the height and cell styles of
// the row that was at startRow. A missing row at startRow is created first.
// Regions anchored at or below startRow move with their rows; regions that
// straddle startRow are left as they are.
func (g *Grid) InsertRows(startRow, count int) error {
	if startRow < 0 || count <= 0 {
		return opErr("insert rows", startRow, 0, fmt.Errorf("count %d: %w", count, ErrInvalidArgument))
	}

	source := g.CreateRow(startRow)
	g.rows = slices.Insert(g.rows, startRow, make([]*Row, count)...)

	for i, r := range g.regions {
		if r.FirstRow >= startRow {
			g.regions[i] = r.Offset(count, 0)
		}
	}

	for i := startRow; i < startRow+count; i++ {
		row := &Row{Height: source.Height}
		for col, c := range source.All() {
			row.CreateCell(col).SetStyle(c.style)
		}
		g.rows[i] = row
	}
	return nil
}

// ClearRange blanks every stored cell inside the rectangle, keeping styles
// and region membership.
func (g *Grid) ClearRange(firstRow, firstCol, lastRow, lastCol int) error {
	if firstRow < 0 || firstCol < 0 || lastRow < firstRow || lastCol < firstCol {
		return opErr("clear", firstRow, firstCol, fmt.Errorf("range to (%d, %d): %w", lastRow, lastCol, ErrInvalidArgument))
	}
	for i := firstRow; i <= lastRow && i < len(g.rows); i++ {
		r := g.rows[i]
		if r == nil {
			continue
		}
		for col := firstCol; col <= lastCol && col < len(r.cells); col++ {
			if c := r.cells[col]; c != nil {
				c.SetBlank()
			}
		}
	}
	return nil
}

// ClearRows blanks every stored cell of rows startRow..endRow, keeping styles.
func (g *Grid) ClearRows(startRow, endRow int) error {
	if startRow < 0 || endRow < startRow {
		return opErr("clear rows", startRow, 0, fmt.Errorf("end row %d: %w", endRow, ErrInvalidArgument))
	}
	for i := startRow; i <= endRow && i < len(g.rows); i++ {
		for _, c := range g.rows[i].All() {
			c.SetBlank()
		}
	}
	return nil
}

// RemoveRow deletes row and shifts the rows below it up by one.
//
// Regions below the row move up and regions lying entirely on the row are
// dropped. Regions spanning the row are not repaired and end up covering a
// different set of cells afterwards.
func (g *Grid) RemoveRow(row int) error {
	if row < 0 {
		return opErr("remove row", row, 0, ErrInvalidArgument)
	}
	last := g.LastRow()
	if row > last {
		return nil
	}

	g.regions = slices.DeleteFunc(g.regions, func(r Region) bool {
		return r.FirstRow == row && r.LastRow == row
	})
	if row == last {
		g.rows[row] = nil
		g.trimRows()
		return nil
	}

	g.rows = slices.Delete(g.rows, row, row+1)
	for i, r := range g.regions {
		if r.FirstRow > row {
			g.regions[i] = r.Offset(-1, 0)
		}
	}
	return nil
}

// RemoveRows removes rows startRow..endRow by removing startRow repeatedly.
// It shares RemoveRow's limitation on spanning regions.
func (g *Grid) RemoveRows(startRow, endRow int) error {
	if startRow < 0 || endRow < startRow {
		return opErr("remove rows", startRow, 0, fmt.Errorf("end row %d: %w", endRow, ErrInvalidArgument))
	}
	for i := startRow; i <= endRow; i++ {
		if err := g.RemoveRow(startRow); err != nil {
			return err
		}
	}
	return nil
}

// InsertSumFormula stores SUM(<start>:<end>) at (row, col), summing col over
// rows sumStartRow..sumEndRow.
func (g *Grid) InsertSumFormula(row, col, sumStartRow, sumEndRow int) error {
	if row < 0 || col < 0 || sumStartRow < 0 || sumEndRow < sumStartRow {
		return opErr("sum formula", row, col, fmt.Errorf("rows %d..%d: %w", sumStartRow, sumEndRow, ErrInvalidArgument))
	}
	start, err := CellName(sumStartRow, col)
	if err != nil {
		return opErr("sum formula", row, col, err)
	}
	end, err := CellName(sumEndRow, col)
	if err != nil {
		return opErr("sum formula", row, col, err)
	}
	g.CreateCell(row, col).SetValue(Formula("SUM(" + start + ":" + end + ")"))
	return nil
}

// CopyCellValue copies the value of src into dst. Formula cells are skipped.
func CopyCellValue(src, dst *Cell) {
	if src == nil || dst == nil || src.value.kind == KindFormula {
		return
	}
	dst.value = src.value
}

type copiedCell struct {
	row, col int
	cell     Cell
}

// CopyRange copies the cells of src into dst with (dstRow, dstCol) as the
// new top-left corner: values (formulas skipped), styles, row heights and
// column widths. Regions lying entirely inside src are re-registered at the
// target. dst may be g itself.
func (g *Grid) CopyRange(src Region, dst *Grid, dstRow, dstCol int) error {
	if dst == nil || !src.Valid() || dstRow < 0 || dstCol < 0 {
		return opErr("copy", dstRow, dstCol, fmt.Errorf("source %v: %w", src, ErrInvalidArgument))
	}
	dr, dc := dstRow-src.FirstRow, dstCol-src.FirstCol

	var moved []Region
	for _, r := range g.regions {
		if r.Within(src) {
			moved = append(moved, r.Offset(dr, dc))
		}
	}
	for _, m := range moved {
		for _, r := range dst.regions {
			if m.Overlaps(r) {
				return opErr("copy", dstRow, dstCol, fmt.Errorf("%v hits %v: %w", m, r, ErrRegionOverlap))
			}
		}
	}

	// snapshot first so that copying within one grid reads unmodified cells
	cells := make([]copiedCell, 0, src.Rows()*src.Cols())
	heights := make([]float64, src.Rows())
	for i := src.FirstRow; i <= src.LastRow; i++ {
		if r := g.Row(i); r != nil {
			heights[i-src.FirstRow] = r.Height
		}
		for j := src.FirstCol; j <= src.LastCol; j++ {
			cc := copiedCell{row: i + dr, col: j + dc}
			if c := g.Cell(i, j); c != nil {
				cc.cell = *c
			}
			cells = append(cells, cc)
		}
	}
	widths := make(map[int]float64)
	for j := src.FirstCol; j <= src.LastCol; j++ {
		if w, ok := g.widths[j]; ok {
			widths[j+dc] = w
		}
	}

	for _, cc := range cells {
		target := dst.CreateCell(cc.row, cc.col)
		if cc.cell.value.kind != KindFormula {
			target.value = cc.cell.value
		}
		target.style = cc.cell.style
	}
	for k, h := range heights {
		dst.CreateRow(dstRow + k).Height = h
	}
	for col, w := range widths {
		dst.SetColumnWidth(col, w)
	}
	dst.regions = append(dst.regions, moved...)
	return dst.Validate()
}
