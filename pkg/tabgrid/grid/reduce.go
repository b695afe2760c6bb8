package grid

import (
	"fmt"
	"slices"
	"strings"
)

// KeySeparator joins the per-column values of a grouping key.
const KeySeparator = "-"

// Accumulator folds cur into acc. It mutates acc in place.
type Accumulator func(acc, cur *Cell)

// ColumnAccumulator binds an Accumulator to a column.
type ColumnAccumulator struct {
	Col int
	Fn  Accumulator
}

// ReduceResult summarizes a MergedRegionReduce pass.
type ReduceResult struct {
	// Regions is the number of merged regions scanned.
	Regions int
	// Groups is the number of groups that collapsed at least one row.
	Groups int
	// Removed lists the consumed rows in descending order. Their contents are
	// gone but the rows below have not moved; pass them to Compact to close
	// the gaps.
	Removed []int
}

// MergedRegionReduce collapses rows sharing a grouping key inside every
// vertical region anchored at mergedCol. startRow must not be negative; it
// does not restrict which regions are scanned. The key of a row is the
// effective values of sameCols joined by KeySeparator, absent values skipped.
// Within each group of two or more rows the first row survives; every
// accumulator is applied to the survivor and each later row, and the later
// rows are marked for removal. Removal happens once after all regions are
// scanned so that row indices stay stable during the pass.
func (g *Grid) MergedRegionReduce(startRow, mergedCol int, sameCols []int, accumulators []ColumnAccumulator) (ReduceResult, error) {
	var res ReduceResult
	if startRow < 0 || mergedCol < 0 {
		return res, opErr("reduce", startRow, mergedCol, ErrInvalidArgument)
	}
	for _, col := range sameCols {
		if col < 0 {
			return res, opErr("reduce", startRow, col, fmt.Errorf("key column: %w", ErrInvalidArgument))
		}
	}
	for _, acc := range accumulators {
		if acc.Col < 0 || acc.Fn == nil {
			return res, opErr("reduce", startRow, acc.Col, fmt.Errorf("accumulator: %w", ErrInvalidArgument))
		}
	}

	pending := make(map[int]struct{})
	for _, region := range g.regions {
		if region.FirstCol != mergedCol || region.FirstRow >= region.LastRow {
			continue
		}
		res.Regions++

		var order []string
		groups := make(map[string][]int)
		for i := region.FirstRow; i <= region.LastRow; i++ {
			if g.Row(i) == nil {
				continue
			}
			key := g.groupKey(i, sameCols)
			if _, seen := groups[key]; !seen {
				order = append(order, key)
			}
			groups[key] = append(groups[key], i)
		}

		for _, key := range order {
			rows := groups[key]
			if len(rows) < 2 {
				continue
			}
			res.Groups++
			survivor := rows[0]
			for _, i := range rows[1:] {
				for _, acc := range accumulators {
					acc.Fn(g.CreateCell(survivor, acc.Col), g.CreateCell(i, acc.Col))
				}
				pending[i] = struct{}{}
			}
		}
	}

	for i := range pending {
		res.Removed = append(res.Removed, i)
	}
	slices.Sort(res.Removed)
	slices.Reverse(res.Removed)
	for _, i := range res.Removed {
		g.rows[i] = nil
	}
	g.trimRows()
	return res, nil
}

func (g *Grid) groupKey(row int, cols []int) string {
	parts := make([]string, 0, len(cols))
	for _, col := range cols {
		if v, ok := g.EffectiveValue(row, col); ok {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, KeySeparator)
}

// Compact physically deletes the given rows, shifting the rows below up.
// Unlike RemoveRow it keeps regions consistent: a region covering a deleted
// row shrinks by one row, regions below move up, and regions reduced to a
// single cell are dropped.
func (g *Grid) Compact(rows []int) error {
	targets := slices.Clone(rows)
	for _, r := range targets {
		if r < 0 {
			return opErr("compact", r, 0, ErrInvalidArgument)
		}
	}
	slices.Sort(targets)
	targets = slices.Compact(targets)
	slices.Reverse(targets)

	for _, row := range targets {
		if row >= len(g.rows) {
			continue
		}
		g.rows = slices.Delete(g.rows, row, row+1)
		regions := g.regions[:0]
		for _, r := range g.regions {
			switch {
			case r.FirstRow > row:
				r = r.Offset(-1, 0)
			case r.LastRow >= row:
				r.LastRow--
			}
			if r.FirstRow <= r.LastRow && !r.Degenerate() {
				regions = append(regions, r)
			}
		}
		g.regions = regions
	}
	g.trimRows()
	return nil
}
