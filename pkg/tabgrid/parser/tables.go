package parser

import (
	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/grid"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// DetectTables detects table-like regions in a grid.
// Returns a list of cell ranges (e.g., "A1:D10") that likely represent tables.
// Cells covered by a merged region count with their anchor's value.
func DetectTables(g *grid.Grid, params TableDetectionParams) ([]string, error) {
	minRow, maxRow, minCol, maxCol := findDataBounds(g)
	if minRow < 0 {
		return nil, nil
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(g, minRow, maxRow, minCol, maxCol)

	if nonEmptyCells < params.MinNonemptyCells {
		return nil, nil
	}

	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return nil, nil
	}

	ref, err := grid.NewRegion(minRow, minCol, maxRow, maxCol).Ref()
	if err != nil {
		return nil, err
	}
	return []string{ref}, nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(g *grid.Grid) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	width := 0
	for _, row := range g.Rows() {
		width = max(width, row.Len())
	}
	for _, r := range g.Regions() {
		width = max(width, r.LastCol+1)
	}

	for rowIdx := range g.Rows() {
		for colIdx := 0; colIdx < width; colIdx++ {
			if !nonEmpty(g, rowIdx, colIdx) {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(g *grid.Grid, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow; rowIdx++ {
		for colIdx := minCol; colIdx <= maxCol; colIdx++ {
			if nonEmpty(g, rowIdx, colIdx) {
				count++
			}
		}
	}
	return count
}

func nonEmpty(g *grid.Grid, row, col int) bool {
	v, ok := g.EffectiveValue(row, col)
	return ok && v != ""
}
