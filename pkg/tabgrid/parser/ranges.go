package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/grid"
	"github.com/xuri/excelize/v2"
)

// SkippedRange is a merged range that could not be registered.
type SkippedRange struct {
	Ref string
	Err error
}

// LoadMergedRanges registers the merged ranges of a sheet on g. Ranges that
// cannot be parsed or that overlap one already registered are skipped and
// reported instead of failing the load.
func LoadMergedRanges(f *excelize.File, sheetName string, g *grid.Grid) ([]SkippedRange, error) {
	merged, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	var skipped []SkippedRange
	for _, mc := range merged {
		ref := mc.GetStartAxis() + ":" + mc.GetEndAxis()
		region, err := ParseRange(ref)
		if err != nil {
			skipped = append(skipped, SkippedRange{Ref: ref, Err: err})
			continue
		}
		if hit, ok := overlapping(g, region); ok {
			skipped = append(skipped, SkippedRange{Ref: ref, Err: fmt.Errorf("overlaps %v: %w", hit, grid.ErrRegionOverlap)})
			continue
		}
		if err := g.AddMergedRegion(region); err != nil {
			skipped = append(skipped, SkippedRange{Ref: ref, Err: err})
		}
	}
	return skipped, nil
}

func overlapping(g *grid.Grid, r grid.Region) (grid.Region, bool) {
	for _, o := range g.Regions() {
		if o.Overlaps(r) {
			return o, true
		}
	}
	return grid.Region{}, false
}

// ParseRange parses an A1 range such as "$A$1:$D$10" into a 0-based region.
// A sheet prefix ("'Sheet 1'!A1:B2") is ignored and a single cell yields a
// one-cell region. Reversed corners are normalized.
func ParseRange(ref string) (grid.Region, error) {
	rangeStr := strings.TrimSpace(ref)
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) > 2 || parts[0] == "" {
		return grid.Region{}, fmt.Errorf("range %q: %w", ref, grid.ErrAddressOutOfRange)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(strings.ToUpper(parts[0]))
	if err != nil {
		return grid.Region{}, fmt.Errorf("range %q: %w", ref, grid.ErrAddressOutOfRange)
	}
	endCol, endRow := startCol, startRow
	if len(parts) == 2 {
		endCol, endRow, err = excelize.CellNameToCoordinates(strings.ToUpper(parts[1]))
		if err != nil {
			return grid.Region{}, fmt.Errorf("range %q: %w", ref, grid.ErrAddressOutOfRange)
		}
	}

	return grid.NewRegion(
		min(startRow, endRow)-1,
		min(startCol, endCol)-1,
		max(startRow, endRow)-1,
		max(startCol, endCol)-1,
	), nil
}
