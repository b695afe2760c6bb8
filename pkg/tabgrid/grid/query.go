package grid

import "strings"

// MergedRegion returns the region containing (row, col).
// Regions never overlap, so the first match is the only one.
func (g *Grid) MergedRegion(row, col int) (Region, bool) {
	for _, r := range g.regions {
		if r.Contains(row, col) {
			return r, true
		}
	}
	return Region{}, false
}

// IsAnchor reports whether (row, col) is the top-left cell of some region.
func (g *Grid) IsAnchor(row, col int) bool {
	for _, r := range g.regions {
		if r.IsAnchor(row, col) {
			return true
		}
	}
	return false
}

// EffectiveValue returns the trimmed display value of (row, col) after merge
// resolution. Two merge conventions are handled: only the anchor cell stored
// with the other positions missing, or every position stored with the
// non-anchor cells rendering empty. It returns false when the row is missing,
// or when nothing is stored at the position and no region covers it.
func (g *Grid) EffectiveValue(row, col int) (string, bool) {
	r := g.Row(row)
	if r == nil {
		return "", false
	}

	if c := r.Cell(col); c != nil {
		value := c.value.Format()
		if value == "" {
			if region, ok := g.MergedRegion(row, col); ok {
				value = g.anchorValue(region)
			}
		}
		return strings.TrimSpace(value), true
	}

	region, ok := g.MergedRegion(row, col)
	if !ok {
		return "", false
	}
	anchor := g.Cell(region.FirstRow, region.FirstCol)
	if anchor == nil {
		return "", false
	}
	return strings.TrimSpace(anchor.value.Format()), true
}

// Value returns the effective value or "" when absent.
func (g *Grid) Value(row, col int) string {
	v, _ := g.EffectiveValue(row, col)
	return v
}

func (g *Grid) anchorValue(region Region) string {
	anchor := g.Cell(region.FirstRow, region.FirstCol)
	if anchor == nil {
		return ""
	}
	return anchor.value.Format()
}
