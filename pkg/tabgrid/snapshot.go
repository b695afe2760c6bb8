package tabgrid

import (
	"maps"
	"slices"
	"strconv"

	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/grid"
	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/models"
	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/parser"
)

// Snapshot converts g into its serializable form. Rows holding only blank
// cells are omitted. Formula cells appear in Formulas in verbose mode and
// are left out of C otherwise.
func Snapshot(g *grid.Grid, opts Options) models.GridData {
	var data models.GridData

	for i, r := range g.Rows() {
		row := models.RowData{
			R:      i + 1,
			Height: r.Height,
			C:      make(map[string]interface{}),
		}
		for col, c := range r.All() {
			key := strconv.Itoa(col + 1)
			v := c.Value()
			switch v.Kind() {
			case grid.KindBlank:
				continue
			case grid.KindFormula:
				if opts.Mode == ModeVerbose {
					if row.Formulas == nil {
						row.Formulas = make(map[string]string)
					}
					row.Formulas[key] = v.String()
				}
				continue
			}
			row.C[key] = v.Interface()
		}
		if len(row.C) > 0 || len(row.Formulas) > 0 {
			data.Rows = append(data.Rows, row)
		}
	}

	for _, r := range g.Regions() {
		data.MergedRanges = append(data.MergedRanges, r.String())
	}

	widths := g.ColumnWidths()
	for _, col := range slices.Sorted(maps.Keys(widths)) {
		name, err := grid.ColumnName(col)
		if err != nil {
			continue
		}
		data.Columns = append(data.Columns, models.ColumnData{Col: name, Width: widths[col]})
	}

	if opts.Mode != ModeLight {
		if tables, err := parser.DetectTables(g, parser.DefaultTableParams()); err == nil {
			data.TableCandidates = tables
		}
	}
	return data
}
