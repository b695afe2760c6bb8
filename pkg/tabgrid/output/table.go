package output

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/grid"
)

// RenderTable prints the effective values of g as a text table. The first
// column holds 1-based row numbers and the header holds column letters.
// Missing rows are not printed.
func RenderTable(w io.Writer, g *grid.Grid) error {
	width := 0
	for _, r := range g.Rows() {
		width = max(width, r.Len())
	}
	for _, r := range g.Regions() {
		width = max(width, r.LastCol+1)
	}

	header := make([]any, 0, width+1)
	header = append(header, "#")
	for col := 0; col < width; col++ {
		name, err := grid.ColumnName(col)
		if err != nil {
			return err
		}
		header = append(header, name)
	}

	var rows [][]string
	for i := range g.Rows() {
		row := make([]string, 0, width+1)
		row = append(row, strconv.Itoa(i+1))
		for col := 0; col < width; col++ {
			v, _ := g.EffectiveValue(i, col)
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	table := tablewriter.NewWriter(w)
	table.Header(header...)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
