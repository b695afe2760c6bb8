package output

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/grid"
	"github.com/xuri/excelize/v2"
)

// NewWorkbook returns a new workbook holding g as its only sheet.
func NewWorkbook(sheetName string, g *grid.Grid) (*excelize.File, error) {
	f := excelize.NewFile()
	if sheetName != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			f.Close()
			return nil, err
		}
	}
	if err := WriteSheet(f, sheetName, g); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// WriteSheet writes g into the sheet of f: values, formulas, styles, merged
// regions, row heights and column widths. The sheet is created when missing.
// Existing content outside the cells of g is left in place; use ReplaceSheet
// to start from an empty sheet. Style ids that do not exist in f are skipped.
func WriteSheet(f *excelize.File, sheetName string, g *grid.Grid) error {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return err
	}
	if idx < 0 {
		if _, err := f.NewSheet(sheetName); err != nil {
			return err
		}
	}

	lastCol := -1
	for i, r := range g.Rows() {
		if r.Height > 0 {
			if err := f.SetRowHeight(sheetName, i+1, r.Height); err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
		}
		for col, c := range r.All() {
			lastCol = max(lastCol, col)
			cellName, err := grid.CellName(i, col)
			if err != nil {
				return err
			}
			if err := writeValue(f, sheetName, cellName, c.Value()); err != nil {
				return fmt.Errorf("cell %s: %w", cellName, err)
			}
			if style := c.Style(); style != 0 {
				if _, err := f.GetStyle(style); err != nil {
					continue
				}
				if err := f.SetCellStyle(sheetName, cellName, cellName, style); err != nil {
					return fmt.Errorf("cell %s: %w", cellName, err)
				}
			}
		}
	}

	for _, r := range g.Regions() {
		lastCol = max(lastCol, r.LastCol)
		start, err := grid.CellName(r.FirstRow, r.FirstCol)
		if err != nil {
			return err
		}
		end, err := grid.CellName(r.LastRow, r.LastCol)
		if err != nil {
			return err
		}
		if err := f.MergeCell(sheetName, start, end); err != nil {
			return fmt.Errorf("merge %s:%s: %w", start, end, err)
		}
	}

	for col, w := range g.ColumnWidths() {
		name, err := grid.ColumnName(col)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, name, name, w); err != nil {
			return fmt.Errorf("column %s: %w", name, err)
		}
	}

	lastRow := g.LastRow()
	for _, r := range g.Regions() {
		lastRow = max(lastRow, r.LastRow)
	}
	if lastRow < 0 || lastCol < 0 {
		return nil
	}
	end, err := grid.CellName(lastRow, lastCol)
	if err != nil {
		return err
	}
	return f.SetSheetDimension(sheetName, "A1:"+end)
}

func writeValue(f *excelize.File, sheetName, cellName string, v grid.Value) error {
	switch v.Kind() {
	case grid.KindNumber:
		n, _ := v.Float()
		return f.SetCellValue(sheetName, cellName, n)
	case grid.KindBoolean:
		b, _ := v.Boolean()
		return f.SetCellValue(sheetName, cellName, b)
	case grid.KindDateTime, grid.KindDate:
		t, _ := v.Time()
		return f.SetCellValue(sheetName, cellName, t)
	case grid.KindText:
		s, _ := v.Str()
		return f.SetCellValue(sheetName, cellName, s)
	case grid.KindFormula:
		expr, _ := v.Expr()
		return f.SetCellFormula(sheetName, cellName, expr)
	default:
		return f.SetCellValue(sheetName, cellName, nil)
	}
}

// ReplaceSheet writes g into a fresh sheet named sheetName, discarding any
// previous content of that sheet. A replaced sheet moves to the end of the
// sheet list and stays active if it was.
func ReplaceSheet(f *excelize.File, sheetName string, g *grid.Grid) error {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return err
	}
	if idx < 0 {
		return WriteSheet(f, sheetName, g)
	}

	wasActive := f.GetActiveSheetIndex() == idx
	tmp := scratchSheetName(f)
	if err := WriteSheet(f, tmp, g); err != nil {
		f.DeleteSheet(tmp)
		return err
	}
	if err := f.DeleteSheet(sheetName); err != nil {
		return err
	}
	if err := f.SetSheetName(tmp, sheetName); err != nil {
		return err
	}
	if wasActive {
		newIdx, err := f.GetSheetIndex(sheetName)
		if err != nil {
			return err
		}
		f.SetActiveSheet(newIdx)
	}
	return nil
}

// scratchSheetName returns a sheet name not used in f.
// Sheet names are compared case-insensitively.
func scratchSheetName(f *excelize.File) string {
	names := f.GetSheetList()
	for i := 1; ; i++ {
		name := fmt.Sprintf("~tabgrid%d", i)
		if !slices.ContainsFunc(names, func(n string) bool { return strings.EqualFold(n, name) }) {
			return name
		}
	}
}

// Bytes returns f encoded as an xlsx document.
func Bytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTempFile saves f to a new temporary file and returns its path.
// The caller removes the file.
func WriteTempFile(f *excelize.File) (string, error) {
	tmp, err := os.CreateTemp("", "excel*.xlsx")
	if err != nil {
		return "", err
	}
	if err := f.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
