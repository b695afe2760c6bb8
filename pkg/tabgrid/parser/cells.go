// Package parser loads xlsx sheets into grids.
package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/grid"
	"github.com/xuri/excelize/v2"
)

const (
	defaultRowHeight = 15.0
	defaultColWidth  = 9.140625
)

// LoadCells reads the values, formulas and cell styles of a sheet into g.
// Empty cells are not stored. The scan covers the sheet dimension as well as
// the rows holding values, so formula cells without a cached result are kept.
func LoadCells(f *excelize.File, sheetName string, g *grid.Grid) error {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return err
	}

	maxRow, maxCol := len(rows), 0
	for _, row := range rows {
		maxCol = max(maxCol, len(row))
	}
	if ref, err := f.GetSheetDimension(sheetName); err == nil && ref != "" {
		if area, err := ParseRange(ref); err == nil {
			maxRow = max(maxRow, area.LastRow+1)
			maxCol = max(maxCol, area.LastCol+1)
		}
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	for rowIdx := 0; rowIdx < maxRow; rowIdx++ {
		for colIdx := 0; colIdx < maxCol; colIdx++ {
			var raw string
			if rowIdx < len(rows) && colIdx < len(rows[rowIdx]) {
				raw = rows[rowIdx][colIdx]
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return err
			}
			formula, err := f.GetCellFormula(sheetName, cellName)
			if err != nil {
				return err
			}
			if raw == "" && formula == "" {
				continue
			}
			style, err := f.GetCellStyle(sheetName, cellName)
			if err != nil {
				return err
			}

			var v grid.Value
			if formula != "" {
				v = grid.Formula(formula)
			} else if v, err = readValue(f, sheetName, cellName, raw, style, date1904); err != nil {
				return err
			}
			c := g.CreateCell(rowIdx, colIdx)
			c.SetValue(v)
			c.SetStyle(style)
		}
	}
	return nil
}

// LoadRowHeights records every row height that differs from the sheet default.
// Only rows already present in g are considered.
func LoadRowHeights(f *excelize.File, sheetName string, g *grid.Grid) error {
	def := defaultRowHeight
	if props, err := f.GetSheetProps(sheetName); err == nil && props.DefaultRowHeight != nil && *props.DefaultRowHeight > 0 {
		def = *props.DefaultRowHeight
	}
	for i, r := range g.Rows() {
		h, err := f.GetRowHeight(sheetName, i+1)
		if err != nil {
			return err
		}
		if math.Abs(h-def) > 1e-9 {
			r.Height = h
		}
	}
	return nil
}

// LoadColumnWidths records every column width that differs from the sheet
// default, up to the widest stored row.
func LoadColumnWidths(f *excelize.File, sheetName string, g *grid.Grid) error {
	def := defaultColWidth
	if props, err := f.GetSheetProps(sheetName); err == nil && props.DefaultColWidth != nil && *props.DefaultColWidth > 0 {
		def = *props.DefaultColWidth
	}
	maxCol := 0
	for _, r := range g.Rows() {
		maxCol = max(maxCol, r.Len())
	}
	for col := 0; col < maxCol; col++ {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		w, err := f.GetColWidth(sheetName, name)
		if err != nil {
			return err
		}
		if math.Abs(w-def) > 1e-9 {
			g.SetColumnWidth(col, w)
		}
	}
	return nil
}

func readValue(f *excelize.File, sheetName, cellName, raw string, style int, date1904 bool) (grid.Value, error) {
	typ, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return grid.Value{}, err
	}
	switch typ {
	case excelize.CellTypeBool:
		return grid.Bool(raw == "1" || strings.EqualFold(raw, "TRUE")), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeError:
		return grid.Text(raw), nil
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return grid.DateTime(t), nil
		}
		return grid.Text(raw), nil
	}

	var n float64
	switch v := parseValue(raw).(type) {
	case int64:
		n = float64(v)
	case float64:
		n = v
	default:
		return grid.Text(raw), nil
	}

	switch dateKind(f, style) {
	case grid.KindDate:
		if t, err := excelize.ExcelDateToTime(n, date1904); err == nil {
			return grid.Date(t), nil
		}
	case grid.KindDateTime:
		if t, err := excelize.ExcelDateToTime(n, date1904); err == nil {
			return grid.DateTime(t), nil
		}
	}
	if style != 0 {
		if display, err := f.GetCellValue(sheetName, cellName); err == nil && display != "" && display != raw {
			return grid.FormattedNumber(n, display), nil
		}
	}
	return grid.Number(n), nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

var numFmtLiteral = regexp.MustCompile(`\[[^\]]*\]|"[^"]*"|\\.`)

// dateKind classifies the number format of a style as a date, a date with a
// time of day, or a plain number.
func dateKind(f *excelize.File, style int) grid.Kind {
	s, err := f.GetStyle(style)
	if err != nil || s == nil {
		return grid.KindNumber
	}
	switch s.NumFmt {
	case 14, 15, 16, 17:
		return grid.KindDate
	case 22:
		return grid.KindDateTime
	}
	if s.CustomNumFmt == nil {
		return grid.KindNumber
	}
	layout := strings.ToLower(numFmtLiteral.ReplaceAllString(*s.CustomNumFmt, ""))
	if !strings.Contains(layout, "y") && !strings.Contains(layout, "d") {
		return grid.KindNumber
	}
	if strings.Contains(layout, "h") || strings.Contains(layout, "s") {
		return grid.KindDateTime
	}
	return grid.KindDate
}
