package tabgrid

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/grid"
)

// ColumnSpec describes one column of a grid built from records.
type ColumnSpec struct {
	// Header is written to the first row.
	Header string `validate:"required"`
	// Width is the column width in characters. Zero keeps the default width.
	Width float64 `validate:"gte=0,lt=255"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func specValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// FromRecords builds a grid with a header row taken from cols and one row per
// record below it. Values are written like WriteCell: nil values leave the
// cell missing. A record longer than cols is written in full.
func FromRecords(cols []ColumnSpec, records [][]interface{}) (*grid.Grid, error) {
	v := specValidator()
	for i, spec := range cols {
		if err := v.Struct(spec); err != nil {
			return nil, fmt.Errorf("%w: column %d: %v", ErrInvalidColumnSpec, i, err)
		}
	}

	g := grid.New()
	for col, spec := range cols {
		if err := g.WriteCell(0, col, spec.Header); err != nil {
			return nil, err
		}
		if spec.Width > 0 {
			g.SetColumnWidth(col, spec.Width)
		}
	}
	for i, record := range records {
		g.CreateRow(i + 1)
		for col, value := range record {
			if err := grid.IgnoreRejected(g.WriteCell(i+1, col, value)); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// FromStructs builds a grid from a slice of structs (or struct pointers).
// Exported fields become columns in declaration order. The `excel` tag sets
// the header and an optional width, as in `excel:"Unit Price,width=12"`;
// `excel:"-"` skips the field. Untagged fields use the field name.
func FromStructs(items interface{}) (*grid.Grid, error) {
	rv := reflect.ValueOf(items)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: expected a slice of structs, got %T", ErrInvalidColumnSpec, items)
	}

	t := rv.Type().Elem()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: expected a slice of structs, got %T", ErrInvalidColumnSpec, items)
	}

	cols, fields, err := structColumns(t)
	if err != nil {
		return nil, err
	}

	records := make([][]interface{}, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item := rv.Index(i)
		if item.Kind() == reflect.Ptr {
			if item.IsNil() {
				records = append(records, nil)
				continue
			}
			item = item.Elem()
		}
		record := make([]interface{}, len(fields))
		for j, idx := range fields {
			record[j] = item.FieldByIndex(idx).Interface()
		}
		records = append(records, record)
	}
	return FromRecords(cols, records)
}

func structColumns(t reflect.Type) ([]ColumnSpec, [][]int, error) {
	var cols []ColumnSpec
	var fields [][]int
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		tag := f.Tag.Get("excel")
		if tag == "-" {
			continue
		}

		spec := ColumnSpec{Header: f.Name}
		parts := strings.Split(tag, ",")
		if name := strings.TrimSpace(parts[0]); name != "" {
			spec.Header = name
		}
		for _, opt := range parts[1:] {
			key, value, _ := strings.Cut(strings.TrimSpace(opt), "=")
			if key != "width" {
				return nil, nil, fmt.Errorf("%w: field %s: unknown option %q", ErrInvalidColumnSpec, f.Name, key)
			}
			w, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: field %s: width %q", ErrInvalidColumnSpec, f.Name, value)
			}
			spec.Width = w
		}
		cols = append(cols, spec)
		fields = append(fields, f.Index)
	}
	return cols, fields, nil
}
