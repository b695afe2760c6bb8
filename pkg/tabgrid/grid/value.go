package grid

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// DateTimeLayout is the canonical pattern used when a date/time is written as text.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateLayout is the display pattern of date-only cells.
const DateLayout = "2006-01-02"

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindBlank is an empty cell value.
	KindBlank Kind = iota
	// KindNumber is a float64 value.
	KindNumber
	// KindBoolean is a TRUE/FALSE value.
	KindBoolean
	// KindDateTime is a timestamp rendered with DateTimeLayout.
	KindDateTime
	// KindDate is a calendar date rendered with DateLayout.
	KindDate
	// KindText is a string value.
	KindText
	// KindFormula is an opaque formula expression. It never takes part in
	// value resolution or reduction.
	KindFormula
)

var kindNames = map[Kind]string{
	KindBlank:    "blank",
	KindNumber:   "number",
	KindBoolean:  "boolean",
	KindDateTime: "datetime",
	KindDate:     "date",
	KindText:     "text",
	KindFormula:  "formula",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Value is a closed tagged union over the cell value kinds.
// The zero Value is blank.
type Value struct {
	kind Kind
	num  float64
	b    bool
	t    time.Time
	s    string
}

// Blank returns the blank value.
func Blank() Value { return Value{} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// FormattedNumber returns a numeric value that displays as display, the
// text a number format produced for it (e.g. "50%" for 0.5).
func FormattedNumber(f float64, display string) Value {
	return Value{kind: KindNumber, num: f, s: display}
}

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

// DateTime returns a timestamp value.
func DateTime(t time.Time) Value { return Value{kind: KindDateTime, t: t} }

// Date returns a date value; the time of day is discarded.
func Date(t time.Time) Value {
	y, m, d := t.Date()
	return Value{kind: KindDate, t: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// Text returns a string value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Formula returns an opaque formula value. A leading "=" is stripped.
func Formula(expr string) Value {
	return Value{kind: KindFormula, s: strings.TrimPrefix(expr, "=")}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsBlank reports whether v is the blank value.
func (v Value) IsBlank() bool { return v.kind == KindBlank }

// Float returns the numeric payload.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Boolean returns the boolean payload.
func (v Value) Boolean() (bool, bool) {
	if v.kind != KindBoolean {
		return false, false
	}
	return v.b, true
}

// Time returns the payload of date and datetime values.
func (v Value) Time() (time.Time, bool) {
	if v.kind != KindDateTime && v.kind != KindDate {
		return time.Time{}, false
	}
	return v.t, true
}

// Str returns the payload of text values.
func (v Value) Str() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.s, true
}

// Expr returns the expression of formula values, without the leading "=".
func (v Value) Expr() (string, bool) {
	if v.kind != KindFormula {
		return "", false
	}
	return v.s, true
}

// Format renders v the way a cell displays it. Blank and formula values
// render as the empty string.
func (v Value) Format() string {
	switch v.kind {
	case KindNumber:
		if v.s != "" {
			return v.s
		}
		return formatNumber(v.num)
	case KindBoolean:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	case KindDateTime:
		return v.t.Format(DateTimeLayout)
	case KindDate:
		return v.t.Format(DateLayout)
	case KindText:
		return v.s
	default:
		return ""
	}
}

// formatNumber prints plain decimals, switching to exponent notation for
// magnitudes a plain rendering would pad with zeros.
func formatNumber(f float64) string {
	if a := math.Abs(f); a != 0 && (a >= 1e21 || a < 1e-6) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Interface returns the payload as a plain Go value: float64, bool,
// string (dates and text), "=expr" for formulas and nil for blank.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindBoolean:
		return v.b
	case KindDateTime, KindDate, KindText:
		return v.Format()
	case KindFormula:
		return "=" + v.s
	default:
		return nil
	}
}

func (v Value) String() string {
	if v.kind == KindFormula {
		return "=" + v.s
	}
	return v.Format()
}

// Equal reports whether two values hold the same variant and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindBoolean:
		return v.b == o.b
	case KindDateTime, KindDate:
		return v.t.Equal(o.t)
	case KindText, KindFormula:
		return v.s == o.s
	default:
		return true
	}
}

// ValueOf coerces an arbitrary Go value into a Value: numbers become
// KindNumber, booleans KindBoolean, time.Time is rendered as text with
// DateTimeLayout and everything else becomes its string form. It returns
// false for nil and nil pointers.
func ValueOf(x interface{}) (Value, bool) {
	switch v := x.(type) {
	case nil:
		return Value{}, false
	case Value:
		return v, true
	case float64:
		return Number(v), true
	case float32:
		return Number(float64(v)), true
	case int:
		return Number(float64(v)), true
	case int64:
		return Number(float64(v)), true
	case int32:
		return Number(float64(v)), true
	case bool:
		return Bool(v), true
	case time.Time:
		return Text(v.Format(DateTimeLayout)), true
	case string:
		return Text(v), true
	case fmt.Stringer:
		return Text(v.String()), true
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Value{}, false
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int())), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint())), true
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), true
	case reflect.Bool:
		return Bool(rv.Bool()), true
	case reflect.String:
		return Text(rv.String()), true
	}
	return Text(fmt.Sprint(x)), true
}
