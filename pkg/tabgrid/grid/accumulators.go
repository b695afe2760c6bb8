package grid

import (
	"strconv"
	"strings"
)

// numeric reads a cell as a number. Blank counts as zero and numeric text is
// parsed.
func numeric(c *Cell) (float64, bool) {
	switch c.value.kind {
	case KindBlank:
		return 0, true
	case KindNumber:
		return c.value.num, true
	case KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(c.value.s), 64)
		return f, err == nil
	}
	return 0, false
}

// Sum adds cur to acc. Cells that cannot be read as numbers are left alone.
func Sum() Accumulator {
	return func(acc, cur *Cell) {
		a, ok := numeric(acc)
		if !ok {
			return
		}
		b, ok := numeric(cur)
		if !ok {
			return
		}
		acc.SetValue(Number(a + b))
	}
}

// Max keeps the larger number.
func Max() Accumulator {
	return func(acc, cur *Cell) {
		b, ok := numeric(cur)
		if !ok || cur.value.IsBlank() {
			return
		}
		if a, ok := numeric(acc); !ok || acc.value.IsBlank() || b > a {
			acc.SetValue(Number(b))
		}
	}
}

// Min keeps the smaller number.
func Min() Accumulator {
	return func(acc, cur *Cell) {
		b, ok := numeric(cur)
		if !ok || cur.value.IsBlank() {
			return
		}
		if a, ok := numeric(acc); !ok || acc.value.IsBlank() || b < a {
			acc.SetValue(Number(b))
		}
	}
}

// Concat appends the display text of cur to acc, separated by sep.
// Empty texts are skipped.
func Concat(sep string) Accumulator {
	return func(acc, cur *Cell) {
		b := cur.value.Format()
		if b == "" {
			return
		}
		a := acc.value.Format()
		if a == "" {
			acc.SetValue(Text(b))
			return
		}
		acc.SetValue(Text(a + sep + b))
	}
}

// Count replaces acc with the number of rows in its group, the survivor
// included. Whatever acc held before is discarded. The running totals live
// in the returned Accumulator, so use a fresh Count for every pass.
func Count() Accumulator {
	counts := make(map[*Cell]int)
	return func(acc, _ *Cell) {
		n, ok := counts[acc]
		if !ok {
			n = 1
		}
		n++
		counts[acc] = n
		acc.SetValue(Number(float64(n)))
	}
}
