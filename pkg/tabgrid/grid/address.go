package grid

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ColumnName converts a 0-based column index to its letters: 0 -> "A",
// 25 -> "Z", 26 -> "AA".
func ColumnName(col int) (string, error) {
	if col < 0 {
		return "", fmt.Errorf("column %d: %w", col, ErrAddressOutOfRange)
	}
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return "", fmt.Errorf("column %d: %w", col, ErrAddressOutOfRange)
	}
	return name, nil
}

// ColumnIndex converts column letters ("A", "ab") to a 0-based index.
func ColumnIndex(name string) (int, error) {
	n, err := excelize.ColumnNameToNumber(strings.ToUpper(strings.TrimSpace(name)))
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, ErrAddressOutOfRange)
	}
	return n - 1, nil
}

// CellName converts 0-based coordinates to a 1-based A1 address:
// (0, 0) -> "A1", (0, 27) -> "AB1".
func CellName(row, col int) (string, error) {
	if row < 0 || col < 0 {
		return "", fmt.Errorf("cell (%d, %d): %w", row, col, ErrAddressOutOfRange)
	}
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return "", fmt.Errorf("cell (%d, %d): %w", row, col, ErrAddressOutOfRange)
	}
	return name, nil
}

// ParseCellName converts an A1 address (absolute markers allowed) to
// 0-based coordinates.
func ParseCellName(name string) (row, col int, err error) {
	c, r, err := excelize.CellNameToCoordinates(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "$", "")))
	if err != nil {
		return 0, 0, fmt.Errorf("cell %q: %w", name, ErrAddressOutOfRange)
	}
	return r - 1, c - 1, nil
}
