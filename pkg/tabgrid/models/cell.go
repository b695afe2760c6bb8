// Package models defines serializable snapshots of grids.
package models

// RowData represents a single stored row of a grid.
type RowData struct {
	// R is the row index (1-based).
	R int `json:"r" yaml:"r"`
	// Height is the row height in points, omitted for the default height.
	Height float64 `json:"height,omitempty" yaml:"height,omitempty"`
	// C maps column index (1-based, as string) to cell value.
	C map[string]interface{} `json:"c" yaml:"c"`
	// Formulas maps column index to formula text (optional).
	Formulas map[string]string `json:"formulas,omitempty" yaml:"formulas,omitempty"`
}
