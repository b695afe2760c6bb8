package models

// GridData represents structured data for a single grid.
type GridData struct {
	// Rows contains the stored rows with their cell values.
	Rows []RowData `json:"rows,omitempty" yaml:"rows,omitempty"`
	// MergedRanges contains merged regions as A1 ranges (e.g. "A1:B3").
	MergedRanges []string `json:"merged_ranges,omitempty" yaml:"merged_ranges,omitempty"`
	// Columns contains columns with an explicit width.
	Columns []ColumnData `json:"columns,omitempty" yaml:"columns,omitempty"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty" yaml:"table_candidates,omitempty"`
}

// ColumnData records the width of one column.
type ColumnData struct {
	// Col is the column letter.
	Col string `json:"col" yaml:"col"`
	// Width is the column width in characters.
	Width float64 `json:"width" yaml:"width"`
}
