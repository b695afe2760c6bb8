package models

// WorkbookData represents workbook-level container with per-sheet data.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name" yaml:"book_name"`
	// Sheets maps sheet name to GridData.
	Sheets map[string]GridData `json:"sheets" yaml:"sheets"`
}
