package tabgrid

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the workbook has no sheet with the given name.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrInvalidColumnSpec indicates a column specification failed validation.
var ErrInvalidColumnSpec = errors.New("invalid column spec")

// LoadError represents an error while loading one part of a sheet.
type LoadError struct {
	SheetName string
	Component string // "cells", "merges", "layout"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(sheetName, component string, err error) *LoadError {
	return &LoadError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
