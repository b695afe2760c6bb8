package tabgrid

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/grid"
	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/models"
	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/output"
	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/parser"
	"github.com/xuri/excelize/v2"
)

// Book is an open workbook with one grid per sheet. Edits made to the grids
// are written back by Save, Bytes and WriteTempFile.
type Book struct {
	// Name is the workbook file name (no path).
	Name string

	file   *excelize.File
	sheets []string
	grids  map[string]*grid.Grid
	opts   Options
}

// Load opens an xlsx file and loads every sheet into a grid.
func Load(path string, opts Options) (*Book, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	return newBook(f, filepath.Base(path), opts)
}

// LoadReader reads an xlsx document from r and loads every sheet into a grid.
func LoadReader(r io.Reader, name string, opts Options) (*Book, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, name, err)
	}
	return newBook(f, name, opts)
}

// NewBook returns an empty workbook without sheets.
func NewBook(name string, opts Options) *Book {
	return &Book{
		Name:  name,
		file:  excelize.NewFile(),
		grids: make(map[string]*grid.Grid),
		opts:  opts,
	}
}

func newBook(f *excelize.File, name string, opts Options) (*Book, error) {
	b := &Book{
		Name:  name,
		file:  f,
		grids: make(map[string]*grid.Grid),
		opts:  opts,
	}
	log := opts.logger().WithField("path", name)

	for _, sheetName := range f.GetSheetList() {
		g, err := loadSheet(f, sheetName, opts, log.WithField("sheet", sheetName))
		if err != nil {
			f.Close()
			return nil, err
		}
		b.sheets = append(b.sheets, sheetName)
		b.grids[sheetName] = g
	}
	log.WithField("sheets", len(b.sheets)).Debug("workbook loaded")
	return b, nil
}

// loadSheet builds the grid of one sheet. Failing to read cells fails the
// load; merged ranges and layout degrade to warnings.
func loadSheet(f *excelize.File, sheetName string, opts Options, log logrus.FieldLogger) (*grid.Grid, error) {
	g := grid.New()
	if err := parser.LoadCells(f, sheetName, g); err != nil {
		return nil, NewLoadError(sheetName, "cells", err)
	}

	if opts.ShouldResolveMerges() {
		skipped, err := parser.LoadMergedRanges(f, sheetName, g)
		if err != nil {
			log.WithError(NewLoadError(sheetName, "merges", err)).Warn("merged ranges not loaded")
		}
		for _, s := range skipped {
			log.WithError(s.Err).WithField("ref", s.Ref).Warn("skipping merged range")
		}
	}

	if opts.ShouldIncludeLayout() {
		if err := parser.LoadRowHeights(f, sheetName, g); err != nil {
			log.WithError(NewLoadError(sheetName, "layout", err)).Warn("row heights not loaded")
		}
		if err := parser.LoadColumnWidths(f, sheetName, g); err != nil {
			log.WithError(NewLoadError(sheetName, "layout", err)).Warn("column widths not loaded")
		}
	}

	log.WithFields(logrus.Fields{
		"rows":    g.LastRow() + 1,
		"regions": g.NumRegions(),
	}).Debug("sheet loaded")
	return g, nil
}

// SheetNames returns the sheet names in workbook order.
func (b *Book) SheetNames() []string {
	return slices.Clone(b.sheets)
}

// Sheet returns the grid of the named sheet.
func (b *Book) Sheet(name string) (*grid.Grid, error) {
	g, ok := b.grids[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}
	return g, nil
}

// SetSheet replaces the grid of the named sheet, adding the sheet at the end
// when it does not exist yet.
func (b *Book) SetSheet(name string, g *grid.Grid) {
	if _, ok := b.grids[name]; !ok {
		b.sheets = append(b.sheets, name)
	}
	b.grids[name] = g
}

// Snapshot returns a serializable view of every sheet.
func (b *Book) Snapshot() *models.WorkbookData {
	wb := &models.WorkbookData{
		BookName: b.Name,
		Sheets:   make(map[string]models.GridData, len(b.sheets)),
	}
	for _, name := range b.sheets {
		wb.Sheets[name] = Snapshot(b.grids[name], b.opts)
	}
	return wb
}

// sync rewrites every sheet of the underlying file from its grid. Sheets are
// rewritten in order, so the final sheet order matches b.sheets.
func (b *Book) sync() error {
	for _, name := range b.sheets {
		if err := output.ReplaceSheet(b.file, name, b.grids[name]); err != nil {
			return fmt.Errorf("write sheet %q: %w", name, err)
		}
	}
	for _, name := range b.file.GetSheetList() {
		if _, ok := b.grids[name]; !ok && len(b.file.GetSheetList()) > 1 {
			if err := b.file.DeleteSheet(name); err != nil {
				return err
			}
		}
	}
	return nil
}

// Save writes the workbook to path. Sheets are rewritten from their grids;
// drawings and other sheet-level objects are not kept.
func (b *Book) Save(path string) error {
	if err := b.sync(); err != nil {
		return err
	}
	if err := b.file.SaveAs(path); err != nil {
		return err
	}
	b.opts.logger().WithFields(logrus.Fields{
		"path":   path,
		"sheets": len(b.sheets),
	}).Info("workbook saved")
	return nil
}

// Bytes returns the workbook encoded as an xlsx document.
func (b *Book) Bytes() ([]byte, error) {
	if err := b.sync(); err != nil {
		return nil, err
	}
	return output.Bytes(b.file)
}

// WriteTempFile saves the workbook to a new temporary file and returns its
// path. The caller removes the file.
func (b *Book) WriteTempFile() (string, error) {
	if err := b.sync(); err != nil {
		return "", err
	}
	return output.WriteTempFile(b.file)
}

// Close releases the underlying file.
func (b *Book) Close() error {
	return b.file.Close()
}
