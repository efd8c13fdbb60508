package sheet

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// Row heights are in points and column widths in characters, so the two
// numbers are not comparable. Together they come out roughly square.
const (
	DefaultRowHeight   = 12.8
	DefaultColumnWidth = 2.01
	DefaultSheet       = "Sheet1"
)

type Options struct {
	Sheet       string
	RowHeight   float64
	ColumnWidth float64
}

func (o Options) withDefaults() Options {
	if o.Sheet == "" {
		o.Sheet = DefaultSheet
	}
	if o.RowHeight <= 0 {
		o.RowHeight = DefaultRowHeight
	}
	if o.ColumnWidth <= 0 {
		o.ColumnWidth = DefaultColumnWidth
	}
	return o
}

// Workbook streams a grid of styled, empty cells into a single sheet.
// Columns must be sized before the first row is appended.
type Workbook struct {
	opts    Options
	file    *excelize.File
	stream  *excelize.StreamWriter
	styles  *StyleCache
	rows    int
	columns int
}

func New(opts Options) (*Workbook, error) {
	opts = opts.withDefaults()

	file := excelize.NewFile()
	if opts.Sheet != DefaultSheet {
		if err := file.SetSheetName(DefaultSheet, opts.Sheet); err != nil {
			closeFile(file)
			return nil, fmt.Errorf("could not rename sheet to %q: %w", opts.Sheet, err)
		}
	}

	stream, err := file.NewStreamWriter(opts.Sheet)
	if err != nil {
		closeFile(file)
		return nil, fmt.Errorf("could not open sheet %q for writing: %w", opts.Sheet, err)
	}

	return &Workbook{
		opts:   opts,
		file:   file,
		stream: stream,
		styles: NewStyleCache(file),
	}, nil
}

func (w *Workbook) Styles() *StyleCache {
	return w.styles
}

func (w *Workbook) Rows() int {
	return w.rows
}

func (w *Workbook) Columns() int {
	return w.columns
}

// SetColumns sets the width of columns 1..n.
func (w *Workbook) SetColumns(n int) error {
	if w.rows > 0 {
		return fmt.Errorf("cannot size columns after %d rows were written", w.rows)
	}
	if n < 1 {
		return nil
	}
	if err := w.stream.SetColWidth(1, n, w.opts.ColumnWidth); err != nil {
		return fmt.Errorf("could not set width of %d columns: %w", n, err)
	}
	w.columns = n
	return nil
}

// AppendRow writes the next row, one empty cell per style ID.
func (w *Workbook) AppendRow(styleIDs []int) error {
	cells := make([]any, len(styleIDs))
	for i, id := range styleIDs {
		cells[i] = excelize.Cell{StyleID: id}
	}

	ref, err := excelize.CoordinatesToCellName(1, w.rows+1)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", w.rows+1, err)
	}
	if err = w.stream.SetRow(ref, cells, excelize.RowOpts{Height: w.opts.RowHeight}); err != nil {
		return fmt.Errorf("could not write row %d: %w", w.rows+1, err)
	}

	w.rows++
	return nil
}

func (w *Workbook) SaveAs(path string) error {
	if err := w.stream.Flush(); err != nil {
		return fmt.Errorf("could not flush sheet %q: %w", w.opts.Sheet, err)
	}
	if err := w.file.SaveAs(path); err != nil {
		return fmt.Errorf("could not save workbook %q: %w", path, err)
	}
	return nil
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

func closeFile(file *excelize.File) {
	if close_err := file.Close(); close_err != nil {
		slog.Error("could not close workbook", "error", close_err)
	}
}
