package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Sheet is a parsed tabular file: one header row and zero or more data rows.
// Row numbering throughout the package is 1-based counting the header, so the
// first data row is row 2. That matches what a clinician sees in a
// spreadsheet program and is how row errors are reported back.
type Sheet struct {
	Header []string
	Rows   [][]string
}

// ErrEmptySheet is returned when the input has no header row at all.
var ErrEmptySheet = errors.New("sheet has no header row")

// ReadCSV parses a CSV stream into a Sheet. Rows may be ragged; short rows
// are treated by callers as having blank trailing cells.
func ReadCSV(r io.Reader) (*Sheet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptySheet
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	s := &Sheet{Header: header}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(s.Rows)+2, err)
		}
		s.Rows = append(s.Rows, row)
	}
	return s, nil
}

// WriteCSV renders the sheet as CSV.
func (s *Sheet) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(s.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range s.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Cell returns the cell at column j of row, or "" when the row is short.
func Cell(row []string, j int) string {
	if j >= len(row) {
		return ""
	}
	return row[j]
}
