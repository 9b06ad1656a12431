// Package frame provides the in-memory table abstraction the normalizers and
// aggregators operate on: ordered column names over rows of string cells, as
// loaded from a delimited text export with arbitrary headers.
package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"finprep/disclosure-csv/internal/logging"

	"github.com/shopspring/decimal"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Table is an immutable snapshot of a delimited text file: an ordered set of
// column names and rows of string cells. Cells for columns a ragged row lacks
// read as empty strings.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New builds a Table from column names and rows.
func New(columns []string, rows [][]string) *Table {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	return &Table{columns: columns, index: index, rows: rows}
}

// ReadCSV loads a delimited text file into a Table.
func ReadCSV(path string, delimiter rune) (*Table, error) {
	log.Info("Reading table", logging.Field{Key: "file", Value: path})

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	table, err := FromReader(file, delimiter)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	log.Info("Successfully read table",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "rows", Value: table.NumRows()})
	return table, nil
}

// FromReader loads delimited text from r into a Table. The first record is
// the header; ragged rows are tolerated.
func FromReader(r io.Reader, delimiter rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading delimited text: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("input has no header row")
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(name)
	}

	return New(header, records[1:]), nil
}

// Columns returns a copy of the column names in input order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn reports whether a column with the exact given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Cell returns the cell at the given row for the named column, or "" when the
// column does not exist or the row is too short.
func (t *Table) Cell(row int, column string) string {
	col, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return ""
	}
	cells := t.rows[row]
	if col >= len(cells) {
		return ""
	}
	return cells[col]
}

// CoercionStats counts how many safe defaults were applied while coercing a
// table, so callers can tell "interpreted cleanly" from "interpreted with
// defaults" without the coercion ever failing the batch.
type CoercionStats struct {
	DefaultedCells int // cells present but non-numeric, coerced to zero
	DroppedRows    int // rows dropped for an unparseable date
}

// Add accumulates another set of counts into s.
func (s *CoercionStats) Add(other CoercionStats) {
	s.DefaultedCells += other.DefaultedCells
	s.DroppedRows += other.DroppedRows
}

// Clean reports whether no defaults were applied at all.
func (s CoercionStats) Clean() bool {
	return s.DefaultedCells == 0 && s.DroppedRows == 0
}

var numericCleaner = strings.NewReplacer(",", "", "£", "", "€", "", "$", "", " ", "")

// Numeric coerces a cell to a decimal. The boolean is false when the cell did
// not parse and the zero default was applied. Empty cells coerce to zero but
// report true: absence is a silent default, not a data-quality defect.
func Numeric(cell string) (decimal.Decimal, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return decimal.Zero, true
	}
	cell = numericCleaner.Replace(cell)
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
