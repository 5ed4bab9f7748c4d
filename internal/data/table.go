package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrNotFound marks an absent folder, file or dataset. It is a normal
	// "nothing to show" outcome, not a failure.
	ErrNotFound = errors.New("not found")
	// ErrMissingColumn is returned when a required named column is absent.
	ErrMissingColumn = errors.New("missing column")
)

// Table is a loaded CSV file. Cells are kept as strings and coerced on access;
// a Table is never mutated after loading.
type Table struct {
	Path   string
	Header []string
	Rows   [][]string

	index map[string]int
}

// LoadTable reads a CSV file. The file is closed before returning.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	t.Path = path
	return t, nil
}

// ReadTable parses CSV with a header row. Short rows are padded with empty cells.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty file")
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < len(header) {
			padded := make([]string, len(header))
			copy(padded, rec)
			rec = padded
		}
		rows = append(rows, rec)
	}
	return NewTable(header, rows), nil
}

// NewTable builds a table from a header and rows.
func NewTable(header []string, rows [][]string) *Table {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	return &Table{Header: header, Rows: rows, index: idx}
}

// Len is the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

func (t *Table) Has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Strings returns a column's raw cells.
func (t *Table) Strings(col string) ([]string, error) {
	i, ok := t.index[col]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
	}
	out := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = strings.TrimSpace(row[i])
	}
	return out, nil
}

// Floats returns a column coerced to numbers. Cells that do not parse become NaN.
func (t *Table) Floats(col string) ([]float64, error) {
	i, ok := t.index[col]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
	}
	out := make([]float64, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = ParseFloat(row[i])
	}
	return out, nil
}

// YearColumns returns the replicate columns: names made only of digits, in file order.
func (t *Table) YearColumns() []string {
	var out []string
	for _, h := range t.Header {
		if isDigits(h) {
			out = append(out, h)
		}
	}
	return out
}

// Replicates returns the year columns as numeric vectors, one per column.
func (t *Table) Replicates() (years []string, values [][]float64) {
	years = t.YearColumns()
	values = make([][]float64, 0, len(years))
	for _, y := range years {
		v, _ := t.Floats(y)
		values = append(values, v)
	}
	return years, values
}

// ParseFloat coerces a cell to a number; anything unparseable or infinite is NaN.
func ParseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
