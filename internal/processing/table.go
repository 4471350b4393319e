package processing

import (
	"fmt"
	"maps"
	"slices"
)

// Table accumulates output rows keyed by source row number. Row 1 is the
// header row; every row has exactly one slot per output column.
type Table struct {
	width int
	rows  map[int][]string
}

// NewTable creates a table whose header row is header.
func NewTable(header []string) *Table {
	t := &Table{
		width: len(header),
		rows:  make(map[int][]string),
	}
	t.rows[headerRow] = slices.Clone(header)
	return t
}

// Row returns the row for a source row number, creating an empty one on first use.
func (t *Table) Row(rowNumber int) []string {
	row, ok := t.rows[rowNumber]
	if !ok {
		row = make([]string, t.width)
		t.rows[rowNumber] = row
	}
	return row
}

// Set stores value at an explicit output column of a data row.
func (t *Table) Set(rowNumber, index int, value string) error {
	if rowNumber <= headerRow {
		return fmt.Errorf("row %d: header row is read-only", rowNumber)
	}
	if index < 0 || index >= t.width {
		return fmt.Errorf("row %d: column index %d outside [0,%d)", rowNumber, index, t.width)
	}
	t.Row(rowNumber)[index] = value
	return nil
}

// Rows returns the header followed by the data rows in ascending source order.
func (t *Table) Rows() [][]string {
	keys := slices.Sorted(maps.Keys(t.rows))
	out := make([][]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, t.rows[k])
	}
	return out
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows) - 1
}
