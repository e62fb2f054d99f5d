package dretl

import "fmt"

// ColumnKind is the storage class of a column.
type ColumnKind int

const (
	KindText    ColumnKind = iota // Cells are string
	KindInteger                   // Cells are int64
	KindReal                      // Cells are float64
)

// String returns the SQLite type name of the ColumnKind.
func (k ColumnKind) String() string {
	switch k {
	case KindText:
		return "TEXT"
	case KindInteger:
		return "INTEGER"
	case KindReal:
		return "REAL"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Column names a table column and its kind.
type Column struct {
	Name string
	Kind ColumnKind
}

// Table is an in-memory, column-ordered dataset.
//
// Each row has exactly len(Columns) cells. A cell is nil (missing value),
// string, int64 or float64, matching its column kind.
type Table struct {
	Columns []Column
	Rows    [][]any
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
