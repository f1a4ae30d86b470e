// Package table defines the columnar table contract consumed by codecs: an
// ordered set of named, typed columns sharing one row count, with cells
// addressed by (row, column) index. It also provides an in-memory
// implementation and adapters that materialize tables from common row
// sources.
package table

import (
	"errors"
	"fmt"
)

// Table is a read-only columnar table. All columns have the same length.
type Table interface {
	NumRows() int
	NumCols() int
	ColName(i int) string
	ColType(i int) Type
	Cell(row, col int) Value
}

var errNoColumns = errors.New("table: at least one column is required")

type memTable struct {
	cols []Column
	rows int
}

// New builds an in-memory table from columns. All columns must have the same
// length and distinct names.
func New(cols ...Column) (Table, error) {
	if len(cols) == 0 {
		return nil, errNoColumns
	}
	rows := cols[0].Len()
	seen := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		if c.Len() != rows {
			return nil, fmt.Errorf("table: column %q has %d rows, want %d", c.Name(), c.Len(), rows)
		}
		if _, ok := seen[c.Name()]; ok {
			return nil, fmt.Errorf("table: duplicate column name %q", c.Name())
		}
		seen[c.Name()] = struct{}{}
	}
	return &memTable{cols: cols, rows: rows}, nil
}

func (t *memTable) NumRows() int { return t.rows }

func (t *memTable) NumCols() int { return len(t.cols) }

func (t *memTable) ColName(i int) string { return t.cols[i].Name() }

func (t *memTable) ColType(i int) Type { return t.cols[i].Type() }

func (t *memTable) Cell(row, col int) Value { return t.cols[col].Value(row) }
