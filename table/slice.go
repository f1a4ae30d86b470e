// Package table — this file provides an in-memory row source that builds a
// columnar table from a 2D slice of values. Useful for tests and small data
// sets.
package table

import "fmt"

// FromRows builds a table from row-major data. Each inner slice is one row;
// all rows must have the same width. Column types are inferred from the
// values: a column holding only integers becomes an Int column, mixed
// integers and floats become Float, anything else falls back to String.
// Nil cells become typed nulls.
//
// names may be nil, in which case columns are named column_0, column_1, ...
func FromRows(names []string, rows [][]any) (Table, error) {
	width := len(names)
	if width == 0 {
		if len(rows) == 0 {
			return nil, errNoColumns
		}
		width = len(rows[0])
		names = make([]string, width)
		for i := range names {
			names[i] = fmt.Sprintf("column_%d", i)
		}
	}
	if width == 0 {
		return nil, errNoColumns
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("table: row %d has %d values, want %d", i, len(row), width)
		}
	}

	types := make([]Type, width)
	typed := make([]bool, width)
	for _, row := range rows {
		for i, v := range row {
			t, ok := classify(v)
			if !ok {
				continue
			}
			if !typed[i] {
				types[i], typed[i] = t, true
			} else {
				types[i] = unify(types[i], t)
			}
		}
	}
	// all-null columns default to text
	for i := range types {
		if !typed[i] {
			types[i] = String
		}
	}

	cols := make([]Column, width)
	for i := range cols {
		values := make([]Value, len(rows))
		for r, row := range rows {
			values[r] = valueAs(row[i], types[i])
		}
		cols[i] = &column{name: names[i], typ: types[i], values: values}
	}
	return New(cols...)
}
