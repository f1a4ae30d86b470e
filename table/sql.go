// Package table — this file defines a row source for database/sql-compatible
// result sets.
package table

import "database/sql"

// FromSQL drains a *sql.Rows result set into a columnar table. It uses
// pointer indirection to scan each row into a []any, then infers column
// types the same way FromRows does. The rows are closed by the caller.
func FromSQL(rows *sql.Rows) (Table, error) {
	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var (
		data    [][]any
		rowPtrs = make([]any, len(names))
	)
	for rows.Next() {
		row := make([]any, len(names))
		for i := range row {
			rowPtrs[i] = &row[i]
		}
		if err := rows.Scan(rowPtrs...); err != nil {
			return nil, err
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return FromRows(names, data)
}
