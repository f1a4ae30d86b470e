package csvcodec

import (
	"fmt"
	"io"

	"github.com/go-table-io/tableio/table"
)

// writeHeader emits the column names as one row, escaped under the same
// rules as data fields. Names are plain text, never the null sentinel, so
// an empty name is quoted.
func writeHeader(w io.Writer, t table.Table, opts *Options) error {
	var buf []byte
	for i := 0; i < t.NumCols(); i++ {
		if i > 0 {
			buf = append(buf, opts.Delimiter)
		}
		name := t.ColName(i)
		buf = appendField(buf, []byte(name), opts.Delimiter, opts.Quote, name == "")
	}
	buf = appendTerminator(buf, opts.UseCRLF)
	_, err := w.Write(buf)
	return err
}

// write streams the table body in windows of BatchSize rows. Each row is
// assembled in a scratch buffer and appended to the batch buffer only once
// fully formatted, so a formatting error never flushes a partial row. One
// sink write is issued per window; the final partial window is flushed the
// same way.
func write(w io.Writer, t table.Table, opts *Options) error {
	var (
		batch []byte
		row   []byte
		field []byte
	)
	numRows, numCols := t.NumRows(), t.NumCols()
	for start := 0; start < numRows; start += opts.BatchSize {
		end := min(start+opts.BatchSize, numRows)
		batch = batch[:0]
		for r := start; r < end; r++ {
			row = row[:0]
			for c := 0; c < numCols; c++ {
				if c > 0 {
					row = append(row, opts.Delimiter)
				}
				cell := t.Cell(r, c)
				var err error
				field, err = appendValue(field[:0], cell, opts)
				if err != nil {
					return &FormatError{Column: t.ColName(c), Type: cell.Type()}
				}
				forceQuote := len(field) == 0 && cell.Type() == table.String && !cell.IsNull()
				row = appendField(row, field, opts.Delimiter, opts.Quote, forceQuote)
			}
			row = appendTerminator(row, opts.UseCRLF)
			batch = append(batch, row...)
		}
		if len(batch) > 0 {
			if _, err := w.Write(batch); err != nil {
				return fmt.Errorf("failed to write rows: %w", err)
			}
		}
	}
	return nil
}

func appendTerminator(dst []byte, useCRLF bool) []byte {
	if useCRLF {
		return append(dst, '\r', '\n')
	}
	return append(dst, '\n')
}
