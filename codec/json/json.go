// Package jsoncodec renders a columnar table as JSON: either one array of
// row objects or newline-delimited objects, one per row. Null cells become
// JSON null.
package jsoncodec

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/go-table-io/tableio/table"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonCodec struct {
	newlineDelimited bool
	limit            int
}

type Option func(*jsonCodec)

func New(opts ...Option) *jsonCodec {
	c := &jsonCodec{
		limit: -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithNewlineDelimited emits one JSON object per line instead of a single
// array.
func WithNewlineDelimited(isNewlineDelimited bool) Option {
	return func(c *jsonCodec) {
		c.newlineDelimited = isNewlineDelimited
	}
}

// WithLimit caps the number of rows written. Negative means unlimited.
func WithLimit(limit int) Option {
	return func(c *jsonCodec) {
		c.limit = limit
	}
}

func (c *jsonCodec) Write(t table.Table, writer io.Writer) error {
	numRows := t.NumRows()
	if c.limit >= 0 && c.limit < numRows {
		numRows = c.limit
	}
	numCols := t.NumCols()

	written := 0
	for r := 0; r < numRows; r++ {
		row := make(map[string]any, numCols)
		for i := 0; i < numCols; i++ {
			row[t.ColName(i)] = t.Cell(r, i).Any()
		}
		data, err := json.Marshal(row)
		if err != nil {
			return err
		}
		if c.newlineDelimited {
			data = append(data, '\n')
		} else if written == 0 {
			data = append([]byte("[\n"), data...)
		} else {
			data = append([]byte(",\n"), data...)
		}
		if _, err := writer.Write(data); err != nil {
			return err
		}
		written++
	}
	if !c.newlineDelimited && written > 0 {
		if _, err := writer.Write([]byte("\n]\n")); err != nil {
			return err
		}
	}
	return nil
}
