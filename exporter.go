// Package tableio serializes in-memory columnar tables to byte sinks
// through pluggable codecs.
package tableio

import (
	"io"
	"os"

	"github.com/go-table-io/tableio/codec"
	"github.com/go-table-io/tableio/table"
)

type Exporter struct {
	table table.Table
	codec codec.Codec
}

func New(t table.Table, codec codec.Codec) *Exporter {
	return &Exporter{
		table: t,
		codec: codec,
	}
}

func (e *Exporter) Write(writer io.Writer) error {
	return e.codec.Write(e.table, writer)
}

func (e *Exporter) WriteFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := e.Write(f); err != nil {
		return err
	}
	return f.Close()
}
