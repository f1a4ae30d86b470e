package codec

import (
	"io"

	csvcodec "github.com/go-table-io/tableio/codec/csv"
	jsoncodec "github.com/go-table-io/tableio/codec/json"
	"github.com/go-table-io/tableio/table"
)

// Codec serializes a table to a byte sink.
type Codec interface {
	Write(t table.Table, writer io.Writer) error
}

func CSV(opts ...csvcodec.Option) Codec {
	return csvcodec.New(opts...)
}

func JSON(opts ...jsoncodec.Option) Codec {
	return jsoncodec.New(opts...)
}
