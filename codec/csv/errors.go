package csvcodec

import (
	"errors"
	"fmt"

	"github.com/go-table-io/tableio/table"
)

// ErrDelimiterIsQuote is returned by Write when the configured delimiter
// and quote character are the same byte. It is detected before any output
// is produced.
var ErrDelimiterIsQuote = errors.New("csv: delimiter and quote character must differ")

var errUnknownType = errors.New("csv: unknown value type")

// FormatError reports a cell the formatter cannot render. The write is
// aborted at that point; rows already flushed stay in the output.
type FormatError struct {
	Column string
	Type   table.Type
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("csv: cannot format column %q of type %s", e.Column, e.Type)
}
