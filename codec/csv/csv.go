// Package csvcodec serializes a columnar table as RFC-4180-flavored
// delimited text. Fields are quoted only when structurally required and
// embedded quote characters are escaped by doubling. Rows are emitted in
// fixed-size batches, one sink write per batch.
package csvcodec

import (
	"fmt"
	"io"

	"github.com/go-table-io/tableio/table"
)

// Options is the full configuration bundle of the CSV codec.
type Options struct {
	// Header writes the column names as the first row.
	Header bool
	// Delimiter is the single-byte field separator. Must differ from Quote.
	Delimiter byte
	// Quote is the single-byte quote character.
	Quote byte
	// Null is the literal text written for null cells.
	Null string
	// BatchSize is the number of rows accumulated before each sink write.
	BatchSize int
	// DateFormat, TimeFormat and DatetimeFormat are Go reference-time
	// layouts. Empty means the codec default for that type.
	DateFormat     string
	TimeFormat     string
	DatetimeFormat string
	// FloatPrecision is the number of digits after the decimal point.
	// Negative means the shortest representation that round-trips.
	FloatPrecision int
	// UseCRLF terminates rows with \r\n instead of \n.
	UseCRLF bool
}

// DefaultOptions returns the default bundle: header on, comma delimiter,
// double-quote quoting, empty null sentinel, batch size 1024, nanosecond
// time precision, shortest round-trip floats, LF line terminator.
func DefaultOptions() Options {
	return Options{
		Header:         true,
		Delimiter:      ',',
		Quote:          '"',
		Null:           "",
		BatchSize:      1024,
		TimeFormat:     defaultTimeFormat,
		FloatPrecision: -1,
	}
}

type csvCodec struct {
	opts Options
}

type Option func(*csvCodec)

// New creates a CSV codec with DefaultOptions overridden by opts.
func New(opts ...Option) *csvCodec {
	c := &csvCodec{opts: DefaultOptions()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithOptions replaces the whole options bundle at once.
func WithOptions(opts Options) Option {
	return func(c *csvCodec) {
		c.opts = opts
	}
}

func WithHeader(header bool) Option {
	return func(c *csvCodec) {
		c.opts.Header = header
	}
}

func WithDelimiter(delimiter byte) Option {
	return func(c *csvCodec) {
		c.opts.Delimiter = delimiter
	}
}

func WithQuote(quote byte) Option {
	return func(c *csvCodec) {
		c.opts.Quote = quote
	}
}

func WithNullValue(null string) Option {
	return func(c *csvCodec) {
		c.opts.Null = null
	}
}

// WithBatchSize sets the number of rows written per sink call. Larger
// batches trade memory for fewer writes. Values below 1 are ignored.
func WithBatchSize(batchSize int) Option {
	return func(c *csvCodec) {
		if batchSize >= 1 {
			c.opts.BatchSize = batchSize
		}
	}
}

// WithDateFormat sets the layout for date cells. An empty layout is ignored
// rather than clearing a previously set one.
func WithDateFormat(format string) Option {
	return func(c *csvCodec) {
		if format != "" {
			c.opts.DateFormat = format
		}
	}
}

// WithTimeFormat sets the layout for time-of-day cells. An empty layout is
// ignored.
func WithTimeFormat(format string) Option {
	return func(c *csvCodec) {
		if format != "" {
			c.opts.TimeFormat = format
		}
	}
}

// WithDatetimeFormat sets the layout for datetime cells. An empty layout is
// ignored.
func WithDatetimeFormat(format string) Option {
	return func(c *csvCodec) {
		if format != "" {
			c.opts.DatetimeFormat = format
		}
	}
}

// WithFloatPrecision fixes the number of digits after the decimal point for
// float cells. Negative values are ignored, leaving the shortest
// round-trip representation.
func WithFloatPrecision(precision int) Option {
	return func(c *csvCodec) {
		if precision >= 0 {
			c.opts.FloatPrecision = precision
		}
	}
}

func WithCRLF(useCRLF bool) Option {
	return func(c *csvCodec) {
		c.opts.UseCRLF = useCRLF
	}
}

// Write serializes t to writer: an optional header row followed by the
// table body in batches. Configuration is validated before any byte
// reaches the sink; bytes already flushed when a later error occurs are
// not retracted.
func (c *csvCodec) Write(t table.Table, writer io.Writer) error {
	opts := c.opts
	if opts.Delimiter == opts.Quote {
		return ErrDelimiterIsQuote
	}
	if opts.BatchSize < 1 {
		opts.BatchSize = 1
	}
	if opts.Header {
		if err := writeHeader(writer, t, &opts); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	return write(writer, t, &opts)
}
