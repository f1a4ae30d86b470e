package csvcodec

import (
	"math"
	"strconv"

	"github.com/go-table-io/tableio/table"
)

const (
	defaultDateFormat = "2006-01-02"
	defaultTimeFormat = "15:04:05.000000000"
)

// Non-finite floats render as fixed literals regardless of FloatPrecision.
const (
	litNaN    = "NaN"
	litInf    = "inf"
	litNegInf = "-inf"
)

// appendValue appends the textual form of one cell to dst. Null cells
// render as the configured sentinel verbatim; quoting is the escaper's
// concern, not handled here. An unrecognized type tag reports
// errUnknownType.
func appendValue(dst []byte, v table.Value, opts *Options) ([]byte, error) {
	if v.IsNull() {
		return append(dst, opts.Null...), nil
	}
	switch v.Type() {
	case table.Int:
		return strconv.AppendInt(dst, v.Int(), 10), nil
	case table.Float:
		return appendFloat(dst, v.Float(), opts.FloatPrecision), nil
	case table.Bool:
		return strconv.AppendBool(dst, v.Bool()), nil
	case table.String:
		return append(dst, v.Str()...), nil
	case table.Date:
		return v.Time().AppendFormat(dst, layout(opts.DateFormat, defaultDateFormat)), nil
	case table.Time:
		return v.Time().AppendFormat(dst, layout(opts.TimeFormat, defaultTimeFormat)), nil
	case table.Datetime:
		if opts.DatetimeFormat != "" {
			return v.Time().AppendFormat(dst, opts.DatetimeFormat), nil
		}
		dst = v.Time().AppendFormat(dst, layout(opts.DateFormat, defaultDateFormat))
		dst = append(dst, 'T')
		return v.Time().AppendFormat(dst, layout(opts.TimeFormat, defaultTimeFormat)), nil
	}
	return dst, errUnknownType
}

func appendFloat(dst []byte, f float64, precision int) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, litNaN...)
	case math.IsInf(f, 1):
		return append(dst, litInf...)
	case math.IsInf(f, -1):
		return append(dst, litNegInf...)
	}
	return strconv.AppendFloat(dst, f, 'f', precision, 64)
}

func layout(configured, fallback string) string {
	if configured != "" {
		return configured
	}
	return fallback
}
