// Package table — this file converts driver-provided Go values into typed
// cells and backs the FromRows, FromSQL and FromHive adapters.
package table

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var jsonStd = jsoniter.ConfigCompatibleWithStandardLibrary

// classify maps a Go value to the logical type its column would have. The
// second result is false for nil.
func classify(v any) (Type, bool) {
	if v == nil {
		return String, false
	}
	switch v.(type) {
	case bool:
		return Bool, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Int, true
	case float32, float64:
		return Float, true
	case string, []byte:
		return String, true
	case time.Time:
		return Datetime, true
	}
	return String, true
}

// unify widens two column types observed in the same column. Mixed integer
// and float cells become a float column; any other mix falls back to text.
func unify(a, b Type) Type {
	if a == b {
		return a
	}
	if (a == Int && b == Float) || (a == Float && b == Int) {
		return Float
	}
	return String
}

// valueAs converts a raw value into a cell of the column's unified type.
func valueAs(v any, typ Type) Value {
	if v == nil {
		return Null(typ)
	}
	switch typ {
	case Int:
		if n, ok := asInt64(v); ok {
			return IntValue(n)
		}
	case Float:
		if n, ok := asInt64(v); ok {
			return FloatValue(float64(n))
		}
		switch v := v.(type) {
		case float32:
			return FloatValue(float64(v))
		case float64:
			return FloatValue(v)
		}
	case Bool:
		if b, ok := v.(bool); ok {
			return BoolValue(b)
		}
	case Datetime:
		if t, ok := v.(time.Time); ok {
			return DatetimeValue(t)
		}
	}
	s, null := fallbackString(v)
	if null {
		return Null(typ)
	}
	return StringValue(s)
}

func asInt64(v any) (int64, bool) {
	switch v := v.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	}
	return 0, false
}

// fallbackString renders a value of an unrecognized or mixed type as text.
// The second result reports values that should be treated as NULL (zero
// time, empty JSON containers).
func fallbackString(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, false
	case []byte:
		return string(v), false
	case bool:
		return strconv.FormatBool(v), false
	case time.Time:
		if v.IsZero() {
			return "", true
		}
		return v.Format(time.RFC3339Nano), false
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), false
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), false
	}
	if n, ok := asInt64(v); ok {
		return strconv.FormatInt(n, 10), false
	}
	if jsonMarshaler, ok := v.(json.Marshaler); ok {
		if jsonData, err := jsonMarshaler.MarshalJSON(); err == nil {
			s := strings.Trim(string(jsonData), `"`)
			if s == "[]" || s == "{}" || s == "null" {
				return "", true
			}
			return s, false
		}
	}
	if fmtStringer, ok := v.(fmt.Stringer); ok {
		return fmtStringer.String(), false
	}
	if jsonData, err := jsonStd.Marshal(v); err == nil {
		s := strings.Trim(string(jsonData), `"`)
		if s == "[]" || s == "{}" || s == "null" {
			return "", true
		}
		return s, false
	}
	return fmt.Sprintf("%v", v), false
}
