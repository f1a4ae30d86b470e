package table

import "time"

// Type is the logical type of a column. The set is closed: every cell in a
// table carries exactly one of these tags, and codecs dispatch on it
// exhaustively.
type Type uint8

const (
	Int Type = iota
	Float
	Bool
	String
	Date
	Time
	Datetime
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	case Date:
		return "date"
	case Time:
		return "time"
	case Datetime:
		return "datetime"
	}
	return "unknown"
}

// Value is one cell: a typed scalar or a typed null.
type Value struct {
	typ  Type
	null bool
	num  int64
	f    float64
	s    string
	t    time.Time
}

// Null returns a null cell of the given type.
func Null(t Type) Value {
	return Value{typ: t, null: true}
}

func IntValue(v int64) Value {
	return Value{typ: Int, num: v}
}

func FloatValue(v float64) Value {
	return Value{typ: Float, f: v}
}

func BoolValue(v bool) Value {
	var n int64
	if v {
		n = 1
	}
	return Value{typ: Bool, num: n}
}

func StringValue(v string) Value {
	return Value{typ: String, s: v}
}

func DateValue(v time.Time) Value {
	return Value{typ: Date, t: v}
}

func TimeValue(v time.Time) Value {
	return Value{typ: Time, t: v}
}

func DatetimeValue(v time.Time) Value {
	return Value{typ: Datetime, t: v}
}

func (v Value) Type() Type   { return v.typ }
func (v Value) IsNull() bool { return v.null }

// Int returns the cell's integer content. Valid only for non-null Int cells.
func (v Value) Int() int64 { return v.num }

// Float returns the cell's float content. Valid only for non-null Float cells.
func (v Value) Float() float64 { return v.f }

// Bool returns the cell's boolean content. Valid only for non-null Bool cells.
func (v Value) Bool() bool { return v.num != 0 }

// Str returns the cell's text content. Valid only for non-null String cells.
func (v Value) Str() string { return v.s }

// Time returns the cell's temporal content. Valid only for non-null Date,
// Time and Datetime cells.
func (v Value) Time() time.Time { return v.t }

// Any returns the cell's content as a plain Go value, or nil for a null
// cell. Codecs that hand values to generic marshalers use this instead of
// the typed accessors.
func (v Value) Any() any {
	if v.null {
		return nil
	}
	switch v.typ {
	case Int:
		return v.num
	case Float:
		return v.f
	case Bool:
		return v.num != 0
	case String:
		return v.s
	case Date, Time, Datetime:
		return v.t
	}
	return nil
}
