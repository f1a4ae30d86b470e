package table

import "time"

// Column is one named, typed sequence of cells.
type Column interface {
	Name() string
	Type() Type
	Len() int
	Value(i int) Value
}

type column struct {
	name   string
	typ    Type
	values []Value
}

func (c *column) Name() string      { return c.name }
func (c *column) Type() Type        { return c.typ }
func (c *column) Len() int          { return len(c.values) }
func (c *column) Value(i int) Value { return c.values[i] }

func build[T any](name string, typ Type, vs []T, conv func(T) Value) Column {
	values := make([]Value, len(vs))
	for i, v := range vs {
		values[i] = conv(v)
	}
	return &column{name: name, typ: typ, values: values}
}

func buildNullable[T any](name string, typ Type, vs []*T, conv func(T) Value) Column {
	values := make([]Value, len(vs))
	for i, v := range vs {
		if v == nil {
			values[i] = Null(typ)
		} else {
			values[i] = conv(*v)
		}
	}
	return &column{name: name, typ: typ, values: values}
}

func Ints(name string, vs ...int64) Column {
	return build(name, Int, vs, IntValue)
}

func IntsNullable(name string, vs []*int64) Column {
	return buildNullable(name, Int, vs, IntValue)
}

func Floats(name string, vs ...float64) Column {
	return build(name, Float, vs, FloatValue)
}

func FloatsNullable(name string, vs []*float64) Column {
	return buildNullable(name, Float, vs, FloatValue)
}

func Bools(name string, vs ...bool) Column {
	return build(name, Bool, vs, BoolValue)
}

func BoolsNullable(name string, vs []*bool) Column {
	return buildNullable(name, Bool, vs, BoolValue)
}

func Strings(name string, vs ...string) Column {
	return build(name, String, vs, StringValue)
}

func StringsNullable(name string, vs []*string) Column {
	return buildNullable(name, String, vs, StringValue)
}

func Dates(name string, vs ...time.Time) Column {
	return build(name, Date, vs, DateValue)
}

func DatesNullable(name string, vs []*time.Time) Column {
	return buildNullable(name, Date, vs, DateValue)
}

func Times(name string, vs ...time.Time) Column {
	return build(name, Time, vs, TimeValue)
}

func TimesNullable(name string, vs []*time.Time) Column {
	return buildNullable(name, Time, vs, TimeValue)
}

func Datetimes(name string, vs ...time.Time) Column {
	return build(name, Datetime, vs, DatetimeValue)
}

func DatetimesNullable(name string, vs []*time.Time) Column {
	return buildNullable(name, Datetime, vs, DatetimeValue)
}
