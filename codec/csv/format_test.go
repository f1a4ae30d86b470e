package csvcodec

import (
	"math"
	"testing"
	"time"

	"github.com/go-table-io/tableio/table"
)

func TestAppendValue(t *testing.T) {
	ts := time.Date(2023, 4, 5, 13, 37, 42, 123456789, time.UTC)
	precision2 := DefaultOptions()
	precision2.FloatPrecision = 2

	naOpts := DefaultOptions()
	naOpts.Null = "NA"

	dateFmt := DefaultOptions()
	dateFmt.DateFormat = "02/01/2006"

	datetimeFmt := DefaultOptions()
	datetimeFmt.DatetimeFormat = "2006-01-02 15:04:05"

	tests := []struct {
		name string
		v    table.Value
		opts Options
		want string
	}{
		{name: "int", v: table.IntValue(42), opts: DefaultOptions(), want: "42"},
		{name: "negativeInt", v: table.IntValue(-7), opts: DefaultOptions(), want: "-7"},
		{name: "boolTrue", v: table.BoolValue(true), opts: DefaultOptions(), want: "true"},
		{name: "boolFalse", v: table.BoolValue(false), opts: DefaultOptions(), want: "false"},
		{name: "string", v: table.StringValue("hello"), opts: DefaultOptions(), want: "hello"},
		{name: "nullDefaultSentinel", v: table.Null(table.Int), opts: DefaultOptions(), want: ""},
		{name: "nullCustomSentinel", v: table.Null(table.String), opts: naOpts, want: "NA"},
		{name: "floatShortest", v: table.FloatValue(3.1), opts: DefaultOptions(), want: "3.1"},
		{name: "floatPrecisionPads", v: table.FloatValue(3.1), opts: precision2, want: "3.10"},
		{name: "floatPrecisionTruncates", v: table.FloatValue(3.14159), opts: precision2, want: "3.14"},
		{name: "nan", v: table.FloatValue(math.NaN()), opts: DefaultOptions(), want: "NaN"},
		{name: "inf", v: table.FloatValue(math.Inf(1)), opts: DefaultOptions(), want: "inf"},
		{name: "negInf", v: table.FloatValue(math.Inf(-1)), opts: DefaultOptions(), want: "-inf"},
		{name: "nanIgnoresPrecision", v: table.FloatValue(math.NaN()), opts: precision2, want: "NaN"},
		{name: "dateDefault", v: table.DateValue(ts), opts: DefaultOptions(), want: "2023-04-05"},
		{name: "dateCustom", v: table.DateValue(ts), opts: dateFmt, want: "05/04/2023"},
		{name: "timeDefaultNanoseconds", v: table.TimeValue(ts), opts: DefaultOptions(), want: "13:37:42.123456789"},
		{name: "datetimeDefault", v: table.DatetimeValue(ts), opts: DefaultOptions(), want: "2023-04-05T13:37:42.123456789"},
		{name: "datetimeCustom", v: table.DatetimeValue(ts), opts: datetimeFmt, want: "2023-04-05 13:37:42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := appendValue(nil, tt.v, &tt.opts)
			if err != nil {
				t.Fatalf("appendValue: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("appendValue = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppendValueCustomTimeFormat(t *testing.T) {
	ts := time.Date(2023, 4, 5, 13, 37, 42, 0, time.UTC)
	opts := DefaultOptions()
	opts.TimeFormat = "15:04"

	got, err := appendValue(nil, table.TimeValue(ts), &opts)
	if err != nil {
		t.Fatalf("appendValue: %v", err)
	}
	if string(got) != "13:37" {
		t.Errorf("appendValue = %q, want %q", got, "13:37")
	}

	// the datetime default picks up the configured time layout
	got, err = appendValue(nil, table.DatetimeValue(ts), &opts)
	if err != nil {
		t.Fatalf("appendValue: %v", err)
	}
	if string(got) != "2023-04-05T13:37" {
		t.Errorf("appendValue = %q, want %q", got, "2023-04-05T13:37")
	}
}
