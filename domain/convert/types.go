package convert

import (
	"fmt"
	"time"
)

// Kind identifies which variant a Value holds. The built-in kinds double as
// the registered type names of the built-in converters.
type Kind string

const (
	KindEmptyString  Kind = "EmptyString"
	KindInt          Kind = "int"
	KindFloat        Kind = "float"
	KindBool         Kind = "bool"
	KindPercent      Kind = "percent"
	KindTime         Kind = "time"
	KindDateTime     Kind = "datetime"
	KindDate         Kind = "date"
	KindIntInterval  Kind = "IntInterval"
	KindDateInterval Kind = "DateInterval"

	// KindString marks a token no converter matched; the value is the raw token.
	KindString Kind = "string"
	// KindCustom marks the output of a host-registered converter. The converted
	// value lives in Payload and the type name comes from the registry.
	KindCustom Kind = "custom"
)

// IntInterval is an inclusive integer range [Lower, Upper].
type IntInterval struct {
	Lower int64 `json:"lower"`
	Upper int64 `json:"upper"`
}

// NewIntInterval builds an interval, rejecting inverted bounds.
func NewIntInterval(lower, upper int64) (IntInterval, bool) {
	if lower > upper {
		return IntInterval{}, false
	}
	return IntInterval{Lower: lower, Upper: upper}, true
}

// Contains reports whether n falls within the interval.
func (iv IntInterval) Contains(n int64) bool {
	return n >= iv.Lower && n <= iv.Upper
}

func (iv IntInterval) String() string {
	return fmt.Sprintf("[%d, %d]", iv.Lower, iv.Upper)
}

// DateInterval is an inclusive date range [Start, End].
type DateInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateInterval builds an interval, rejecting inverted bounds.
func NewDateInterval(start, end time.Time) (DateInterval, bool) {
	if end.Before(start) {
		return DateInterval{}, false
	}
	return DateInterval{Start: start, End: end}, true
}

func (iv DateInterval) String() string {
	return fmt.Sprintf("[%s, %s]", iv.Start.Format("2006-01-02"), iv.End.Format("2006-01-02"))
}

// Value represents a converted token with typed storage. Exactly one variant
// field is set for a successful conversion; Raw always carries the original
// token so an unconverted value round-trips unchanged.
type Value struct {
	Kind         Kind          `json:"kind"`
	Raw          string        `json:"raw"`
	IntVal       *int64        `json:"int_val,omitempty"`
	FloatVal     *float64      `json:"float_val,omitempty"`
	BoolVal      *bool         `json:"bool_val,omitempty"`
	TimeVal      *time.Time    `json:"time_val,omitempty"`
	IntRangeVal  *IntInterval  `json:"int_range_val,omitempty"`
	DateRangeVal *DateInterval `json:"date_range_val,omitempty"`
	Payload      interface{}   `json:"payload,omitempty"`
}

// NewEmptyValue creates the empty-string sentinel. It is distinct from an
// unmatched token: it means the cell was deliberately blank.
func NewEmptyValue() Value {
	return Value{Kind: KindEmptyString, Raw: ""}
}

// NewRawValue creates an unconverted pass-through value
func NewRawValue(raw string) Value {
	return Value{Kind: KindString, Raw: raw}
}

// NewIntValue creates an integer value
func NewIntValue(raw string, n int64) Value {
	return Value{Kind: KindInt, Raw: raw, IntVal: &n}
}

// NewFloatValue creates a float value
func NewFloatValue(raw string, f float64) Value {
	return Value{Kind: KindFloat, Raw: raw, FloatVal: &f}
}

// NewPercentValue creates a percent value; the float is the numeric part
// with any "%" suffix stripped, not divided by 100
func NewPercentValue(raw string, f float64) Value {
	return Value{Kind: KindPercent, Raw: raw, FloatVal: &f}
}

// NewBoolValue creates a boolean value
func NewBoolValue(raw string, b bool) Value {
	return Value{Kind: KindBool, Raw: raw, BoolVal: &b}
}

// NewTimeValue creates a clock-time value
func NewTimeValue(raw string, t time.Time) Value {
	return Value{Kind: KindTime, Raw: raw, TimeVal: &t}
}

// NewDateValue creates a calendar-date value
func NewDateValue(raw string, t time.Time) Value {
	return Value{Kind: KindDate, Raw: raw, TimeVal: &t}
}

// NewDateTimeValue creates a combined date+time value
func NewDateTimeValue(raw string, t time.Time) Value {
	return Value{Kind: KindDateTime, Raw: raw, TimeVal: &t}
}

// NewIntIntervalValue creates an integer-range value
func NewIntIntervalValue(raw string, iv IntInterval) Value {
	return Value{Kind: KindIntInterval, Raw: raw, IntRangeVal: &iv}
}

// NewDateIntervalValue creates a date-range value
func NewDateIntervalValue(raw string, iv DateInterval) Value {
	return Value{Kind: KindDateInterval, Raw: raw, DateRangeVal: &iv}
}

// NewCustomValue creates a value produced by a host-registered converter
func NewCustomValue(raw string, payload interface{}) Value {
	return Value{Kind: KindCustom, Raw: raw, Payload: payload}
}

// IsEmpty returns true if the value is the empty-string sentinel
func (v Value) IsEmpty() bool {
	return v.Kind == KindEmptyString
}

// IsConverted returns true if some converter matched the token
func (v Value) IsConverted() bool {
	return v.Kind != KindString
}

// IsNumeric returns true if the value carries a usable number
func (v Value) IsNumeric() bool {
	return v.IntVal != nil || v.FloatVal != nil
}

// AsInt returns the integer value, or 0 if not an int
func (v Value) AsInt() int64 {
	if v.IntVal != nil {
		return *v.IntVal
	}
	return 0
}

// AsFloat returns the numeric value as float64, covering int, float and
// percent variants; 0 otherwise
func (v Value) AsFloat() float64 {
	if v.FloatVal != nil {
		return *v.FloatVal
	}
	if v.IntVal != nil {
		return float64(*v.IntVal)
	}
	return 0.0
}

// AsBool returns the boolean value, or false if not a bool
func (v Value) AsBool() bool {
	if v.BoolVal != nil {
		return *v.BoolVal
	}
	return false
}

// AsTime returns the time value shared by the time, date and datetime
// variants, or the zero time
func (v Value) AsTime() time.Time {
	if v.TimeVal != nil {
		return *v.TimeVal
	}
	return time.Time{}
}

// String returns a display representation of the value
func (v Value) String() string {
	switch v.Kind {
	case KindEmptyString:
		return "<empty>"
	case KindInt:
		return fmt.Sprintf("%d", v.AsInt())
	case KindFloat, KindPercent:
		return fmt.Sprintf("%g", v.AsFloat())
	case KindBool:
		return fmt.Sprintf("%t", v.AsBool())
	case KindTime:
		return v.AsTime().Format("15:04:05")
	case KindDate:
		return v.AsTime().Format("2006-01-02")
	case KindDateTime:
		return v.AsTime().Format(time.RFC3339)
	case KindIntInterval:
		if v.IntRangeVal != nil {
			return v.IntRangeVal.String()
		}
	case KindDateInterval:
		if v.DateRangeVal != nil {
			return v.DateRangeVal.String()
		}
	case KindCustom:
		return fmt.Sprintf("%v", v.Payload)
	}
	return v.Raw
}
