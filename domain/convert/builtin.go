package convert

import (
	"strconv"
	"strings"
	"time"
)

// Default format templates for the date/time/datetime converters. Layouts use
// non-padded day and month so both "1/2/2006" and "01/02/2006" style tokens
// parse. The tables are data: hosts build replacement converters with
// NewDateConverter and friends when a different set is needed.
var (
	DefaultDateLayouts = []string{
		"2006-1-2",
		"1-2-2006",
		"2006/1/2",
		"1/2/2006",
		"1.2.2006",
		"1-2-06",
		"January 2, 2006",
		"January 2, 06",
		"Jan 2, 2006",
		"Jan 2, 06",
	}

	DefaultTimeLayouts = []string{
		"15:04:05",
		"15:04",
		"3:04:05 PM",
		"3:04:05 -0700",
		"3:04 PM",
		"3:04 -0700",
		"3:04",
	}

	DefaultDateTimeSeps = []string{" ", "T"}
)

// GeneralTimeParser is an optional permissive datetime parser tried before
// the layout templates, in the spirit of dateutil. Its result is accepted
// only when it carries a non-midnight clock, so date-only tokens still fall
// through to the date converter.
type GeneralTimeParser func(token string) (time.Time, bool)

type builtin struct {
	name string
	fn   ConverterFunc
}

// builtinConverters returns the default converters in precedence order.
func builtinConverters() []builtin {
	return []builtin{
		{string(KindEmptyString), ConvertEmptyString},
		{string(KindInt), ConvertInt},
		{string(KindFloat), ConvertFloat},
		{string(KindBool), ConvertBool},
		{string(KindPercent), ConvertPercent},
		{string(KindTime), NewTimeConverter(DefaultTimeLayouts)},
		{string(KindDateTime), NewDateTimeConverter(DefaultDateLayouts, DefaultTimeLayouts, DefaultDateTimeSeps, nil)},
		{string(KindDate), NewDateConverter(DefaultDateLayouts)},
		{string(KindIntInterval), ConvertIntRange},
		{string(KindDateInterval), ConvertYearRange},
	}
}

// ConvertEmptyString accepts only a zero-length token and returns the
// empty-string sentinel.
func ConvertEmptyString(token string) (Value, bool) {
	if len(token) == 0 {
		return NewEmptyValue(), true
	}
	return Value{}, false
}

// ConvertInt parses a base-10 integer.
func ConvertInt(token string) (Value, bool) {
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return Value{}, false
	}
	return NewIntValue(token, n), true
}

// ConvertFloat parses a base-10 floating point number.
func ConvertFloat(token string) (Value, bool) {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return Value{}, false
	}
	return NewFloatValue(token, f), true
}

// ConvertBool matches t/true/yes and f/false/no, case-insensitive and
// anchored to the whole token.
func ConvertBool(token string) (Value, bool) {
	switch strings.ToLower(token) {
	case "t", "true", "yes":
		return NewBoolValue(token, true), true
	case "f", "false", "no":
		return NewBoolValue(token, false), true
	}
	return Value{}, false
}

// ConvertPercent parses a number with an optional leading "+" and optional
// trailing "%". A leading "-" is not special-cased: the "%" suffix is never
// stripped on that branch, so negative percentages fail. Downstream
// consumers depend on that asymmetry.
func ConvertPercent(token string) (Value, bool) {
	if len(token) == 0 {
		return Value{}, false
	}
	s := token
	if s[0] == '+' {
		s = s[1:]
		if len(s) > 0 && s[len(s)-1] == '%' {
			s = s[:len(s)-1]
		}
	} else if s[0] != '-' && s[len(s)-1] == '%' {
		s = s[:len(s)-1]
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, false
	}
	return NewPercentValue(token, f), true
}

// ConvertIntRange parses "A-B" with exactly one "-" and both sides base-10
// integers into the inclusive interval [A,B]. Inverted bounds fail.
func ConvertIntRange(token string) (Value, bool) {
	if len(token) == 0 {
		return Value{}, false
	}
	parts := strings.Split(token, "-")
	if len(parts) != 2 {
		return Value{}, false
	}
	lower, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Value{}, false
	}
	upper, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Value{}, false
	}
	iv, ok := NewIntInterval(lower, upper)
	if !ok {
		return Value{}, false
	}
	return NewIntIntervalValue(token, iv), true
}

// ConvertYearRange parses "YYYY-YYYY" or "YYYY-YY" into a date interval.
// The start must be a 4-digit year. A 2-digit end year is resolved forward
// from the start year's position in its century: the delta is the 2-digit
// value minus start%100, wrapped into [0,100). "1995-05" therefore ends at
// 2005, not 1905. This rollover rule is asymmetric and only applies when the
// 4-digit parse of the end fails; it is preserved as-is.
func ConvertYearRange(token string) (Value, bool) {
	if len(token) == 0 {
		return Value{}, false
	}
	parts := strings.Split(token, "-")
	if len(parts) != 2 {
		return Value{}, false
	}
	startYear, ok := parseFourDigitYear(parts[0])
	if !ok {
		return Value{}, false
	}
	start := yearDate(startYear)

	if endYear, ok := parseFourDigitYear(parts[1]); ok {
		iv, ok := NewDateInterval(start, yearDate(endYear))
		if !ok {
			return Value{}, false
		}
		return NewDateIntervalValue(token, iv), true
	}

	n, err := strconv.Atoi(parts[1])
	if err != nil || n <= 0 || n >= 100 {
		return Value{}, false
	}
	delta := n - startYear%100
	if delta < 0 {
		delta += 100
	}
	iv, ok := NewDateInterval(start, start.AddDate(delta, 0, 0))
	if !ok {
		return Value{}, false
	}
	return NewDateIntervalValue(token, iv), true
}

// NewTimeConverter builds a clock-time converter over the given layouts,
// tried in order; the first full match wins.
func NewTimeConverter(layouts []string) ConverterFunc {
	return func(token string) (Value, bool) {
		for _, layout := range layouts {
			if t, err := time.Parse(layout, token); err == nil {
				return NewTimeValue(token, t), true
			}
		}
		return Value{}, false
	}
}

// NewDateConverter builds a calendar-date converter over the given layouts.
func NewDateConverter(layouts []string) ConverterFunc {
	return func(token string) (Value, bool) {
		for _, layout := range layouts {
			if t, err := time.Parse(layout, token); err == nil {
				return NewDateValue(token, t), true
			}
		}
		return Value{}, false
	}
}

// NewDateTimeConverter builds a combined date+time converter. Every date
// layout is combined with every time layout and every separator, in declared
// order. When general is non-nil it is consulted first and its result kept
// only if the clock component is set.
func NewDateTimeConverter(dateLayouts, timeLayouts, seps []string, general GeneralTimeParser) ConverterFunc {
	layouts := make([]string, 0, len(dateLayouts)*len(timeLayouts)*len(seps))
	for _, dl := range dateLayouts {
		for _, tl := range timeLayouts {
			for _, sep := range seps {
				layouts = append(layouts, dl+sep+tl)
			}
		}
	}
	return func(token string) (Value, bool) {
		if general != nil {
			if t, ok := general(token); ok && hasClock(t) {
				return NewDateTimeValue(token, t), true
			}
		}
		for _, layout := range layouts {
			if t, err := time.Parse(layout, token); err == nil {
				return NewDateTimeValue(token, t), true
			}
		}
		return Value{}, false
	}
}

// parseFourDigitYear accepts exactly four digits.
func parseFourDigitYear(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}
	for i := 0; i < 4; i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return year, true
}

// yearDate returns January 1 of the given year in UTC.
func yearDate(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// hasClock reports whether t carries a non-midnight time component.
func hasClock(t time.Time) bool {
	h, m, s := t.Clock()
	return h != 0 || m != 0 || s != 0 || t.Nanosecond() != 0
}
