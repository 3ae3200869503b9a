package convert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertEmptyString(t *testing.T) {
	v, ok := ConvertEmptyString("")
	require.True(t, ok)
	assert.Equal(t, KindEmptyString, v.Kind)
	assert.True(t, v.IsEmpty())

	_, ok = ConvertEmptyString(" ")
	assert.False(t, ok)
}

func TestConvertInt(t *testing.T) {
	tests := []struct {
		token string
		want  int64
		ok    bool
	}{
		{"42", 42, true},
		{"-7", -7, true},
		{"+5", 5, true},
		{"0", 0, true},
		{"3.14", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"42x", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			v, ok := ConvertInt(tt.token)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, v.AsInt())
				assert.Equal(t, KindInt, v.Kind)
				assert.Equal(t, tt.token, v.Raw)
			}
		})
	}
}

func TestConvertFloat(t *testing.T) {
	v, ok := ConvertFloat("3.14")
	require.True(t, ok)
	assert.InDelta(t, 3.14, v.AsFloat(), 1e-9)
	assert.Equal(t, KindFloat, v.Kind)

	_, ok = ConvertFloat("three")
	assert.False(t, ok)
}

func TestConvertBool(t *testing.T) {
	tests := []struct {
		token string
		want  bool
		ok    bool
	}{
		{"t", true, true},
		{"true", true, true},
		{"TRUE", true, true},
		{"Yes", true, true},
		{"f", false, true},
		{"false", false, true},
		{"NO", false, true},
		{"truex", false, false}, // anchored, whole-token match
		{"maybe", false, false},
		{"1", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			v, ok := ConvertBool(tt.token)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, v.AsBool())
			}
		})
	}
}

func TestConvertPercent(t *testing.T) {
	tests := []struct {
		token string
		want  float64
		ok    bool
	}{
		{"+5%", 5.0, true},
		{"5%", 5.0, true},
		{"+5", 5.0, true},
		{"5", 5.0, true},
		{"12.5%", 12.5, true},
		// A leading "-" is not stripped, so the "%" survives into the
		// float parse and the token fails.
		{"-5%", 0, false},
		{"-5", -5.0, true}, // plain negative number has no suffix to trip on
		{"-12.5%", 0, false},
		{"%", 0, false},
		{"", 0, false},
		{"abc%", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			v, ok := ConvertPercent(tt.token)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, v.AsFloat(), 1e-9)
				assert.Equal(t, KindPercent, v.Kind)
			}
		})
	}
}

func TestConvertIntRange(t *testing.T) {
	v, ok := ConvertIntRange("10-20")
	require.True(t, ok)
	require.NotNil(t, v.IntRangeVal)
	assert.Equal(t, int64(10), v.IntRangeVal.Lower)
	assert.Equal(t, int64(20), v.IntRangeVal.Upper)
	assert.True(t, v.IntRangeVal.Contains(15))
	assert.False(t, v.IntRangeVal.Contains(21))

	for _, token := range []string{"", "10", "10-20-30", "a-b", "20-10", "-20", "10-"} {
		_, ok := ConvertIntRange(token)
		assert.False(t, ok, "token %q should fail", token)
	}
}

func TestConvertYearRange(t *testing.T) {
	t.Run("full years", func(t *testing.T) {
		v, ok := ConvertYearRange("1995-2005")
		require.True(t, ok)
		require.NotNil(t, v.DateRangeVal)
		assert.Equal(t, 1995, v.DateRangeVal.Start.Year())
		assert.Equal(t, 2005, v.DateRangeVal.End.Year())
	})

	t.Run("two digit end rolls forward", func(t *testing.T) {
		// start%100 = 95, so "05" lands 10 years ahead: 2005.
		v, ok := ConvertYearRange("1995-05")
		require.True(t, ok)
		require.NotNil(t, v.DateRangeVal)
		assert.Equal(t, 1995, v.DateRangeVal.Start.Year())
		assert.Equal(t, 2005, v.DateRangeVal.End.Year())
	})

	t.Run("two digit end within same century", func(t *testing.T) {
		v, ok := ConvertYearRange("1995-97")
		require.True(t, ok)
		assert.Equal(t, 1997, v.DateRangeVal.End.Year())
	})

	t.Run("rejects", func(t *testing.T) {
		for _, token := range []string{"", "95-05", "1995", "1995-2005-2010", "1995-0", "1995-100", "2005-1995", "abcd-05"} {
			_, ok := ConvertYearRange(token)
			assert.False(t, ok, "token %q should fail", token)
		}
	})
}

func TestTimeConverter(t *testing.T) {
	fn := NewTimeConverter(DefaultTimeLayouts)

	v, ok := fn("13:45:30")
	require.True(t, ok)
	assert.Equal(t, KindTime, v.Kind)
	h, m, s := v.AsTime().Clock()
	assert.Equal(t, []int{13, 45, 30}, []int{h, m, s})

	v, ok = fn("1:30 PM")
	require.True(t, ok)
	assert.Equal(t, 13, v.AsTime().Hour())

	_, ok = fn("not a time")
	assert.False(t, ok)
}

func TestDateConverter(t *testing.T) {
	fn := NewDateConverter(DefaultDateLayouts)

	tests := []struct {
		token string
		want  string
	}{
		{"2020-03-01", "2020-03-01"},
		{"03/01/2020", "2020-03-01"},
		{"3.1.2020", "2020-03-01"},
		{"March 1, 2020", "2020-03-01"},
		{"Mar 1, 2020", "2020-03-01"},
	}
	for _, tt := range tests {
		v, ok := fn(tt.token)
		require.True(t, ok, "token %q", tt.token)
		assert.Equal(t, tt.want, v.AsTime().Format("2006-01-02"), "token %q", tt.token)
	}

	_, ok := fn("2020-13-40")
	assert.False(t, ok)
}

func TestDateTimeConverter(t *testing.T) {
	fn := NewDateTimeConverter(DefaultDateLayouts, DefaultTimeLayouts, DefaultDateTimeSeps, nil)

	v, ok := fn("2020-03-01 13:45:30")
	require.True(t, ok)
	assert.Equal(t, KindDateTime, v.Kind)
	assert.Equal(t, 2020, v.AsTime().Year())
	assert.Equal(t, 13, v.AsTime().Hour())

	v, ok = fn("2020-03-01T13:45:30")
	require.True(t, ok)
	assert.Equal(t, 13, v.AsTime().Hour())

	// Date-only tokens belong to the date converter, not this one.
	_, ok = fn("2020-03-01")
	assert.False(t, ok)
}

func TestDateTimeConverterGeneralParser(t *testing.T) {
	var called int
	general := func(token string) (time.Time, bool) {
		called++
		switch token {
		case "with-clock":
			return time.Date(2020, 3, 1, 9, 30, 0, 0, time.UTC), true
		case "date-only":
			return time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), true
		}
		return time.Time{}, false
	}
	fn := NewDateTimeConverter(DefaultDateLayouts, DefaultTimeLayouts, DefaultDateTimeSeps, general)

	v, ok := fn("with-clock")
	require.True(t, ok)
	assert.Equal(t, 9, v.AsTime().Hour())

	// A midnight result means no time component; the template list gets a
	// shot and also fails here.
	_, ok = fn("date-only")
	assert.False(t, ok)

	assert.Equal(t, 2, called)
}
