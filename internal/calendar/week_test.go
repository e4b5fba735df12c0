package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func drawDate(rt *rapid.T) time.Time {
	// 1970-01-01 .. 2100-12-31
	days := rapid.IntRange(0, 47846).Draw(rt, "days")
	hour := rapid.IntRange(0, 23).Draw(rt, "hour")
	return time.Date(1970, 1, 1, hour, 30, 0, 0, time.UTC).AddDate(0, 0, days)
}

func TestWeekStart_Examples(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "sunday is its own start", in: "2024-03-17", want: "2024-03-17"},
		{name: "saturday", in: "2024-03-23", want: "2024-03-17"},
		{name: "friday", in: "2024-03-15", want: "2024-03-10"},
		{name: "monday", in: "2024-03-18", want: "2024-03-17"},
		{name: "across month", in: "2024-03-02", want: "2024-02-25"},
		{name: "across year", in: "2025-01-01", want: "2024-12-29"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseISODate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatISODate(WeekStart(d)))
		})
	}
}

func TestWeekEnd(t *testing.T) {
	start, err := ParseISODate("2024-03-17")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-23", FormatISODate(WeekEnd(start)))
}

func TestDateOf_KeepsLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	late := time.Date(2024, 3, 16, 23, 0, 0, 0, loc)

	got := DateOf(late)

	assert.Equal(t, "2024-03-16", FormatISODate(got))
	assert.Equal(t, time.UTC, got.Location())
}

func TestParseISODate_Rejects(t *testing.T) {
	for _, s := range []string{"", "not-a-date", "2024-13-01", "2024-02-30", "2024/03/15", "15-03-2024"} {
		_, err := ParseISODate(s)
		assert.Error(t, err, s)
	}
}

func TestProperty_WeekStartContainsDate(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		d := drawDate(rt)
		start := WeekStart(d)
		day := DateOf(d)

		if start.Weekday() != FirstDayOfWeek {
			rt.Fatalf("week start %s is a %s", FormatISODate(start), start.Weekday())
		}
		if day.Before(start) || day.After(WeekEnd(start)) {
			rt.Fatalf("%s outside [%s, %s]", FormatISODate(day), FormatISODate(start), FormatISODate(WeekEnd(start)))
		}
	})
}

func TestProperty_WeekStartIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		start := WeekStart(drawDate(rt))
		if again := WeekStart(start); !again.Equal(start) {
			rt.Fatalf("WeekStart(%s) = %s", FormatISODate(start), FormatISODate(again))
		}
	})
}

func TestProperty_FormatParseRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		day := DateOf(drawDate(rt))
		parsed, err := ParseISODate(FormatISODate(day))
		if err != nil {
			rt.Fatal(err)
		}
		if !parsed.Equal(day) {
			rt.Fatalf("round trip %s != %s", parsed, day)
		}
	})
}
