package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Date {
	t.Helper()
	d, err := Parse(s)
	require.NoError(t, err)
	return d
}

func TestIsValidFormat(t *testing.T) {
	cases := []struct {
		input string
		valid bool
	}{
		{"09/16/2023", true},
		{"01/01/2000", true},
		{"02/30/2023", true}, // format-only check, impossible dates pass
		{"12/31/1999", true},
		{"2023-09-30", false},
		{"9/30/2023", false},
		{"09/3/2023", false},
		{"09/30/23", false},
		{"13/01/2023", false},
		{"00/10/2023", false},
		{"10/00/2023", false},
		{"10/32/2023", false},
		{"no date", false},
		{"", false},
		{"09/16/2023/01", false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.valid, IsValidFormat(tc.input), "input %q", tc.input)
	}
}

func TestParseRoundTrip(t *testing.T) {
	d := mustParse(t, "09/05/2023")
	assert.Equal(t, Date{Month: 9, Day: 5, Year: 2023}, d)
	assert.Equal(t, "09/05/2023", d.String())
}

func TestDaysBetweenLeapYears(t *testing.T) {
	assert.Equal(t, 2, DaysBetween(mustParse(t, "02/28/2024"), mustParse(t, "03/01/2024")))
	assert.Equal(t, 1, DaysBetween(mustParse(t, "02/28/2023"), mustParse(t, "03/01/2023")))
	// 1900 is not a leap year, 2000 is.
	assert.Equal(t, 1, DaysBetween(mustParse(t, "02/28/1900"), mustParse(t, "03/01/1900")))
	assert.Equal(t, 2, DaysBetween(mustParse(t, "02/28/2000"), mustParse(t, "03/01/2000")))
}

func TestDaysBetweenBoundaries(t *testing.T) {
	assert.Equal(t, 1, DaysBetween(mustParse(t, "12/31/2023"), mustParse(t, "01/01/2024")))
	assert.Equal(t, 0, DaysBetween(mustParse(t, "09/16/2023"), mustParse(t, "09/16/2023")))
	assert.Equal(t, -7, DaysBetween(mustParse(t, "09/23/2023"), mustParse(t, "09/16/2023")))
	assert.Equal(t, 365, DaysBetween(mustParse(t, "01/01/2023"), mustParse(t, "01/01/2024")))
	assert.Equal(t, 366, DaysBetween(mustParse(t, "01/01/2024"), mustParse(t, "01/01/2025")))
}

func TestIsFuture(t *testing.T) {
	today := mustParse(t, "09/24/2023")
	assert.True(t, IsFuture(mustParse(t, "09/25/2023"), today))
	assert.True(t, IsFuture(mustParse(t, "10/01/2023"), today))
	assert.True(t, IsFuture(mustParse(t, "01/01/2024"), today))
	assert.False(t, IsFuture(today, today))
	assert.False(t, IsFuture(mustParse(t, "09/23/2023"), today))
	assert.False(t, IsFuture(mustParse(t, "12/31/2022"), today))
	// month earlier but day later in the same year
	assert.False(t, IsFuture(mustParse(t, "08/30/2023"), today))
}

func TestIsAtLeastDaysAgo(t *testing.T) {
	today := mustParse(t, "09/24/2023")
	assert.True(t, IsAtLeastDaysAgo(mustParse(t, "09/16/2023"), today, 7))
	assert.True(t, IsAtLeastDaysAgo(mustParse(t, "09/17/2023"), today, 7))
	assert.False(t, IsAtLeastDaysAgo(mustParse(t, "09/18/2023"), today, 7))
	assert.False(t, IsAtLeastDaysAgo(mustParse(t, "09/25/2023"), today, 7))
}

func TestStartedWithinDays(t *testing.T) {
	today := mustParse(t, "09/24/2023")
	assert.True(t, StartedWithinDays(mustParse(t, "09/14/2023"), today, 10))
	assert.False(t, StartedWithinDays(mustParse(t, "09/13/2023"), today, 10))
	// future classes always qualify
	assert.True(t, StartedWithinDays(mustParse(t, "10/14/2023"), today, 10))
}

func TestWeekdayNameMatchesStdlib(t *testing.T) {
	start := time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		day := start.AddDate(0, 0, i)
		assert.Equal(t, day.Weekday().String(), FromTime(day).WeekdayName())
	}
}

func TestWeekNumberFor(t *testing.T) {
	anchor := mustParse(t, "09/16/2023") // Saturday, week 5
	assert.Equal(t, 5, WeekNumberFor(mustParse(t, "09/16/2023"), anchor, 5))
	assert.Equal(t, 5, WeekNumberFor(mustParse(t, "09/22/2023"), anchor, 5))
	assert.Equal(t, 6, WeekNumberFor(mustParse(t, "09/23/2023"), anchor, 5))
	assert.Equal(t, 6, WeekNumberFor(mustParse(t, "09/24/2023"), anchor, 5))
	assert.Equal(t, 7, WeekNumberFor(mustParse(t, "10/01/2023"), anchor, 5))
	// dates before the anchor round down
	assert.Equal(t, 4, WeekNumberFor(mustParse(t, "09/15/2023"), anchor, 5))
}

func TestDateForWeekday(t *testing.T) {
	// 09/24/2023 is a Sunday; the business week runs Saturday 09/23 to Friday 09/29.
	ref := mustParse(t, "09/24/2023")

	cases := map[string]string{
		"Saturday":  "09/23/2023",
		"Sunday":    "09/24/2023",
		"Monday":    "09/25/2023",
		"Wednesday": "09/27/2023",
		"Friday":    "09/29/2023",
	}
	for weekday, want := range cases {
		got, err := DateForWeekday(weekday, ref)
		require.NoError(t, err)
		assert.Equalf(t, want, got.String(), "weekday %s", weekday)
	}

	// a Saturday reference is the start of its own week
	sat, err := DateForWeekday("Saturday", mustParse(t, "09/23/2023"))
	require.NoError(t, err)
	assert.Equal(t, "09/23/2023", sat.String())

	_, err = DateForWeekday("Caturday", ref)
	assert.Error(t, err)
}

func TestAddDaysAcrossMonthEnd(t *testing.T) {
	assert.Equal(t, "03/01/2024", mustParse(t, "02/28/2024").AddDays(2).String())
	assert.Equal(t, "01/02/2024", mustParse(t, "12/31/2023").AddDays(2).String())
	assert.Equal(t, "12/30/2023", mustParse(t, "01/01/2024").AddDays(-2).String())
}
