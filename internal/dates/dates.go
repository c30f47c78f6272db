// Package dates implements the calendar arithmetic used by the weekly class
// generation cycle and the request lifecycle. All dates cross the wire as
// MM/DD/YYYY strings, which is the format the legacy Discord bot speaks.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a plain calendar date with no time or zone component.
type Date struct {
	Month int
	Day   int
	Year  int
}

var weekdayNames = [...]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// IsValidFormat reports whether s is a strict MM/DD/YYYY date string:
// two-digit month (1-12), two-digit day (1-31), four-digit year. It performs
// no semantic calendar validation, so 02/30/2023 passes.
func IsValidFormat(s string) bool {
	if !strings.Contains(s, "/") {
		return false
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return false
	}
	if len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	if _, err := strconv.Atoi(parts[2]); err != nil {
		return false
	}
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// Parse converts a strict MM/DD/YYYY string into a Date.
func Parse(s string) (Date, error) {
	if !IsValidFormat(s) {
		return Date{}, fmt.Errorf("invalid date format %q, want MM/DD/YYYY", s)
	}
	parts := strings.Split(s, "/")
	month, _ := strconv.Atoi(parts[0])
	day, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])
	return Date{Month: month, Day: day, Year: year}, nil
}

// FromTime converts a time.Time into a Date, dropping the time component.
func FromTime(t time.Time) Date {
	return Date{Month: int(t.Month()), Day: t.Day(), Year: t.Year()}
}

// String renders the date in the MM/DD/YYYY wire format.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Month, d.Day, d.Year)
}

func (d Date) toTime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n calendar days after d. n may be negative.
func (d Date) AddDays(n int) Date {
	return FromTime(d.toTime().AddDate(0, 0, n))
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// leapYearsBefore counts the leap years up to year, excluding year itself when
// the month is January or February (the leap day has not occurred yet).
func leapYearsBefore(year, month int) int {
	if month <= 2 {
		year--
	}
	return year/4 - year/100 + year/400
}

// civilDayCount counts the days from a fixed epoch up to d, using the classic
// civil day-count algorithm. Only differences of two counts are meaningful.
func civilDayCount(d Date) int {
	count := d.Year*365 + d.Day
	for i := 0; i < d.Month-1; i++ {
		count += monthDays[i]
	}
	return count + leapYearsBefore(d.Year, d.Month)
}

// DaysBetween returns the exact number of calendar days from a to b. The
// result is negative when b precedes a.
func DaysBetween(a, b Date) int {
	return civilDayCount(b) - civilDayCount(a)
}

// IsFuture reports whether d is strictly later than today, compared
// year, then month, then day.
func IsFuture(d, today Date) bool {
	if d.Year != today.Year {
		return d.Year > today.Year
	}
	if d.Month != today.Month {
		return d.Month > today.Month
	}
	return d.Day > today.Day
}

// IsAtLeastDaysAgo reports whether d lies n or more days before today.
// The week-elapsed check uses n=7.
func IsAtLeastDaysAgo(d, today Date, n int) bool {
	return DaysBetween(d, today) >= n
}

// StartedWithinDays reports whether d began n days ago or less. Future dates
// qualify, which is how the tutor-classes listing keeps upcoming classes.
func StartedWithinDays(d, today Date, n int) bool {
	return DaysBetween(d, today) <= n
}

// WeekdayName returns the standard weekday name for d (Sunday..Saturday).
func (d Date) WeekdayName() string {
	return weekdayNames[int(d.toTime().Weekday())]
}

// WeekNumberFor derives the scheduling week number of d relative to a known
// anchor: the anchor week number plus the number of whole weeks elapsed since
// the anchor's start date.
func WeekNumberFor(d, anchorStart Date, anchorWeek int) int {
	return anchorWeek + floorDiv(DaysBetween(anchorStart, d), 7)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// saturdayFirstIndex maps a standard weekday index (Sunday=0) onto the
// business week model, which runs Saturday (0) through Friday (6).
func saturdayFirstIndex(stdWeekday int) int {
	return (stdWeekday + 1) % 7
}

// DateForWeekday returns the date of the named weekday within the business
// week containing ref. The business week starts on Saturday, so asking for
// "Saturday" yields the most recent Saturday on or before ref and asking for
// "Friday" yields the last day of that same week.
func DateForWeekday(weekday string, ref Date) (Date, error) {
	target := -1
	for i, name := range weekdayNames {
		if name == weekday {
			target = i
			break
		}
	}
	if target == -1 {
		return Date{}, fmt.Errorf("unknown weekday %q", weekday)
	}
	refIdx := saturdayFirstIndex(int(ref.toTime().Weekday()))
	weekStart := ref.AddDays(-refIdx)
	return weekStart.AddDays(saturdayFirstIndex(target)), nil
}
