// Package timeutil holds the interval arithmetic the reservation engine
// is built on: fixed-width slot generation, the half-open overlap
// predicate, and facility-local date handling.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Touching boundaries do not overlap. Every
// court, coach and equipment conflict check goes through this predicate.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// SlotsForDay returns the "HH:MM" start labels of fixed-width slots from
// openHour (inclusive) to closeHour (exclusive).
func SlotsForDay(openHour, closeHour, slotMinutes int) []string {
	if slotMinutes <= 0 || closeHour <= openHour {
		return nil
	}
	out := make([]string, 0, (closeHour-openHour)*60/slotMinutes)
	for m := openHour * 60; m < closeHour*60; m += slotMinutes {
		out = append(out, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return out
}

// ParseLocalDate parses "YYYY-MM-DD" into midnight of that calendar day in
// loc. The components are parsed by hand so the day can never shift under
// a UTC offset the way a generic ISO-8601 parse would.
func ParseLocalDate(s string, loc *time.Location) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	// time.Date normalizes out-of-range days (Feb 30 -> Mar 2); reject those.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// MinutesSinceMidnight parses "H:MM", "HH:MM" or "HH:MM:SS" into minutes.
func MinutesSinceMidnight(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	hours, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	minutes, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	return hours*60 + minutes, nil
}

// TimeInRange reports whether clock time t falls in [start,end), all three
// given as "HH:MM" strings. Malformed input is treated as out of range.
func TimeInRange(t, start, end string) bool {
	tm, err := MinutesSinceMidnight(t)
	if err != nil {
		return false
	}
	sm, err := MinutesSinceMidnight(start)
	if err != nil {
		return false
	}
	em, err := MinutesSinceMidnight(end)
	if err != nil {
		return false
	}
	return tm >= sm && tm < em
}

// AtMinutes returns the instant at the given minutes past midnight of
// day's calendar date, in day's location.
func AtMinutes(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, day.Location())
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DayOfWeek returns the schedule weekday token for t ("MONDAY" ... "SUNDAY").
func DayOfWeek(t time.Time) string {
	switch t.Weekday() {
	case time.Monday:
		return "MONDAY"
	case time.Tuesday:
		return "TUESDAY"
	case time.Wednesday:
		return "WEDNESDAY"
	case time.Thursday:
		return "THURSDAY"
	case time.Friday:
		return "FRIDAY"
	case time.Saturday:
		return "SATURDAY"
	default:
		return "SUNDAY"
	}
}

// SameLocalDate reports whether a and b fall on the same calendar date in
// a's location.
func SameLocalDate(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
