package calendar

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/daygrid/calendar-backend/internal/model"
)

var ErrInvalidArgument = errors.New("invalid argument")

const dateKeyLayout = "2006-01-02"

// DateKey formats a date as YYYY-MM-DD. It is the exact inverse of
// ParseDateKey at day granularity.
func DateKey(d time.Time) string {
	return d.Format(dateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD string into a date at local midnight.
func ParseDateKey(s string) (time.Time, error) {
	d, err := time.ParseInLocation(dateKeyLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date key %q", ErrInvalidArgument, s)
	}

	return d, nil
}

// SameDay reports whether a and b fall on the same calendar day,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsToday reports whether d falls on the same day as now. The caller
// supplies the clock so the result stays deterministic.
func IsToday(d, now time.Time) bool {
	return SameDay(d, now)
}

func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ValidTime reports whether s is a well-formed HH:MM wall-clock time.
func ValidTime(s string) bool {
	_, _, ok := splitClock(s)
	return ok
}

// CompareTimes orders two HH:MM strings by (hour, minute): -1 if a is
// earlier, 1 if later, 0 if equal. Inputs are assumed well-formed.
func CompareTimes(a, b string) int {
	h1, m1, _ := splitClock(a)
	h2, m2, _ := splitClock(b)

	switch {
	case h1 < h2 || (h1 == h2 && m1 < m2):
		return -1
	case h1 > h2 || (h1 == h2 && m1 > m2):
		return 1
	default:
		return 0
	}
}

// FormatTime12h converts a 24-hour HH:MM string to "h:MM AM/PM" display
// form: hour 0 becomes 12 AM, hour 12 stays 12 PM, no leading zero on the
// hour, minutes always two digits.
func FormatTime12h(s string) (string, error) {
	h, m, ok := splitClock(s)
	if !ok {
		return "", fmt.Errorf("%w: time %q", ErrInvalidArgument, s)
	}

	period := "AM"
	if h >= 12 {
		period = "PM"
	}

	display := h % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d %s", display, m, period), nil
}

// TimeSlots returns every 30-minute boundary from 00:00 through 23:30, in
// ascending order. The slice is rebuilt on each call so callers may mutate it.
func TimeSlots() []string {
	slots := make([]string, 0, 48)
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute += 30 {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}

	return slots
}

// EventsOn filters events to those on the given date key, preserving input
// order.
func EventsOn(events []*model.Event, dateKey string) []*model.Event {
	var res []*model.Event
	for _, e := range events {
		if e.Date == dateKey {
			res = append(res, e)
		}
	}

	return res
}

// SortByStartTime returns a copy of events in stable ascending start-time
// order. The input slice is not modified.
func SortByStartTime(events []*model.Event) []*model.Event {
	res := make([]*model.Event, len(events))
	copy(res, events)

	sort.SliceStable(res, func(i, j int) bool {
		return CompareTimes(res[i].StartTime, res[j].StartTime) < 0
	})

	return res
}

// splitClock parses "HH:MM" (a single-digit hour is tolerated, as in
// "9:30") into its hour and minute components.
func splitClock(s string) (hour, minute int, ok bool) {
	colon := strings.IndexByte(s, ':')
	if colon < 1 || colon > 2 || len(s)-colon != 3 {
		return 0, 0, false
	}

	for i, c := range []byte(s) {
		if i == colon {
			continue
		}
		if c < '0' || c > '9' {
			return 0, 0, false
		}
		if i < colon {
			hour = hour*10 + int(c-'0')
		} else {
			minute = minute*10 + int(c-'0')
		}
	}

	if hour > 23 || minute > 59 {
		return 0, 0, false
	}

	return hour, minute, true
}
