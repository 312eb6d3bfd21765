package calendar

import (
	"fmt"
	"time"

	"github.com/daygrid/calendar-backend/internal/model"
)

// gridSize is the fixed cell count of a month view: 6 full weeks, so the
// rendered grid keeps a constant height regardless of month length.
const gridSize = 42

// DaysInMonth returns the number of days in the given month, accounting for
// leap years.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first day of the month
// (Sunday = 0).
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// PrevMonth steps one month back, wrapping January to the previous December.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}

	return year, month - 1
}

// NextMonth steps one month forward, wrapping December to the next January.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}

	return year, month + 1
}

// MonthGrid assembles the 42-cell view of a month: the leading days of the
// previous month needed to align the first week, every day of the requested
// month, and trailing days of the next month to fill 6 full weeks. Each cell
// carries its today/selected/weekend flags and the events falling on it.
//
// selected may be nil, in which case no cell is marked selected. now supplies
// the clock; the function itself never consults wall-clock state.
func MonthGrid(year int, month time.Month, selected *time.Time, now time.Time, events []*model.Event) (*model.CalendarMonth, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month %d", ErrInvalidArgument, month)
	}

	n := DaysInMonth(year, month)
	firstWeekday := int(FirstWeekday(year, month))

	days := make([]*model.CalendarDay, 0, gridSize)

	prevYear, prevMonth := PrevMonth(year, month)
	daysInPrev := DaysInMonth(prevYear, prevMonth)

	for i := firstWeekday - 1; i >= 0; i-- {
		days = append(days, newDay(prevYear, prevMonth, daysInPrev-i, false, selected, now, events))
	}

	for day := 1; day <= n; day++ {
		days = append(days, newDay(year, month, day, true, selected, now, events))
	}

	nextYear, nextMonth := NextMonth(year, month)
	for day := 1; len(days) < gridSize; day++ {
		days = append(days, newDay(nextYear, nextMonth, day, false, selected, now, events))
	}

	return &model.CalendarMonth{
		Year:  year,
		Month: month,
		Days:  days,
	}, nil
}

// GridRange returns the date keys of the first and last cell of the month's
// 42-cell grid, so callers can fetch the events the view will need in one
// range query.
func GridRange(year int, month time.Month) (from, to string, err error) {
	if month < time.January || month > time.December {
		return "", "", fmt.Errorf("%w: month %d", ErrInvalidArgument, month)
	}

	leading := int(FirstWeekday(year, month))
	first := time.Date(year, month, 1-leading, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 0, gridSize-1)

	return DateKey(first), DateKey(last), nil
}

func newDay(year int, month time.Month, day int, current bool, selected *time.Time, now time.Time, events []*model.Event) *model.CalendarDay {
	date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	key := DateKey(date)

	return &model.CalendarDay{
		Date:           date,
		DateString:     key,
		Day:            day,
		IsCurrentMonth: current,
		IsToday:        IsToday(date, now),
		IsSelected:     selected != nil && SameDay(date, *selected),
		IsWeekend:      IsWeekend(date),
		Events:         EventsOn(events, key),
	}
}
