package model

import "time"

// CalendarDay is one cell of a rendered month view. It is derived data,
// recomputed on every request and never persisted.
type CalendarDay struct {
	Date           time.Time
	DateString     string // YYYY-MM-DD
	Day            int
	IsCurrentMonth bool
	IsToday        bool
	IsSelected     bool
	IsWeekend      bool
	Events         []*Event
}

// CalendarMonth is a full month view: always exactly 42 days (6 weeks),
// padded with leading and trailing days of the adjacent months.
type CalendarMonth struct {
	Year  int
	Month time.Month
	Days  []*CalendarDay
}
