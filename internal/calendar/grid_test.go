package calendar

import (
	"reflect"
	"testing"
	"time"

	"github.com/daygrid/calendar-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29}, // leap year
		{2023, time.February, 28},
		{2000, time.February, 29}, // century divisible by 400
		{1900, time.February, 28}, // century not divisible by 400
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestFirstWeekday(t *testing.T) {
	t.Parallel()

	// January 1 2024 was a Monday.
	if got := FirstWeekday(2024, time.January); got != time.Monday {
		t.Errorf("FirstWeekday(2024, January) = %v, want Monday", got)
	}

	// September 1 2024 was a Sunday.
	if got := FirstWeekday(2024, time.September); got != time.Sunday {
		t.Errorf("FirstWeekday(2024, September) = %v, want Sunday", got)
	}
}

func TestPrevNextMonth(t *testing.T) {
	t.Parallel()

	year, month := PrevMonth(2024, time.January)
	assert.Equal(t, 2023, year)
	assert.Equal(t, time.December, month)

	year, month = PrevMonth(2024, time.July)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.June, month)

	year, month = NextMonth(2024, time.December)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.January, month)

	year, month = NextMonth(2024, time.July)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.August, month)
}

func TestMonthGrid_Always42Cells(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)

	for year := 2020; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			grid, err := MonthGrid(year, month, nil, now, nil)
			require.NoError(t, err)
			require.Len(t, grid.Days, 42, "year %d month %v", year, month)

			current := 0
			for _, d := range grid.Days {
				if d.IsCurrentMonth {
					current++
				}
			}
			assert.Equal(t, DaysInMonth(year, month), current, "year %d month %v", year, month)
		}
	}
}

func TestMonthGrid_January2024(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.January, 15, 9, 30, 0, 0, time.Local)

	grid, err := MonthGrid(2024, time.January, nil, now, nil)
	require.NoError(t, err)
	require.Len(t, grid.Days, 42)

	// Jan 1 2024 is a Monday, so exactly one leading cell: Dec 31 2023.
	first := grid.Days[0]
	assert.Equal(t, "2023-12-31", first.DateString)
	assert.Equal(t, 31, first.Day)
	assert.False(t, first.IsCurrentMonth)
	assert.True(t, first.IsWeekend) // a Sunday

	assert.Equal(t, "2024-01-01", grid.Days[1].DateString)
	assert.True(t, grid.Days[1].IsCurrentMonth)

	// 1 leading + 31 current = 32, so 10 trailing cells ending Feb 10 2024.
	last := grid.Days[41]
	assert.Equal(t, "2024-02-10", last.DateString)
	assert.False(t, last.IsCurrentMonth)

	// The clock says Jan 15, so exactly that cell is marked today.
	for _, d := range grid.Days {
		assert.Equal(t, d.DateString == "2024-01-15", d.IsToday, "cell %s", d.DateString)
	}
}

func TestMonthGrid_SelectedDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	selected := time.Date(2024, time.March, 8, 17, 45, 0, 0, time.Local)

	grid, err := MonthGrid(2024, time.March, &selected, now, nil)
	require.NoError(t, err)

	selectedCount := 0
	for _, d := range grid.Days {
		if d.IsSelected {
			selectedCount++
			assert.Equal(t, "2024-03-08", d.DateString)
		}
	}
	assert.Equal(t, 1, selectedCount)

	// Without a selected date no cell is marked.
	grid, err = MonthGrid(2024, time.March, nil, now, nil)
	require.NoError(t, err)
	for _, d := range grid.Days {
		assert.False(t, d.IsSelected)
	}
}

func TestMonthGrid_EventPlacement(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	event := &model.Event{
		ID: "evt-1",
		EventCreate: model.EventCreate{
			Title:     "Standup",
			Date:      "2024-01-15",
			StartTime: "09:00",
			EndTime:   "10:00",
		},
	}

	grid, err := MonthGrid(2024, time.January, nil, now, []*model.Event{event})
	require.NoError(t, err)

	for _, d := range grid.Days {
		if d.DateString == "2024-01-15" {
			require.Len(t, d.Events, 1)
			assert.Equal(t, "evt-1", d.Events[0].ID)
		} else {
			assert.Empty(t, d.Events, "cell %s", d.DateString)
		}
	}
}

func TestMonthGrid_Deterministic(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.February, 20, 8, 0, 0, 0, time.Local)
	selected := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local)
	events := []*model.Event{
		{ID: "a", EventCreate: model.EventCreate{Date: "2024-02-29", StartTime: "10:00", EndTime: "11:00"}},
	}

	first, err := MonthGrid(2024, time.February, &selected, now, events)
	require.NoError(t, err)
	second, err := MonthGrid(2024, time.February, &selected, now, events)
	require.NoError(t, err)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different grids")
	}
}

func TestMonthGrid_InvalidMonth(t *testing.T) {
	t.Parallel()

	for _, month := range []time.Month{0, 13, -1} {
		_, err := MonthGrid(2024, month, nil, time.Now(), nil)
		require.ErrorIs(t, err, ErrInvalidArgument, "month %d", month)
	}
}

func TestGridRange(t *testing.T) {
	t.Parallel()

	from, to, err := GridRange(2024, time.January)
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31", from)
	assert.Equal(t, "2024-02-10", to)

	_, _, err = GridRange(2024, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
