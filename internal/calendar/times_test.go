package calendar

import (
	"testing"
	"time"

	"github.com/daygrid/calendar-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKeyRoundTrip(t *testing.T) {
	t.Parallel()

	keys := []string{"2024-01-01", "2023-12-31", "2024-02-29", "2000-06-15"}

	for _, key := range keys {
		parsed, err := ParseDateKey(key)
		require.NoError(t, err, key)
		assert.Equal(t, key, DateKey(parsed))
	}
}

func TestParseDateKey_Invalid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "2024-1-1", "15/01/2024", "2024-13-01", "not a date", "2023-02-29"} {
		_, err := ParseDateKey(s)
		require.ErrorIs(t, err, ErrInvalidArgument, "input %q", s)
	}
}

func TestSameDay(t *testing.T) {
	t.Parallel()

	morning := time.Date(2024, time.May, 3, 6, 0, 0, 0, time.Local)
	evening := time.Date(2024, time.May, 3, 23, 59, 0, 0, time.Local)
	nextDay := time.Date(2024, time.May, 4, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(evening, nextDay))
}

func TestIsWeekend(t *testing.T) {
	t.Parallel()

	saturday := time.Date(2024, time.January, 6, 0, 0, 0, 0, time.Local)
	sunday := time.Date(2024, time.January, 7, 0, 0, 0, 0, time.Local)
	monday := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.Local)

	assert.True(t, IsWeekend(saturday))
	assert.True(t, IsWeekend(sunday))
	assert.False(t, IsWeekend(monday))
}

func TestValidTime(t *testing.T) {
	t.Parallel()

	valid := []string{"00:00", "09:30", "9:30", "23:59", "12:05"}
	for _, s := range valid {
		assert.True(t, ValidTime(s), s)
	}

	invalid := []string{"", "24:00", "12:60", "12", "12:5", "ab:cd", "12:345", "-1:00", "12:00 PM"}
	for _, s := range invalid {
		assert.False(t, ValidTime(s), s)
	}
}

func TestCompareTimes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, CompareTimes("09:00", "10:00"))
	assert.Equal(t, 1, CompareTimes("10:00", "09:00"))
	assert.Equal(t, 0, CompareTimes("09:30", "09:30"))
	assert.Equal(t, -1, CompareTimes("09:30", "09:45"))
	assert.Equal(t, 0, CompareTimes("9:05", "09:05"))
}

func TestFormatTime12h(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"01:00", "1:00 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"12:30", "12:30 PM"},
		{"13:00", "1:00 PM"},
		{"23:30", "11:30 PM"},
	}

	for _, tt := range tests {
		got, err := FormatTime12h(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := FormatTime12h("25:00")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTimeSlots(t *testing.T) {
	t.Parallel()

	slots := TimeSlots()
	require.Len(t, slots, 48)
	assert.Equal(t, "00:00", slots[0])
	assert.Equal(t, "23:30", slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, -1, CompareTimes(slots[i-1], slots[i]), "slots %q and %q", slots[i-1], slots[i])
	}
}

func TestEventsOn(t *testing.T) {
	t.Parallel()

	events := []*model.Event{
		{ID: "a", EventCreate: model.EventCreate{Date: "2024-01-15"}},
		{ID: "b", EventCreate: model.EventCreate{Date: "2024-01-16"}},
		{ID: "c", EventCreate: model.EventCreate{Date: "2024-01-15"}},
	}

	got := EventsOn(events, "2024-01-15")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)

	assert.Empty(t, EventsOn(events, "2024-01-17"))
}

func TestSortByStartTime(t *testing.T) {
	t.Parallel()

	events := []*model.Event{
		{ID: "late", EventCreate: model.EventCreate{StartTime: "18:00"}},
		{ID: "early", EventCreate: model.EventCreate{StartTime: "08:00"}},
		{ID: "noon", EventCreate: model.EventCreate{StartTime: "12:00"}},
	}

	sorted := SortByStartTime(events)
	require.Len(t, sorted, 3)
	assert.Equal(t, "early", sorted[0].ID)
	assert.Equal(t, "noon", sorted[1].ID)
	assert.Equal(t, "late", sorted[2].ID)

	// The input slice keeps its order.
	assert.Equal(t, "late", events[0].ID)
}
