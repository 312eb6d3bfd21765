package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/daygrid/calendar-backend/internal/calendar"
	"github.com/daygrid/calendar-backend/internal/model"
	"github.com/go-chi/chi/v5"
)

type calendarDayResp struct {
	Date           string       `json:"date"`
	Day            int          `json:"day"`
	IsCurrentMonth bool         `json:"is_current_month"`
	IsToday        bool         `json:"is_today"`
	IsSelected     bool         `json:"is_selected"`
	IsWeekend      bool         `json:"is_weekend"`
	Events         []*eventResp `json:"events"`
}

type calendarMonthResp struct {
	Year  int                `json:"year"`
	Month int                `json:"month"`
	Days  []*calendarDayResp `json:"days"`
}

// getMonthHandler renders the 6x7 month view for the authenticated user:
// it fetches the events covering the grid's full range (leading and trailing
// days included) and returns all 42 annotated cells.
func (a *Api) getMonthHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		a.badRequestResponse(w, r, fmt.Errorf("invalid year %q", chi.URLParam(r, "year")))
		return
	}

	monthNum, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		a.failedValidationResponse(w, r, map[string]string{
			"month": "month must be between 1 and 12",
		})
		return
	}
	month := time.Month(monthNum)

	var selected *time.Time
	if s := r.URL.Query().Get("selected"); s != "" {
		d, err := calendar.ParseDateKey(s)
		if err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("invalid selected date %q", s))
			return
		}
		selected = &d
	}

	from, to, err := calendar.GridRange(year, month)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	events, err := a.eventsService.GetEvents(r.Context(), model.EventsFilter{
		OwnerID: userID,
		From:    from,
		To:      to,
	})
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get events: %w", err))
		return
	}

	grid, err := calendar.MonthGrid(year, month, selected, time.Now(), events)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidArgument):
			a.badRequestResponse(w, r, err)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("month grid: %w", err))
		}
		return
	}

	days := make([]*calendarDayResp, len(grid.Days))
	for i, d := range grid.Days {
		days[i] = &calendarDayResp{
			Date:           d.DateString,
			Day:            d.Day,
			IsCurrentMonth: d.IsCurrentMonth,
			IsToday:        d.IsToday,
			IsSelected:     d.IsSelected,
			IsWeekend:      d.IsWeekend,
			Events:         mapToEventResps(calendar.SortByStartTime(d.Events)),
		}
	}

	resp := &calendarMonthResp{
		Year:  grid.Year,
		Month: int(grid.Month),
		Days:  days,
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

// getTimeSlotsHandler returns the 48 half-hour picker slots with their
// 12-hour display labels.
func (a *Api) getTimeSlotsHandler(w http.ResponseWriter, r *http.Request) {
	type slot struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}

	slots, err := mapSlice(calendar.TimeSlots(), func(s string) (*slot, error) {
		label, err := calendar.FormatTime12h(s)
		if err != nil {
			return nil, err
		}

		return &slot{Value: s, Label: label}, nil
	})
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, slots, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
