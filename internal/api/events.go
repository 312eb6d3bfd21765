package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/daygrid/calendar-backend/internal/forms"
	"github.com/daygrid/calendar-backend/internal/model"
	"github.com/go-chi/chi/v5"
)

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	req := &struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Date        string `json:"date"`
		StartTime   string `json:"start_time"`
		EndTime     string `json:"end_time"`
		Color       string `json:"color"`
		Location    string `json:"location"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := forms.ValidateEventForm(forms.EventForm{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Color:       req.Color,
	})
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	event, err := a.eventsService.CreateEvent(r.Context(), &model.EventCreate{
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Color:       req.Color,
		Location:    req.Location,
	})
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create event: %w", err))
		return
	}

	resp := mapToEventResp(event)

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	query := r.URL.Query()

	v := forms.ValidateEventsFilter(query.Get("from"), query.Get("to"), query.Get("date"))
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	filter := model.EventsFilter{
		OwnerID: userID,
		From:    query.Get("from"),
		To:      query.Get("to"),
		Date:    query.Get("date"),
	}

	events, err := a.eventsService.GetEvents(r.Context(), filter)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get events: %w", err))
		return
	}

	resp := mapToEventResps(events)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	event, err := a.eventsService.GetEvent(r.Context(), userID, chi.URLParam(r, "eventID"))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("get event: %w", err))
		}
		return
	}

	resp := mapToEventResp(event)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	req := &struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Date        *string `json:"date"`
		StartTime   *string `json:"start_time"`
		EndTime     *string `json:"end_time"`
		Color       *string `json:"color"`
		Location    *string `json:"location"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	id := chi.URLParam(r, "eventID")

	current, err := a.eventsService.GetEvent(r.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("get event: %w", err))
		}
		return
	}

	// Validate the form the update would produce, so a partial change cannot
	// leave the event in a state a create would have rejected.
	merged := forms.EventForm{
		Title:       orCurrent(req.Title, current.Title),
		Description: orCurrent(req.Description, current.Description),
		Date:        orCurrent(req.Date, current.Date),
		StartTime:   orCurrent(req.StartTime, current.StartTime),
		EndTime:     orCurrent(req.EndTime, current.EndTime),
		Color:       orCurrent(req.Color, current.Color),
	}

	v := forms.ValidateEventForm(merged)
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	event, err := a.eventsService.UpdateEvent(r.Context(), userID, id, &model.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Color:       req.Color,
		Location:    req.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("update event: %w", err))
		}
		return
	}

	resp := mapToEventResp(event)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	if err := a.eventsService.DeleteEvent(r.Context(), userID, chi.URLParam(r, "eventID")); err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("delete event: %w", err))
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

func orCurrent(v *string, current string) string {
	if v != nil {
		return *v
	}

	return current
}
