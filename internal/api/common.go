package api

import (
	"time"

	"github.com/daygrid/calendar-backend/internal/model"
)

type eventResp struct {
	ID          string `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Color       string `json:"color"`
	Location    string `json:"location,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func mapToEventResp(event *model.Event) *eventResp {
	return &eventResp{
		ID:          event.ID,
		OwnerID:     event.OwnerID,
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		Color:       event.Color,
		Location:    event.Location,
		CreatedAt:   event.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   event.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToEventResps(events []*model.Event) []*eventResp {
	res := make([]*eventResp, len(events))
	for i, e := range events {
		res[i] = mapToEventResp(e)
	}

	return res
}
