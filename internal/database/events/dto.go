package events

import (
	"time"

	"github.com/daygrid/calendar-backend/internal/calendar"
	"github.com/daygrid/calendar-backend/internal/model"
)

type eventDTO struct {
	ID          string
	OwnerID     int64
	Title       string
	Description string
	Date        time.Time
	StartTime   string
	EndTime     string
	Color       string
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func mapToEvent(dto *eventDTO) *model.Event {
	return &model.Event{
		ID:        dto.ID,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
		EventCreate: model.EventCreate{
			OwnerID:     dto.OwnerID,
			Title:       dto.Title,
			Description: dto.Description,
			Date:        calendar.DateKey(dto.Date),
			StartTime:   dto.StartTime,
			EndTime:     dto.EndTime,
			Color:       dto.Color,
			Location:    dto.Location,
		},
	}
}
