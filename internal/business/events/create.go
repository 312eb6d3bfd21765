package events

import (
	"context"
	"fmt"

	"github.com/daygrid/calendar-backend/internal/forms"
	"github.com/daygrid/calendar-backend/internal/model"
)

// CreateEvent stores a new event: free-text fields are sanitized, the color
// falls back to a random palette entry when the client picked none, and both
// timestamps are set to the same instant.
func (s *Service) CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error) {
	color := info.Color
	if color == "" {
		color = model.EventColors[s.randn(len(model.EventColors))]
	} else {
		var err error
		if color, err = model.NormalizeColor(color); err != nil {
			return nil, err
		}
	}

	now := s.now()

	event := &model.Event{
		ID:        s.newID(),
		CreatedAt: now,
		UpdatedAt: now,
		EventCreate: model.EventCreate{
			OwnerID:     info.OwnerID,
			Title:       forms.SanitizeInput(info.Title),
			Description: forms.SanitizeInput(info.Description),
			Date:        info.Date,
			StartTime:   info.StartTime,
			EndTime:     info.EndTime,
			Color:       color,
			Location:    forms.SanitizeInput(info.Location),
		},
	}

	if err := s.eventsRepository.CreateEvent(ctx, s.db, event); err != nil {
		return nil, fmt.Errorf("eventsRepository.CreateEvent: %w", err)
	}

	return event, nil
}
