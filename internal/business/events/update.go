package events

import (
	"context"
	"fmt"

	"github.com/daygrid/calendar-backend/internal/forms"
	"github.com/daygrid/calendar-backend/internal/model"
)

// UpdateEvent applies a partial update to an owner's event. Only non-nil
// fields change; UpdatedAt is refreshed, CreatedAt never is.
func (s *Service) UpdateEvent(ctx context.Context, ownerID int64, id string, upd *model.EventUpdate) (*model.Event, error) {
	event, err := s.eventsRepository.GetEvent(ctx, s.db, ownerID, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		event.Title = forms.SanitizeInput(*upd.Title)
	}
	if upd.Description != nil {
		event.Description = forms.SanitizeInput(*upd.Description)
	}
	if upd.Date != nil {
		event.Date = *upd.Date
	}
	if upd.StartTime != nil {
		event.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		event.EndTime = *upd.EndTime
	}
	if upd.Color != nil {
		color, err := model.NormalizeColor(*upd.Color)
		if err != nil {
			return nil, err
		}
		event.Color = color
	}
	if upd.Location != nil {
		event.Location = forms.SanitizeInput(*upd.Location)
	}

	event.UpdatedAt = s.now()

	if err := s.eventsRepository.UpdateEvent(ctx, s.db, event); err != nil {
		return nil, fmt.Errorf("eventsRepository.UpdateEvent: %w", err)
	}

	return event, nil
}
