package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/daygrid/calendar-backend/internal/model"
)

func (s *Service) GetEvent(ctx context.Context, ownerID int64, id string) (*model.Event, error) {
	event, err := s.eventsRepository.GetEvent(ctx, s.db, ownerID, id)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil, err
		}
		return nil, fmt.Errorf("eventsRepository.GetEvent: %w", err)
	}

	return event, nil
}

func (s *Service) GetEvents(ctx context.Context, filter model.EventsFilter) ([]*model.Event, error) {
	events, err := s.eventsRepository.GetEvents(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	return events, nil
}
