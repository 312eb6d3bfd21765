package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/daygrid/calendar-backend/internal/model"
)

func (s *Service) DeleteEvent(ctx context.Context, ownerID int64, id string) error {
	if err := s.eventsRepository.DeleteEvent(ctx, s.db, ownerID, id); err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return err
		}
		return fmt.Errorf("eventsRepository.DeleteEvent: %w", err)
	}

	return nil
}
