package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/daygrid/calendar-backend/internal/calendar"
	"github.com/daygrid/calendar-backend/internal/database"
	"github.com/daygrid/calendar-backend/internal/model"
)

func (*Repository) UpdateEvent(ctx context.Context, q database.Queryable, event *model.Event) error {
	date, err := calendar.ParseDateKey(event.Date)
	if err != nil {
		return err
	}

	qb := database.PSQL.
		Update(database.EventsTable).
		SetMap(map[string]interface{}{
			"title":       event.Title,
			"description": event.Description,
			"date":        date,
			"start_time":  event.StartTime,
			"end_time":    event.EndTime,
			"color":       event.Color,
			"location":    event.Location,
			"updated_at":  event.UpdatedAt,
		}).
		Where(sq.Eq{"id": event.ID, "owner_id": event.OwnerID})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
