package events

import (
	"context"
	"fmt"

	"github.com/daygrid/calendar-backend/internal/calendar"
	"github.com/daygrid/calendar-backend/internal/database"
	"github.com/daygrid/calendar-backend/internal/model"
)

func (*Repository) CreateEvent(ctx context.Context, q database.Queryable, event *model.Event) error {
	date, err := calendar.ParseDateKey(event.Date)
	if err != nil {
		return err
	}

	qb := database.PSQL.
		Insert(database.EventsTable).
		Columns(
			"id",
			"owner_id",
			"title",
			"description",
			"date",
			"start_time",
			"end_time",
			"color",
			"location",
			"created_at",
			"updated_at",
		).
		Values(
			event.ID,
			event.OwnerID,
			event.Title,
			event.Description,
			date,
			event.StartTime,
			event.EndTime,
			event.Color,
			event.Location,
			event.CreatedAt,
			event.UpdatedAt,
		)

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
