package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/daygrid/calendar-backend/internal/database"
	"github.com/daygrid/calendar-backend/internal/model"
)

func (*Repository) DeleteEvent(ctx context.Context, q database.Queryable, ownerID int64, id string) error {
	qb := database.PSQL.
		Delete(database.EventsTable).
		Where(sq.Eq{"id": id, "owner_id": ownerID})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
