package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/daygrid/calendar-backend/internal/calendar"
	"github.com/daygrid/calendar-backend/internal/database"
	"github.com/daygrid/calendar-backend/internal/model"
)

// GetEvent fetches a single event scoped to its owner; an id belonging to
// another owner is indistinguishable from a missing one.
func (*Repository) GetEvent(ctx context.Context, q database.Queryable, ownerID int64, id string) (*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id, "owner_id": ownerID})

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	if len(dtos) == 0 {
		return nil, model.ErrNoRecord
	}

	return mapToEvent(dtos[0]), nil
}

// GetEvents lists an owner's events, optionally narrowed to a day or an
// inclusive date range, ordered by (date, start_time).
func (*Repository) GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"owner_id": filter.OwnerID}).
		OrderBy("date", "start_time")

	switch {
	case filter.Date != "":
		date, err := calendar.ParseDateKey(filter.Date)
		if err != nil {
			return nil, err
		}
		qb = qb.Where(sq.Eq{"date": date})
	default:
		if filter.From != "" {
			from, err := calendar.ParseDateKey(filter.From)
			if err != nil {
				return nil, err
			}
			qb = qb.Where(sq.GtOrEq{"date": from})
		}
		if filter.To != "" {
			to, err := calendar.ParseDateKey(filter.To)
			if err != nil {
				return nil, err
			}
			qb = qb.Where(sq.LtOrEq{"date": to})
		}
	}

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Event, len(dtos))
	for i, d := range dtos {
		res[i] = mapToEvent(d)
	}

	return res, nil
}
