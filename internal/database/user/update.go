package user

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/daygrid/calendar-backend/internal/database"
)

func (*Repository) UpdateLastLogin(ctx context.Context, q database.Queryable, id int64, at time.Time) error {
	qb := database.PSQL.
		Update(database.UsersTable).
		Set("last_login_at", at).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
