package user

import (
	"github.com/daygrid/calendar-backend/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"id",
		"email",
		"password_hash",
		"display_name",
		"photo",
		"created_at",
		"last_login_at",
	).
	From(database.UsersTable)
