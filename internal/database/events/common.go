package events

import "github.com/daygrid/calendar-backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
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
	From(database.EventsTable)
