// Package events holds the event-management service: input sanitizing, color
// defaulting, timestamping, and owner scoping on top of the events
// repository.
package events

import (
	"context"
	"math/rand"
	"time"

	"github.com/daygrid/calendar-backend/internal/database"
	"github.com/daygrid/calendar-backend/internal/model"
	"github.com/google/uuid"
)

type Service struct {
	db               database.PGX
	eventsRepository eventsRepository

	now   func() time.Time
	newID func() string
	randn func(n int) int
}

type eventsRepository interface {
	CreateEvent(ctx context.Context, q database.Queryable, event *model.Event) error
	GetEvent(ctx context.Context, q database.Queryable, ownerID int64, id string) (*model.Event, error)
	GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error)
	UpdateEvent(ctx context.Context, q database.Queryable, event *model.Event) error
	DeleteEvent(ctx context.Context, q database.Queryable, ownerID int64, id string) error
}

func NewService(db database.PGX, repo eventsRepository) *Service {
	return &Service{
		db:               db,
		eventsRepository: repo,
		now:              time.Now,
		newID:            uuid.NewString,
		randn:            rand.Intn,
	}
}
