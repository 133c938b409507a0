package handlers

import (
	"context"
	"time"

	"github.com/trakzone/checkin-service/internal/models"
)

// Store is the persistence surface the handlers depend on. *store.PostgresStore
// satisfies it; tests use an in-memory fake.
type Store interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)

	CreateEvent(ctx context.Context, name string, date time.Time) (int64, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	EventByID(ctx context.Context, id int64) (models.Event, error)

	InsertCheckIn(ctx context.Context, userID, eventID int64) (bool, error)
	ListAttendees(ctx context.Context, eventID int64) ([]models.Attendee, error)
}
