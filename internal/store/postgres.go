package store

import (
	"context"
	_ "embed"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trakzone/checkin-service/internal/models"
)

// schemaSQL is embedded so the service can self-bootstrap its database schema.
//
//go:embed schema.sql
var schemaSQL string

// Sentinel errors for domain outcomes. Handlers map these to HTTP statuses.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
	ErrEventNotFound = errors.New("event not found")
)

// uniqueViolation is the Postgres SQLSTATE for constraint conflicts.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// PostgresStore is the durable persistence layer for users, events and check-ins.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a connection pool and fails fast if DB is unreachable.
func NewPostgresStore(dbURL string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema applies schema.sql. Safe to run multiple times.
func (p *PostgresStore) EnsureSchema() error {
	_, err := p.pool.Exec(context.Background(), schemaSQL)
	return err
}

// Ping is used by the readiness endpoint to validate DB connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (p *PostgresStore) Close() {
	p.pool.Close()
}

// CreateUser persists a new user and returns its id.
// A username conflict surfaces as ErrUsernameTaken.
func (p *PostgresStore) CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	var id int64
	err := p.pool.QueryRow(ctx, `
		INSERT INTO users(username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`, username, email, passwordHash).Scan(&id)

	if isUniqueViolation(err) {
		return 0, ErrUsernameTaken
	}
	return id, err
}

// UserByUsername looks up a user for login.
func (p *PostgresStore) UserByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := p.pool.QueryRow(ctx, `
		SELECT id, username, email, password_hash
		FROM users
		WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)

	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	return u, err
}

// UserByEmail supports the configurable email-uniqueness check on registration.
func (p *PostgresStore) UserByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := p.pool.QueryRow(ctx, `
		SELECT id, username, email, password_hash
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)

	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	return u, err
}

// CreateEvent persists a new event and returns its id.
func (p *PostgresStore) CreateEvent(ctx context.Context, name string, date time.Time) (int64, error) {
	var id int64
	err := p.pool.QueryRow(ctx, `
		INSERT INTO events(name, date)
		VALUES ($1, $2)
		RETURNING id
	`, name, date).Scan(&id)
	return id, err
}

// ListEvents returns all events.
func (p *PostgresStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, name, date
		FROM events
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Date); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// EventByID returns a single event, or ErrEventNotFound.
func (p *PostgresStore) EventByID(ctx context.Context, id int64) (models.Event, error) {
	var e models.Event
	err := p.pool.QueryRow(ctx, `
		SELECT id, name, date
		FROM events
		WHERE id = $1
	`, id).Scan(&e.ID, &e.Name, &e.Date)

	if errors.Is(err, pgx.ErrNoRows) {
		return models.Event{}, ErrEventNotFound
	}
	return e, err
}

// InsertCheckIn records a check-in and returns inserted=false when the user
// already checked in to the event.
//
// The UNIQUE (user_id, event_id) constraint plus ON CONFLICT DO NOTHING makes
// this a single atomic conditional insert: concurrent requests for the same
// pair produce exactly one row.
func (p *PostgresStore) InsertCheckIn(ctx context.Context, userID, eventID int64) (bool, error) {
	// RETURNING 1 only when inserted; duplicates return no rows.
	var one int
	err := p.pool.QueryRow(ctx, `
		INSERT INTO checkins(user_id, event_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, event_id) DO NOTHING
		RETURNING 1
	`, userID, eventID).Scan(&one)

	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListAttendees returns the check-ins for an event joined with usernames.
func (p *PostgresStore) ListAttendees(ctx context.Context, eventID int64) ([]models.Attendee, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT u.id, u.username
		FROM checkins c
		JOIN users u ON u.id = c.user_id
		WHERE c.event_id = $1
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendees := []models.Attendee{}
	for rows.Next() {
		var a models.Attendee
		if err := rows.Scan(&a.UserID, &a.Username); err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	return attendees, rows.Err()
}
