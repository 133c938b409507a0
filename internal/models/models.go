package models

import "time"

// DateLayout is the wire format for event dates, both on input (POST /events)
// and output (event listing/retrieval).
const DateLayout = "2006-01-02 15:04:05"

// User is a registered account. Immutable after creation; there are no
// update or delete endpoints.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
}

// Event is a check-in target.
type Event struct {
	ID   int64
	Name string
	Date time.Time
}

// Attendee is one row of an event's attendee listing: a check-in joined
// with the checked-in user's username.
type Attendee struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// RegisterRequest is the POST /register payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the POST /login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateEventRequest is the POST /events payload. Date must use DateLayout.
type CreateEventRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// CheckinRequest is the POST /checkin payload. The user comes from the token.
type CheckinRequest struct {
	EventID int64 `json:"event_id"`
}

// EventResponse is the JSON shape for a single event.
type EventResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

// EventJSON formats an event for the API, with the date rendered in DateLayout.
func EventJSON(e Event) EventResponse {
	return EventResponse{
		ID:   e.ID,
		Name: e.Name,
		Date: e.Date.Format(DateLayout),
	}
}
