package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	conflict := &pgconn.PgError{Code: "23505", ConstraintName: "checkins_user_id_event_id_key"}
	assert.True(t, isUniqueViolation(conflict))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", conflict)))

	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
}
