package todorepo

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmptySubject is returned by Insert when the subject is blank.
	ErrEmptySubject = errors.New("todo subject is required")

	// ErrInsertFailed wraps any error reported by the database access.
	ErrInsertFailed = errors.New("failed to insert todo")
)

// NewTodo is the input for creating a to-do item.
type NewTodo struct {
	Subject string
}

// TodoEntity is a stored to-do item.
type TodoEntity struct {
	ID        uuid.UUID
	Subject   string
	CreatedAt time.Time
}
