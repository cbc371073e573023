package cell

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyBorrowed is returned by RefCell.Write while any borrow is outstanding.
	ErrAlreadyBorrowed = errors.New("already borrowed")

	// ErrAlreadyMutablyBorrowed is returned by RefCell.Read while a write borrow is outstanding.
	ErrAlreadyMutablyBorrowed = errors.New("already mutably borrowed")

	// ErrPoisoned is returned by LockCell once a previous holder exited abnormally.
	ErrPoisoned = errors.New("lock poisoned by a previous holder")

	// ErrUninitialized is the reason reported when the owner of a cell was
	// used as a zero value and has no cell at all.
	ErrUninitialized = errors.New("used before initialization")
)

// Cell grants scoped access to a shared value.
// The pointer passed to fn must not be retained after fn returns.
type Cell[T any] interface {
	// Read runs fn with shared access to the value.
	Read(fn func(*T) error) error
	// Write runs fn with exclusive access to the value.
	Write(fn func(*T) error) error
}

// Labels are the owner-specific errors wrapped around acquisition failures.
// A nil label leaves the reason unwrapped.
type Labels struct {
	Read  error
	Write error
}

func wrap(label, reason error) error {
	if label == nil {
		return reason
	}
	return fmt.Errorf("%w: %w", label, reason)
}
