package nonthreadsafe

import "errors"

var (
	// ErrBorrowTrackerFailed is returned when a tracker's store cannot be borrowed for reading.
	ErrBorrowTrackerFailed = errors.New("failed to obtain an immutable borrow of the tracker")

	// ErrBorrowMutTrackerFailed is returned when a tracker's store cannot be borrowed for writing.
	ErrBorrowMutTrackerFailed = errors.New("failed to obtain a mutable borrow of the tracker")

	// ErrBorrowSubjectFailed is returned when the subject's registry cannot be borrowed for reading.
	ErrBorrowSubjectFailed = errors.New("failed to obtain an immutable borrow of the subject")

	// ErrBorrowMutSubjectFailed is returned when the subject's registry cannot be borrowed for writing.
	ErrBorrowMutSubjectFailed = errors.New("failed to obtain a mutable borrow of the subject")
)
