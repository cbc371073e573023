package threadsafe

import "errors"

var (
	// ErrLockTrackerFailed is returned when a tracker's store cannot be locked.
	ErrLockTrackerFailed = errors.New("failed to obtain a lock for the tracker")

	// ErrLockSubjectFailed is returned when the subject's registry cannot be locked.
	ErrLockSubjectFailed = errors.New("failed to obtain a lock for the subject")
)
