// Package cell guards a mutably shared value behind scoped access.
//
// Two implementations share the Cell contract:
//
//   - RefCell: single-goroutine checked borrowing. Any number of concurrent
//     reads, or exactly one write. A conflicting request fails immediately
//     with ErrAlreadyBorrowed or ErrAlreadyMutablyBorrowed. It never blocks
//     and is meant to catch reentrant misuse, not to synchronise goroutines.
//   - LockCell: mutual exclusion for concurrent use. Acquisition spins on
//     TryLock until the mutex is free. If an access function exits abnormally
//     (panic or runtime.Goexit) the cell is poisoned and every later
//     acquisition fails with ErrPoisoned. Read and Write share one exclusive
//     path.
//
// Access is scoped to a callback:
//
//	err := c.Write(func(v *[]string) error {
//		*v = append(*v, "item")
//		return nil
//	})
//
// Errors returned by the callback are passed through unchanged. Acquisition
// errors are wrapped with the owner's Labels so callers can tell which value
// could not be accessed:
//
//	c := cell.NewLockCell(registry{}, ErrLockRegistry)
//	if err := c.Read(fn); errors.Is(err, cell.ErrPoisoned) {
//		// registry is unusable
//	}
package cell
