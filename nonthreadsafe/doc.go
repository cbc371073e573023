// Package nonthreadsafe provides output trackers for components that live on
// a single goroutine.
//
// The API is the same as package threadsafe. Instead of locks, access to the
// registry and to every tracker's store is checked at runtime: overlapping
// reads are fine, but a write while anything else holds the value fails
// immediately instead of blocking. This catches reentrant use such as
// creating a tracker from inside an item's Clone method while that item is
// being emitted:
//
//	subject := nonthreadsafe.NewSubject[Todo]()
//	tracker, _ := subject.CreateTracker()
//	_ = subject.Emit(Todo{Subject: "buy milk"})
//	todos, _ := tracker.Output()
//
// Values from this package must not be used by more than one goroutine at a
// time. Use package threadsafe for that.
//
// # Errors
//
// Borrow conflicts are reported as one of ErrBorrowTrackerFailed,
// ErrBorrowMutTrackerFailed, ErrBorrowSubjectFailed or
// ErrBorrowMutSubjectFailed, wrapping cell.ErrAlreadyBorrowed or
// cell.ErrAlreadyMutablyBorrowed as the reason. Emit stops at the first
// tracker whose store is already borrowed; trackers registered after it do not
// receive the item. A zero Subject or Tracker reports cell.ErrUninitialized
// under the same errors.
package nonthreadsafe
