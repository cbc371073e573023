package nonthreadsafe

import (
	"fmt"

	"github.com/dmitrymomot/outputtracker/core/cell"
	"github.com/dmitrymomot/outputtracker/core/handle"
	"github.com/dmitrymomot/outputtracker/core/tracking"
)

type refCells[M any] struct{}

func (refCells[M]) NewRegistry() cell.Cell[tracking.Registry[M]] {
	return cell.NewRefCell(tracking.Registry[M]{}, cell.Labels{
		Read:  ErrBorrowSubjectFailed,
		Write: ErrBorrowMutSubjectFailed,
	})
}

func (refCells[M]) NewStore() cell.Cell[tracking.Store[M]] {
	return cell.NewRefCell(tracking.Store[M]{}, cell.Labels{
		Read:  ErrBorrowTrackerFailed,
		Write: ErrBorrowMutTrackerFailed,
	})
}

// Subject holds the trackers created from it and emits data to them.
//
// Copies of a Subject share one registry, so a Subject value can be handed
// to several owners on the same goroutine. Create subjects with NewSubject; every
// operation on the zero value fails with cell.ErrUninitialized.
type Subject[M any] struct {
	core *tracking.Subject[M]
}

// NewSubject returns a subject without trackers.
func NewSubject[M any]() Subject[M] {
	return Subject[M]{core: tracking.NewSubject[M](refCells[M]{})}
}

// CreateTracker creates a tracker that records every item emitted from now on.
func (s Subject[M]) CreateTracker() (*Tracker[M], error) {
	if s.core == nil {
		return nil, uninitialized(ErrBorrowMutSubjectFailed)
	}
	t, err := s.core.CreateTracker()
	if err != nil {
		return nil, err
	}
	return &Tracker[M]{core: t}, nil
}

// Emit delivers a clone of item to every active tracker.
// Items implementing tracking.Cloner are copied with their Clone method.
func (s Subject[M]) Emit(item M) error {
	if s.core == nil {
		return uninitialized(ErrBorrowSubjectFailed)
	}
	return s.core.Emit(item)
}

// ActiveTrackers returns the number of trackers that have not been stopped.
func (s Subject[M]) ActiveTrackers() (int, error) {
	if s.core == nil {
		return 0, uninitialized(ErrBorrowSubjectFailed)
	}
	return s.core.ActiveTrackers()
}

// Tracker collects the items emitted by the subject it was created from.
//
// Output can be read any number of times; each read returns everything
// collected since creation or the last Clear. Once stopped, a tracker no
// longer collects data and cannot be restarted, but its output stays readable.
type Tracker[M any] struct {
	core *tracking.Tracker[M]
}

// Output returns the items collected so far, in emission order.
func (t *Tracker[M]) Output() ([]M, error) {
	if t == nil || t.core == nil {
		return nil, uninitialized(ErrBorrowTrackerFailed)
	}
	return t.core.Output()
}

// Clear discards the items collected so far. Items emitted afterwards are
// still collected.
func (t *Tracker[M]) Clear() error {
	if t == nil || t.core == nil {
		return uninitialized(ErrBorrowMutTrackerFailed)
	}
	return t.core.Clear()
}

// Stop detaches the tracker from its subject. Calling Stop again is a no-op.
func (t *Tracker[M]) Stop() error {
	if t == nil || t.core == nil {
		return uninitialized(ErrBorrowMutSubjectFailed)
	}
	return t.core.Stop()
}

// Handle returns the unique handle of this tracker's registration.
// A tracker that was never created by a subject has the zero handle.
func (t *Tracker[M]) Handle() handle.TrackerHandle {
	if t == nil || t.core == nil {
		return handle.TrackerHandle{}
	}
	return t.core.Handle()
}

func uninitialized(label error) error {
	return fmt.Errorf("%w: %w", label, cell.ErrUninitialized)
}
