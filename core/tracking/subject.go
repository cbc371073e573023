package tracking

import (
	"github.com/dmitrymomot/outputtracker/core/cell"
	"github.com/dmitrymomot/outputtracker/core/handle"
)

// Cells creates the cells that guard a subject's registry and the stores of
// its trackers. It decides the concurrency discipline of a Subject.
type Cells[M any] interface {
	NewRegistry() cell.Cell[Registry[M]]
	NewStore() cell.Cell[Store[M]]
}

// Subject registers trackers and broadcasts emitted items to them.
// Copies of a *Subject share the same registry.
type Subject[M any] struct {
	registry cell.Cell[Registry[M]]
	cells    Cells[M]
}

// NewSubject returns a subject with an empty registry created by cells.
func NewSubject[M any](cells Cells[M]) *Subject[M] {
	return &Subject[M]{
		registry: cells.NewRegistry(),
		cells:    cells,
	}
}

// CreateTracker registers a new, empty tracker.
func (s *Subject[M]) CreateTracker() (*Tracker[M], error) {
	store := s.cells.NewStore()

	var h handle.TrackerHandle
	if err := s.registry.Write(func(r *Registry[M]) error {
		h = r.Add(store)
		return nil
	}); err != nil {
		return nil, err
	}

	return &Tracker[M]{
		handle:   h,
		store:    store,
		registry: s.registry,
	}, nil
}

// Emit broadcasts item to all registered trackers.
func (s *Subject[M]) Emit(item M) error {
	return s.registry.Read(func(r *Registry[M]) error {
		return r.Broadcast(item)
	})
}

// ActiveTrackers returns the number of registered trackers.
func (s *Subject[M]) ActiveTrackers() (int, error) {
	var n int
	err := s.registry.Read(func(r *Registry[M]) error {
		n = r.Len()
		return nil
	})
	return n, err
}

// Tracker reads and clears the items delivered to one registration.
type Tracker[M any] struct {
	handle   handle.TrackerHandle
	store    cell.Cell[Store[M]]
	registry cell.Cell[Registry[M]]
}

// Handle returns the registration handle of the tracker.
func (t *Tracker[M]) Handle() handle.TrackerHandle {
	return t.handle
}

// Output returns a snapshot of the items tracked so far.
func (t *Tracker[M]) Output() ([]M, error) {
	var out []M
	err := t.store.Read(func(s *Store[M]) error {
		out = s.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Clear discards the items tracked so far. Registration is unaffected.
func (t *Tracker[M]) Clear() error {
	return t.store.Write(func(s *Store[M]) error {
		s.Clear()
		return nil
	})
}

// Stop removes the tracker from the registry. Stopping twice is not an error.
func (t *Tracker[M]) Stop() error {
	return t.registry.Write(func(r *Registry[M]) error {
		r.Remove(t.handle)
		return nil
	})
}
