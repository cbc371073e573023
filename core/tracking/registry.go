package tracking

import (
	"slices"

	"github.com/dmitrymomot/outputtracker/core/cell"
	"github.com/dmitrymomot/outputtracker/core/handle"
)

type registration[M any] struct {
	handle handle.TrackerHandle
	store  cell.Cell[Store[M]]
}

// Registry is the insertion-ordered list of active tracker registrations.
type Registry[M any] struct {
	entries []registration[M]
}

// Add registers store under a new handle and returns the handle.
func (r *Registry[M]) Add(store cell.Cell[Store[M]]) handle.TrackerHandle {
	h := handle.Next()
	r.entries = append(r.entries, registration[M]{handle: h, store: store})
	return h
}

// Remove drops the registration for h. Removing an unknown handle is a no-op.
func (r *Registry[M]) Remove(h handle.TrackerHandle) {
	for i, e := range r.entries {
		if e.handle == h {
			r.entries = slices.Delete(r.entries, i, i+1)
			return
		}
	}
}

// Broadcast appends a clone of item to every registered store in
// registration order. It stops at the first store that cannot be accessed
// and returns that error; later stores do not receive the item.
func (r *Registry[M]) Broadcast(item M) error {
	for _, e := range r.entries {
		data := Clone(item)
		if err := e.store.Write(func(s *Store[M]) error {
			s.Append(data)
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of registered trackers.
func (r *Registry[M]) Len() int {
	return len(r.entries)
}

// Contains reports whether h is registered.
func (r *Registry[M]) Contains(h handle.TrackerHandle) bool {
	for _, e := range r.entries {
		if e.handle == h {
			return true
		}
	}
	return false
}
