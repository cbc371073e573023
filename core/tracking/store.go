package tracking

// Store is the ordered log of items a single tracker has received.
type Store[M any] struct {
	items []M
}

// Append adds item to the end of the log.
func (s *Store[M]) Append(item M) {
	s.items = append(s.items, item)
}

// Snapshot returns a copy of the log in insertion order. Items are cloned.
// An empty store yields an empty, non-nil slice.
func (s *Store[M]) Snapshot() []M {
	out := make([]M, len(s.items))
	for i, item := range s.items {
		out[i] = Clone(item)
	}
	return out
}

// Clear discards all items. The store keeps accepting appends.
func (s *Store[M]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Len returns the number of stored items.
func (s *Store[M]) Len() int {
	return len(s.items)
}
