// Package handle issues process-wide unique tracker handles.
package handle

import (
	"strconv"
	"sync/atomic"
)

var counter atomic.Uint64

// TrackerHandle identifies one tracker registration.
// Handles are compared by value and are never reused within a process.
type TrackerHandle struct {
	id uint64
}

// Next returns a new handle. It never blocks and is safe for concurrent use.
func Next() TrackerHandle {
	return TrackerHandle{id: counter.Add(1)}
}

// String returns the handle in a form suitable for log output.
func (h TrackerHandle) String() string {
	return "tracker-" + strconv.FormatUint(h.id, 10)
}

// IsZero reports whether h was never issued by Next.
func (h TrackerHandle) IsZero() bool {
	return h.id == 0
}
