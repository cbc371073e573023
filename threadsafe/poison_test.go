package threadsafe_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outputtracker/core/cell"
	"github.com/dmitrymomot/outputtracker/threadsafe"
)

// fragile panics in Clone while its switch is on.
type fragile struct {
	n    int
	boom *atomic.Bool
}

func (p fragile) Clone() fragile {
	if p.boom.Load() {
		panic("clone failed")
	}
	return p
}

func values(ps []fragile) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.n
	}
	return out
}

func TestPoisonedStore_StopsBroadcast(t *testing.T) {
	t.Parallel()

	boom := &atomic.Bool{}
	subject := threadsafe.NewSubject[fragile]()
	first := mustTracker(t, subject)
	poisoned := mustTracker(t, subject)
	last := mustTracker(t, subject)

	require.NoError(t, subject.Emit(fragile{n: 1, boom: boom}))

	boom.Store(true)
	assert.PanicsWithValue(t, "clone failed", func() {
		_, _ = poisoned.Output()
	})
	boom.Store(false)

	err := subject.Emit(fragile{n: 2, boom: boom})
	require.ErrorIs(t, err, threadsafe.ErrLockTrackerFailed)
	assert.ErrorIs(t, err, cell.ErrPoisoned)

	assert.Equal(t, []int{1, 2}, values(mustOutput(t, first)))
	assert.Equal(t, []int{1}, values(mustOutput(t, last)), "trackers after the poisoned one miss the item")

	_, err = poisoned.Output()
	assert.ErrorIs(t, err, threadsafe.ErrLockTrackerFailed)
	assert.ErrorIs(t, poisoned.Clear(), threadsafe.ErrLockTrackerFailed)

	// the registry is fine, so the poisoned tracker can still be detached
	require.NoError(t, poisoned.Stop())
	require.NoError(t, subject.Emit(fragile{n: 3, boom: boom}))

	assert.Equal(t, []int{1, 2, 3}, values(mustOutput(t, first)))
	assert.Equal(t, []int{1, 3}, values(mustOutput(t, last)))
}

func TestPoisonedRegistry(t *testing.T) {
	t.Parallel()

	boom := &atomic.Bool{}
	subject := threadsafe.NewSubject[fragile]()
	tracker := mustTracker(t, subject)

	require.NoError(t, subject.Emit(fragile{n: 1, boom: boom}))

	boom.Store(true)
	assert.Panics(t, func() {
		_ = subject.Emit(fragile{n: 2, boom: boom})
	})
	boom.Store(false)

	_, err := subject.CreateTracker()
	assert.ErrorIs(t, err, threadsafe.ErrLockSubjectFailed)
	assert.ErrorIs(t, err, cell.ErrPoisoned)

	assert.ErrorIs(t, subject.Emit(fragile{n: 3, boom: boom}), threadsafe.ErrLockSubjectFailed)
	assert.ErrorIs(t, tracker.Stop(), threadsafe.ErrLockSubjectFailed)

	_, err = subject.ActiveTrackers()
	assert.ErrorIs(t, err, threadsafe.ErrLockSubjectFailed)

	// the tracker's own store is untouched
	assert.Equal(t, []int{1}, values(mustOutput(t, tracker)))
	require.NoError(t, tracker.Clear())
	assert.Empty(t, mustOutput(t, tracker))
}
