package handle_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outputtracker/core/handle"
)

func TestNext_Unique(t *testing.T) {
	t.Parallel()

	const n = 1000
	seen := make(map[handle.TrackerHandle]struct{}, n)
	for range n {
		h := handle.Next()
		require.False(t, h.IsZero())
		_, dup := seen[h]
		require.False(t, dup, "handle %s issued twice", h)
		seen[h] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestNext_ConcurrentUnique(t *testing.T) {
	t.Parallel()

	const (
		workers = 8
		perW    = 500
	)

	var (
		mu   sync.Mutex
		seen = make(map[handle.TrackerHandle]struct{}, workers*perW)
		wg   sync.WaitGroup
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]handle.TrackerHandle, 0, perW)
			for range perW {
				local = append(local, handle.Next())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, h := range local {
				seen[h] = struct{}{}
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perW)
}

func TestTrackerHandle_ZeroValue(t *testing.T) {
	t.Parallel()

	var h handle.TrackerHandle
	assert.True(t, h.IsZero())
	assert.Equal(t, "tracker-0", h.String())
	assert.NotEqual(t, h, handle.Next())
}
