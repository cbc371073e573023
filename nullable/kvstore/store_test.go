package kvstore_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/outputtracker/nullable/kvstore"
)

func TestStore_NulledRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := kvstore.NewNulled()
	writes, err := kv.TrackWrites()
	require.NoError(t, err)

	require.NoError(t, kv.Set(ctx, "session:42", "ann", time.Hour))

	value, err := kv.Get(ctx, "session:42")
	require.NoError(t, err)
	assert.Equal(t, "ann", value)

	existed, err := kv.Delete(ctx, "session:42")
	require.NoError(t, err)
	assert.True(t, existed)

	_, err = kv.Get(ctx, "session:42")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)

	existed, err = kv.Delete(ctx, "session:42")
	require.NoError(t, err)
	assert.False(t, existed)

	recorded, err := writes.Output()
	require.NoError(t, err)
	assert.Equal(t, []kvstore.Write{
		{Op: kvstore.OpSet, Key: "session:42", Value: "ann", TTL: time.Hour},
		{Op: kvstore.OpDelete, Key: "session:42"},
		{Op: kvstore.OpDelete, Key: "session:42"},
	}, recorded)
}

func TestStore_NulledExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	kv := kvstore.NewNulled(kvstore.WithClock(func() time.Time { return now }))

	require.NoError(t, kv.Set(ctx, "short", "v", time.Minute))
	require.NoError(t, kv.Set(ctx, "forever", "v", 0))

	now = now.Add(59 * time.Second)
	_, err := kv.Get(ctx, "short")
	require.NoError(t, err)

	now = now.Add(time.Second)
	_, err = kv.Get(ctx, "short")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)

	now = now.Add(24 * time.Hour)
	value, err := kv.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestStore_NegativeTTL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := kvstore.NewNulled()
	writes, err := kv.TrackWrites()
	require.NoError(t, err)

	require.NoError(t, kv.Set(ctx, "k", "old", time.Minute))

	for _, ttl := range []time.Duration{redis.KeepTTL, -time.Second} {
		assert.ErrorIs(t, kv.Set(ctx, "k", "new", ttl), kvstore.ErrInvalidTTL)
	}

	value, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "old", value)

	recorded, err := writes.Output()
	require.NoError(t, err)
	assert.Len(t, recorded, 1)
}

func TestStore_EmptyKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := kvstore.NewNulled()
	writes, err := kv.TrackWrites()
	require.NoError(t, err)

	assert.ErrorIs(t, kv.Set(ctx, "", "v", 0), kvstore.ErrEmptyKey)
	_, err = kv.Get(ctx, "")
	assert.ErrorIs(t, err, kvstore.ErrEmptyKey)
	_, err = kv.Delete(ctx, "")
	assert.ErrorIs(t, err, kvstore.ErrEmptyKey)

	recorded, err := writes.Output()
	require.NoError(t, err)
	assert.Empty(t, recorded)
}

type brokenBackend struct {
	err error
}

func (b brokenBackend) Set(context.Context, string, string, time.Duration) error { return b.err }
func (b brokenBackend) Get(context.Context, string) (string, error)              { return "", b.err }
func (b brokenBackend) Delete(context.Context, string) (bool, error)             { return false, b.err }

func TestStore_BackendFailureIsNotTracked(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backendErr := errors.New("connection refused")
	kv := kvstore.NewWithBackend(brokenBackend{err: backendErr})
	writes, err := kv.TrackWrites()
	require.NoError(t, err)

	err = kv.Set(ctx, "k", "v", 0)
	assert.ErrorIs(t, err, kvstore.ErrBackend)
	assert.ErrorIs(t, err, backendErr)

	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, kvstore.ErrBackend)

	_, err = kv.Delete(ctx, "k")
	assert.ErrorIs(t, err, kvstore.ErrBackend)

	recorded, err := writes.Output()
	require.NoError(t, err)
	assert.Empty(t, recorded)
}

func TestStore_RedisUnreachable(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	kv := kvstore.New(client)
	writes, err := kv.TrackWrites()
	require.NoError(t, err)

	err = kv.Set(context.Background(), "k", "v", time.Minute)
	assert.ErrorIs(t, err, kvstore.ErrBackend)

	recorded, err := writes.Output()
	require.NoError(t, err)
	assert.Empty(t, recorded)
}

func TestStore_ConcurrentWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := kvstore.NewNulled()
	writes, err := kv.TrackWrites()
	require.NoError(t, err)

	const workers, perWorker = 4, 100
	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			for i := range perWorker {
				if err := kv.Set(ctx, strconv.Itoa(w)+":"+strconv.Itoa(i), "v", 0); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	recorded, err := writes.Output()
	require.NoError(t, err)
	assert.Len(t, recorded, workers*perWorker)

	for w := range workers {
		_, err := kv.Get(ctx, strconv.Itoa(w)+":"+strconv.Itoa(perWorker-1))
		assert.NoError(t, err)
	}
}
