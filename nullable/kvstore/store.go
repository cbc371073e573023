package kvstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/outputtracker/core/logger"
	"github.com/dmitrymomot/outputtracker/threadsafe"
)

var (
	// ErrNotFound is returned by Get when the key is missing or expired.
	ErrNotFound = errors.New("key not found")

	// ErrEmptyKey is returned when an operation is called with an empty key.
	ErrEmptyKey = errors.New("key is required")

	// ErrInvalidTTL is returned by Set for a negative ttl.
	ErrInvalidTTL = errors.New("ttl must not be negative")

	// ErrBackend wraps any failure of the underlying backend.
	ErrBackend = errors.New("key-value backend failed")
)

// Op names the kind of a recorded write.
type Op string

const (
	OpSet    Op = "set"
	OpDelete Op = "delete"
)

// Write is one successful mutation of the store.
// Value and TTL are empty for deletes.
type Write struct {
	Op    Op
	Key   string
	Value string
	TTL   time.Duration
}

// Store reads and writes string values and reports writes to its trackers.
type Store struct {
	backend Backend
	writes  threadsafe.Subject[Write]
	log     *slog.Logger
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report failed emits.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the clock the nulled backend expires entries with.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New returns a Store backed by Redis.
func New(client redis.UniversalClient, opts ...Option) *Store {
	return NewWithBackend(NewRedisBackend(client), opts...)
}

// NewNulled returns a Store keeping values in process memory.
func NewNulled(opts ...Option) *Store {
	s := newStore(nil, opts)
	s.backend = newMemoryBackend(s.now)
	return s
}

// NewWithBackend returns a Store over a custom backend.
func NewWithBackend(backend Backend, opts ...Option) *Store {
	return newStore(backend, opts)
}

func newStore(backend Backend, opts []Option) *Store {
	s := &Store{
		backend: backend,
		writes:  threadsafe.NewSubject[Write](),
		log:     logger.Discard(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TrackWrites returns a tracker receiving every successful write from now on.
func (s *Store) TrackWrites() (*threadsafe.Tracker[Write], error) {
	return s.writes.CreateTracker()
}

// Set stores value under key. A ttl of zero keeps the value until deleted.
// Negative ttls are rejected; Redis reads -1 as "keep the current TTL".
func (s *Store) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}
	if ttl < 0 {
		return ErrInvalidTTL
	}
	if err := s.backend.Set(ctx, key, value, ttl); err != nil {
		return errors.Join(ErrBackend, err)
	}
	s.record(ctx, Write{Op: OpSet, Key: key, Value: value, TTL: ttl})
	return nil
}

// Get returns the value stored under key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	value, err := s.backend.Get(ctx, key)
	switch {
	case errors.Is(err, ErrNotFound):
		return "", ErrNotFound
	case err != nil:
		return "", errors.Join(ErrBackend, err)
	}
	return value, nil
}

// Delete removes key and reports whether it existed. Deleting a missing key
// is still recorded as a write.
func (s *Store) Delete(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}
	existed, err := s.backend.Delete(ctx, key)
	if err != nil {
		return false, errors.Join(ErrBackend, err)
	}
	s.record(ctx, Write{Op: OpDelete, Key: key})
	return existed, nil
}

func (s *Store) record(ctx context.Context, w Write) {
	if err := s.writes.Emit(w); err != nil {
		s.log.WarnContext(ctx, "write not reported to trackers",
			logger.Component("kvstore"),
			logger.Subject("writes"),
			logger.Action(string(w.Op)),
			logger.Key("key", w.Key),
			logger.Error(err),
		)
	}
}
