package cell

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// LockCell is a Cell safe for concurrent use by multiple goroutines.
// The zero value is not usable; create one with NewLockCell.
type LockCell[T any] struct {
	mu       sync.Mutex
	poisoned atomic.Bool
	value    T
	label    error
}

var _ Cell[int] = (*LockCell[int])(nil)

// NewLockCell wraps value in a LockCell. label is wrapped around every
// acquisition failure, for reads and writes alike.
func NewLockCell[T any](value T, label error) *LockCell[T] {
	return &LockCell[T]{value: value, label: label}
}

// Read runs fn with exclusive access. It is the same path as Write.
func (c *LockCell[T]) Read(fn func(*T) error) error {
	return c.access(fn)
}

// Write runs fn with exclusive access.
func (c *LockCell[T]) Write(fn func(*T) error) error {
	return c.access(fn)
}

// Poisoned reports whether a previous holder exited abnormally.
func (c *LockCell[T]) Poisoned() bool {
	return c.poisoned.Load()
}

func (c *LockCell[T]) access(fn func(*T) error) error {
	if err := c.lock(); err != nil {
		return err
	}

	completed := false
	defer func() {
		if !completed {
			c.poisoned.Store(true)
		}
		c.mu.Unlock()
	}()

	err := fn(&c.value)
	completed = true
	return err
}

// lock spins on TryLock until the mutex is free or the cell is poisoned.
func (c *LockCell[T]) lock() error {
	for {
		if c.poisoned.Load() {
			return wrap(c.label, ErrPoisoned)
		}
		if c.mu.TryLock() {
			if c.poisoned.Load() {
				c.mu.Unlock()
				return wrap(c.label, ErrPoisoned)
			}
			return nil
		}
		runtime.Gosched()
	}
}
