package health_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/outputtracker/core/health"
	"github.com/dmitrymomot/outputtracker/core/logger"
)

func TestReadiness(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }

	t.Run("no checks", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, health.Readiness(context.Background(), nil))
	})

	t.Run("all pass", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, health.Readiness(context.Background(), nil, ok, ok))
	})

	t.Run("failures are joined and logged", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("db down")
		cacheErr := errors.New("cache down")
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithJSONFormatter())

		calls := 0
		counting := func(context.Context) error { calls++; return nil }

		err := health.Readiness(context.Background(), log,
			func(context.Context) error { return dbErr },
			counting,
			func(context.Context) error { return cacheErr },
		)
		assert.ErrorIs(t, err, health.ErrNotReady)
		assert.ErrorIs(t, err, dbErr)
		assert.ErrorIs(t, err, cacheErr)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("readiness check failed")))
	})
}
