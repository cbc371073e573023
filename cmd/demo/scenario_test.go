package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outputtracker/core/logger"
	"github.com/dmitrymomot/outputtracker/nullable/kvstore"
)

func TestRun_Nulled(t *testing.T) {
	t.Parallel()

	cfg := Config{Nulled: true, Recipient: "ann@example.com"}
	deps, cleanup, err := connect(context.Background(), cfg, logger.Discard())
	require.NoError(t, err)
	defer cleanup()

	r, err := run(context.Background(), cfg, deps)
	require.NoError(t, err)

	require.Len(t, r.todos, 2)
	assert.Equal(t, "remember the milk", r.todos[0].Subject)
	assert.Equal(t, "water the plants", r.todos[1].Subject)

	require.Len(t, r.writes, 2)
	for i, w := range r.writes {
		assert.Equal(t, kvstore.OpSet, w.Op)
		assert.Equal(t, "todo:"+r.todos[i].ID.String(), w.Key)
	}

	require.Len(t, r.uploads, 1)
	assert.Equal(t, "demo", r.uploads[0].Bucket)
	assert.Equal(t, "exports/todos.csv", r.uploads[0].Key)
	assert.Contains(t, string(r.uploads[0].Body), r.todos[0].ID.String()+",remember the milk")

	require.Len(t, r.emails, 1)
	assert.Equal(t, "ann@example.com", r.emails[0].SendTo)
	assert.Contains(t, r.emails[0].BodyHTML, "exports/todos.csv")

	var buf bytes.Buffer
	r.log(context.Background(), logger.New(logger.WithOutput(&buf)))
	assert.Contains(t, buf.String(), "object uploaded")
	assert.Equal(t, 4, bytes.Count(buf.Bytes(), []byte("tracker output")))
	assert.Contains(t, buf.String(), "subject=uploads tracker="+r.observed[3].tracker.String()+" items=1")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("todo stored")))
}

func TestRun_InvalidRecipient(t *testing.T) {
	t.Parallel()

	cfg := Config{Nulled: true, Recipient: "nobody"}
	deps, cleanup, err := connect(context.Background(), cfg, logger.Discard())
	require.NoError(t, err)
	defer cleanup()

	_, err = run(context.Background(), cfg, deps)
	assert.Error(t, err)
}
