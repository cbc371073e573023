package todorepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/outputtracker/core/logger"
	"github.com/dmitrymomot/outputtracker/integration/database/pg"
	"github.com/dmitrymomot/outputtracker/nonthreadsafe"
)

// Repository stores to-do items and reports every stored entity to its
// trackers.
type Repository struct {
	db    DbAccess
	todos nonthreadsafe.Subject[TodoEntity]
	log   *slog.Logger
	now   func() time.Time
	newID func() uuid.UUID
}

type options struct {
	log       *slog.Logger
	now       func() time.Time
	newID     func() uuid.UUID
	insertErr error
}

// Option configures a Repository.
type Option func(*options)

// WithLogger sets the logger used to report failed emits.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithClock overrides the clock stamping CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithIDGenerator overrides how entity IDs are generated.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(o *options) {
		if newID != nil {
			o.newID = newID
		}
	}
}

// WithInsertError makes every insert of a nulled repository fail with err.
// Repositories created with New ignore it.
func WithInsertError(err error) Option {
	return func(o *options) {
		o.insertErr = err
	}
}

// New returns a repository backed by PostgreSQL.
func New(db pg.Querier, opts ...Option) *Repository {
	o := buildOptions(opts)
	return newRepository(NewPgAccess(db), o)
}

// NewNulled returns a repository whose database access succeeds without
// touching a database.
func NewNulled(opts ...Option) *Repository {
	o := buildOptions(opts)
	return newRepository(&nulledAccess{insertErr: o.insertErr}, o)
}

func buildOptions(opts []Option) options {
	o := options{
		log:   logger.Discard(),
		now:   time.Now,
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newRepository(db DbAccess, o options) *Repository {
	return &Repository{
		db:    db,
		todos: nonthreadsafe.NewSubject[TodoEntity](),
		log:   o.log,
		now:   o.now,
		newID: o.newID,
	}
}

// TrackTodos returns a tracker receiving every entity inserted from now on.
func (r *Repository) TrackTodos() (*nonthreadsafe.Tracker[TodoEntity], error) {
	return r.todos.CreateTracker()
}

// Insert validates todo, stores it and returns the stored entity. Trackers
// see the entity only when the database accepted it.
func (r *Repository) Insert(ctx context.Context, todo NewTodo) (TodoEntity, error) {
	subject := strings.TrimSpace(todo.Subject)
	if subject == "" {
		return TodoEntity{}, ErrEmptySubject
	}

	entity := TodoEntity{
		ID:        r.newID(),
		Subject:   subject,
		CreatedAt: r.now().UTC(),
	}

	if err := r.db.InsertTodo(ctx, entity); err != nil {
		return TodoEntity{}, errors.Join(ErrInsertFailed, err)
	}

	if err := r.todos.Emit(entity); err != nil {
		r.log.WarnContext(ctx, "todo not reported to trackers",
			logger.Component("todorepo"),
			logger.Subject("todos"),
			logger.ID("todo_id", entity.ID),
			logger.Error(err),
		)
	}

	return entity, nil
}

// MustInsert is Insert for fixtures; it panics on failure.
func (r *Repository) MustInsert(ctx context.Context, todo NewTodo) TodoEntity {
	entity, err := r.Insert(ctx, todo)
	if err != nil {
		panic(fmt.Sprintf("todorepo: insert %q: %v", todo.Subject, err))
	}
	return entity
}
