package todorepo

import (
	"context"
	"embed"
	"io/fs"

	"github.com/dmitrymomot/outputtracker/integration/database/pg"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrations returns the schema migrations for the todos table, rooted so
// that pg.Migrate finds the SQL files at the top level.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// DbAccess is the lowest level of the repository: it persists one entity.
// Everything above it runs unchanged in the nulled variant.
type DbAccess interface {
	InsertTodo(ctx context.Context, todo TodoEntity) error
}

const insertTodoQuery = `INSERT INTO todos (id, subject, created_at) VALUES ($1, $2, $3)`

type pgAccess struct {
	db pg.Querier
}

// NewPgAccess returns a DbAccess that writes to the todos table through db,
// or through the transaction carried by the context when there is one.
func NewPgAccess(db pg.Querier) DbAccess {
	return &pgAccess{db: db}
}

func (a *pgAccess) InsertTodo(ctx context.Context, todo TodoEntity) error {
	_, err := pg.QuerierFrom(ctx, a.db).Exec(ctx, insertTodoQuery, todo.ID, todo.Subject, todo.CreatedAt)
	return err
}

type nulledAccess struct {
	insertErr error
}

func (a *nulledAccess) InsertTodo(context.Context, TodoEntity) error {
	return a.insertErr
}
