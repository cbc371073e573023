// Package todorepo is a small to-do repository built as a nullable: the same
// Repository runs against PostgreSQL in production and against an in-memory
// stand-in in tests, and reports every inserted entity to output trackers.
//
// Tests create the nulled variant, activate a tracker and assert on what the
// repository would have written:
//
//	repo := todorepo.NewNulled()
//	todos, err := repo.TrackTodos()
//	if err != nil {
//		t.Fatal(err)
//	}
//	_, err = repo.Insert(ctx, todorepo.NewTodo{Subject: "remember the milk"})
//	written, err := todos.Output()
//
// The repository emits on a non-threadsafe subject and is meant to be used
// from one goroutine. The schema ships as embedded goose migrations in
// Migrations and is applied with pg.Migrate.
package todorepo
