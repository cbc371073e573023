// Package pg manages PostgreSQL connections for the repositories in this
// module.
//
// It wraps pgx with connect-time retries, a ping-based health check, goose
// migrations from an fs.FS, and a context-carried transaction that
// repositories pick up through QuerierFrom:
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, todorepo.Migrations, log); err != nil {
//		return err
//	}
//
//	tx, err := pool.Begin(ctx)
//	if err != nil {
//		return err
//	}
//	defer func() { _ = tx.Rollback(ctx) }()
//	if _, err := repo.Insert(pg.WithTx(ctx, tx), todo); err != nil {
//		return err
//	}
//	return tx.Commit(ctx)
//
// Errors are sentinels checked with errors.Is. IsNotFoundError,
// IsDuplicateKeyError, IsForeignKeyViolationError and IsTxClosedError
// classify driver errors.
package pg
