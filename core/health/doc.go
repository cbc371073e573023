// Package health runs dependency checks before a process starts using them.
//
// Checks follow the func(context.Context) error signature returned by
// pg.Healthcheck and redis.Healthcheck:
//
//	if err := health.Readiness(ctx, log,
//		pg.Healthcheck(pool),
//		redis.Healthcheck(client),
//	); err != nil {
//		return err
//	}
package health
