// Package redis creates go-redis clients with connect-time retries and a
// ping-based health check.
//
//	client, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL: "redis://localhost:6379/0",
//		RetryAttempts: 3,
//		RetryInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := kvstore.New(client)
//
// Only redis:// and rediss:// URLs are accepted. Failures are reported as
// ErrEmptyConnectionURL, ErrFailedToParseRedisConnString, ErrRedisNotReady
// or ErrHealthcheckFailed, joined with the client error.
package redis
