// Package redis provides helpers for connecting to a Redis server:
// a Connect function that retries until the server is ready, and a
// health-check helper for liveness probes.
//
// Configuration is described by the Config struct whose fields are
// populated from environment variables via github.com/caarlos0/env.
//
// The typical consumer is the session layer, which uses the connected
// client for its Redis-backed session store:
//
//	cfg := config.MustLoad[redis.Config]()
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	sessions := session.New(sessionCfg, session.WithStore(session.NewRedisStore(client)))
//
// Register a health check:
//
//	checker := redis.Healthcheck(client)
//	if err := checker(ctx); err != nil {
//	    // redis is not healthy
//	}
//
// Sentinel errors (e.g. ErrRedisNotReady) wrap the underlying go-redis
// errors with errors.Join for comparison with errors.Is.
package redis
