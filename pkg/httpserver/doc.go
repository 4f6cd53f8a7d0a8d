// Package httpserver serves the storefront HTTP surface: graceful
// shutdown around the application router, env-driven timeouts, and a
// built-in health endpoint fed by dependency readiness checks.
//
// The server answers Config.HealthPath itself, before the application
// handler, so probes stay accurate no matter what is mounted. With no
// checks registered the endpoint is a liveness probe; WithReadiness
// turns it into a readiness probe over the storefront's dependencies.
//
//	r := chi.NewRouter()
//	r.Mount("/store", storefront.Router(svc, sessions))
//
//	srv := httpserver.New(cfg.Server,
//		httpserver.WithLogger(log),
//		httpserver.WithReadiness(pg.Healthcheck(pool), redis.Healthcheck(rdb)),
//	)
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("storefront stopped", logger.Error(err))
//	}
//
// Run blocks until the context is cancelled, an interrupt/TERM signal
// arrives, or the listener fails; failures are wrapped with ErrServe
// and ErrShutdown for errors.Is inspection. cmd/storefront is the
// canonical composition of this package with the rest of the toolkit.
package httpserver
