// Package pg provides utilities for interacting with PostgreSQL using the
// pgx/v5 driver: connection pooling with retry, goose schema migrations,
// a health check helper and common error classification.
//
// The three building blocks cooperate but stay decoupled:
//
//   - Config – a declarative struct populated from environment variables
//     via github.com/caarlos0/env. It controls pool limits, health-check
//     cadence and migration paths.
//
//   - Connect – opens a *pgxpool.Pool based on Config, retrying with
//     back-off until the database becomes available.
//
//   - Migrate / MigrateFS – run goose migrations against the same pool
//     before the service starts serving traffic. MigrateFS reads from an
//     embedded filesystem so the binary carries its own schema.
//
// # Usage
//
//	cfg := config.MustLoad[pg.Config]()
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    panic(err)
//	}
//	defer pool.Close()
//
//	if err := pg.MigrateFS(ctx, pool, cfg, slog.Default(), migrationsFS, "migrations"); err != nil {
//	    panic(err)
//	}
//
//	health := pg.Healthcheck(pool)
//
// Helpers such as [pg.IsDuplicateKeyError] or [pg.IsNotFoundError] unwrap
// pgx and *pgconn.PgError values so business logic can classify failures
// with a single call.
package pg
