package storefront

import (
	"context"
	"embed"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wegnite/storefrontkit/pkg/pg"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies the storefront schema (payments and subscriptions
// tables) from the migrations embedded in the binary.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg pg.Config, log *slog.Logger) error {
	return pg.MigrateFS(ctx, pool, cfg, log, migrationsFS, "migrations")
}
