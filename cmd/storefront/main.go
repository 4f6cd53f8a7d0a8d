package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/wegnite/storefrontkit/modules/storefront"
	"github.com/wegnite/storefrontkit/pkg/billing"
	"github.com/wegnite/storefrontkit/pkg/config"
	"github.com/wegnite/storefrontkit/pkg/entitlement"
	"github.com/wegnite/storefrontkit/pkg/httpserver"
	"github.com/wegnite/storefrontkit/pkg/logger"
	"github.com/wegnite/storefrontkit/pkg/pg"
	"github.com/wegnite/storefrontkit/pkg/plan"
	"github.com/wegnite/storefrontkit/pkg/redis"
	"github.com/wegnite/storefrontkit/pkg/routegate"
	"github.com/wegnite/storefrontkit/pkg/session"
)

type appConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	CatalogPath string `env:"PLAN_CATALOG_PATH" envDefault:"plans.yaml"`

	Server     httpserver.Config
	Pg         pg.Config
	Redis      redis.Config
	Session    session.Config
	Gate       routegate.Config
	Paddle     billing.PaddleConfig
	Storefront storefront.Config
}

func main() {
	cfg := config.MustLoad[appConfig]()

	log := logger.New(logger.WithEnvironment(cfg.Environment, "storefront"))
	slog.SetDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("storefront exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg.Pg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := storefront.Migrate(ctx, pool, cfg.Pg, log); err != nil {
		return err
	}

	rdb, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	catalog, err := plan.New(ctx, plan.NewFileSource(cfg.CatalogPath))
	if err != nil {
		return err
	}

	provider, err := billing.NewPaddleProvider(cfg.Paddle)
	if err != nil {
		return err
	}

	store := billing.NewPgStore(pool)
	resolver := entitlement.NewResolver(catalog, store)

	sessions := session.New(cfg.Session,
		session.WithStore(session.NewRedisStore(rdb, "session:")),
		session.WithExistenceProbe(),
	)

	gate, err := routegate.New(cfg.Gate)
	if err != nil {
		return err
	}

	svc := storefront.NewService(cfg.Storefront, catalog, resolver, provider, store, log)

	r := chi.NewRouter()
	r.Use(routegate.Middleware(gate, sessions, cfg.Gate.LocaleCookieName))
	r.Mount("/store", storefront.Router(svc, sessions))

	srv := httpserver.New(cfg.Server,
		httpserver.WithLogger(log),
		httpserver.WithReadiness(pg.Healthcheck(pool), redis.Healthcheck(rdb)),
	)
	return srv.Run(ctx, r)
}
