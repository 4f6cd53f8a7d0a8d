// Package storefrontkit is a toolkit for multi-tenant SaaS storefronts:
// plan catalogs, payment-provider integration and entitlement resolution
// behind a small, composable API.
//
// The toolkit is organised as independent packages that compose into a
// storefront:
//
//   - pkg/plan – the static price plan catalog (free, recurring and
//     lifetime plans keyed by provider price IDs)
//   - pkg/billing – provider integration (Paddle), webhook ingestion and
//     the local payment/subscription record store
//   - pkg/entitlement – merges payments, subscriptions and the catalog
//     into one authoritative entitlement per user, with a client-side
//     single-flight cache
//   - pkg/authz – the self-or-admin action guard
//   - pkg/session – cookie sessions with a cheap edge probe and a full
//     store-backed load as separate code paths
//   - pkg/routegate – the edge filter: locale-aware route matching,
//     login redirects with callback preservation, locale rewrites
//   - modules/storefront – wires everything into a mountable chi module
//
// Supporting packages (pkg/config, pkg/logger, pkg/pg, pkg/redis,
// pkg/httpserver) cover environment configuration, structured logging,
// storage and serving. cmd/storefront composes all of them into a
// runnable storefront API server.
//
// Minimal wiring:
//
//	catalog, _ := plan.New(ctx, plan.NewFileSource("plans.yml"))
//	provider, _ := billing.NewPaddleProvider(paddleCfg)
//	store := billing.NewPgStore(pool)
//	resolver := entitlement.NewResolver(catalog, store)
//	sessions := session.New(sessionCfg)
//
//	svc := storefront.NewService(cfg, catalog, resolver, provider, store, log)
//
//	r := chi.NewRouter()
//	r.Mount("/store", storefront.Router(svc, sessions))
package storefrontkit
