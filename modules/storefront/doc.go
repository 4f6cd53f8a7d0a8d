// Package storefront wires the plan catalog, entitlement resolver,
// billing provider and session layer into one mountable HTTP module.
//
// The module exposes a small JSON API:
//
//	GET  /entitlement                    current user's entitlement
//	GET  /users/{userID}/entitlement     subject's entitlement (self or admin)
//	POST /billing/checkout               hosted checkout link for a catalog price
//	POST /billing/portal                 customer portal link for a live subscription
//	POST /billing/webhook                provider webhook intake (signature-authenticated)
//
// Every response uses the Result envelope; errors map onto a stable
// code + status taxonomy, and upstream provider failures surface as an
// opaque 502 while the detail goes to the log.
//
// Wiring:
//
//	svc := storefront.NewService(cfg, catalog, resolver, provider, store, log)
//
//	r := chi.NewRouter()
//	r.Mount("/store", storefront.Router(svc, sessionMgr))
package storefront
