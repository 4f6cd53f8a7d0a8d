// Package billing provides payment provider integration and the local
// payment/subscription record store backing entitlement resolution.
//
// The billing provider (Paddle) handles checkout and subscription
// lifecycle through hosted pages; the storefront core never processes
// payments itself. Webhook deliveries are verified and normalized by the
// Provider, then applied to a Store by the Ingestor. Entitlement reads
// always go against the local Store, never the provider API, keeping
// request-time resolution to a constant number of local queries.
//
// # Wiring
//
//	provider, err := billing.NewPaddleProvider(cfg)
//	store := billing.NewPgStore(pool)
//	ingestor := billing.NewIngestor(provider, store, log)
//
//	// in the webhook HTTP handler:
//	err = ingestor.HandleWebhook(ctx, payload, r.Header.Get("Paddle-Signature"))
//
// Records are read-only to the rest of the system: the provider is the
// source of truth and the local tables are a webhook-maintained replica.
package billing
