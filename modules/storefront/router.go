package storefront

import (
	"github.com/go-chi/chi/v5"

	"github.com/wegnite/storefrontkit/pkg/session"
)

// Router mounts the storefront module. The webhook endpoint stays outside
// the session middleware: the provider authenticates with a signature,
// not a cookie.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/store", storefront.Router(svc, sessionMgr))
func Router(svc *Service, sessions *session.Manager) chi.Router {
	if svc == nil {
		panic("storefront: service is required")
	}
	if sessions == nil {
		panic("storefront: session manager is required")
	}

	r := chi.NewRouter()

	r.Post("/billing/webhook", svc.handleWebhook)

	r.Group(func(r chi.Router) {
		r.Use(sessions.Middleware)

		r.Get("/entitlement", svc.handleOwnEntitlement)
		r.Get("/users/{userID}/entitlement", svc.handleUserEntitlement)
		r.Post("/billing/checkout", svc.handleCheckout)
		r.Post("/billing/portal", svc.handlePortal)
	})

	return r
}
