// Package routegate is an edge filter that decides, before any handler
// runs, whether a request passes through, gets rewritten or gets
// redirected. It understands locale path prefixes ("/en/settings" is the
// route "/settings"), keeps signed-in visitors off auth-only pages and
// keeps signed-out visitors off protected pages, preserving the original
// destination in a callback query parameter.
//
// The gate works on a cheap boolean session signal and never touches the
// session store itself, which keeps it safe to run in front of every
// request:
//
//	gate, err := routegate.New(routegate.Config{
//		ProtectedRoutes: []string{"/settings(/.*)?", "/dashboard(/.*)?"},
//		AuthOnlyRoutes:  []string{"/auth(/.*)?"},
//		DefaultLocale:   "en",
//		Locales:         []string{"en", "de", "ja"},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mux := chi.NewRouter()
//	mux.Use(routegate.Middleware(gate, sessionManager, "preferred_locale"))
//
// Decisions can also be made directly, without a server:
//
//	d := gate.Decide(routegate.Request{Path: "/en/settings/billing"})
//	// d.Redirect == "/auth/login?callbackUrl=%2Fsettings%2Fbilling"
package routegate
