package routegate

import (
	"context"
	"net/http"
)

// Prober answers the cheap "does this request look signed in" question.
// session.Manager satisfies it; the gate never needs a full session load.
type Prober interface {
	Probe(ctx context.Context, r *http.Request) bool
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(ctx context.Context, r *http.Request) bool

// Probe implements Prober.
func (f ProberFunc) Probe(ctx context.Context, r *http.Request) bool { return f(ctx, r) }

// Middleware runs the gate in front of next. Redirect decisions short-
// circuit with 302; rewrite decisions swap the request path before
// calling next. The locale cookie is read with the configured name.
func Middleware(gate *Gate, prober Prober, localeCookie string) func(http.Handler) http.Handler {
	if gate == nil {
		panic("routegate: gate is required")
	}
	if prober == nil {
		panic("routegate: prober is required")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req := Request{
				Path:       r.URL.RequestURI(),
				HasSession: prober.Probe(r.Context(), r),
			}
			if localeCookie != "" {
				if c, err := r.Cookie(localeCookie); err == nil {
					req.PreferredLocale = c.Value
				}
			}

			decision := gate.Decide(req)
			if decision.IsRedirect() {
				http.Redirect(w, r, decision.Redirect, http.StatusFound)
				return
			}
			if decision.Rewrite != "" {
				rewritten := r.Clone(r.Context())
				path, query := splitQuery(decision.Rewrite)
				rewritten.URL.Path = path
				rewritten.URL.RawQuery = query
				next.ServeHTTP(w, rewritten)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
