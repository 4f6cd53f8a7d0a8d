package session

import (
	"net/http"

	"github.com/wegnite/storefrontkit/pkg/authz"
)

// Middleware loads the full session and attaches it, together with the
// acting identity, to the request context. Requests without a valid
// session pass through unauthenticated.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.Load(r.Context(), r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := WithSession(r.Context(), sess)
		ctx = authz.SetActorToContext(ctx, sess.Actor())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects requests without a valid session.
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.Load(r.Context(), r)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := WithSession(r.Context(), sess)
		ctx = authz.SetActorToContext(ctx, sess.Actor())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
