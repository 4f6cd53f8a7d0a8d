package routegate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wegnite/storefrontkit/pkg/routegate"
)

func newTestGate(t *testing.T) *routegate.Gate {
	t.Helper()
	gate, err := routegate.New(routegate.Config{
		ProtectedRoutes:     []string{"/settings(/.*)?", "/dashboard(/.*)?"},
		AuthOnlyRoutes:      []string{"/auth(/.*)?"},
		LocaleRewriteRoutes: []string{"/docs(/.*)?"},
		DefaultLocale:       "en",
		Locales:             []string{"en", "de", "ja"},
	})
	require.NoError(t, err)
	return gate
}

func TestGateDecide(t *testing.T) {
	t.Parallel()

	gate := newTestGate(t)

	t.Run("public path passes through", func(t *testing.T) {
		t.Parallel()

		d := gate.Decide(routegate.Request{Path: "/pricing"})
		assert.True(t, d.IsContinue())
		assert.Empty(t, d.Rewrite)
	})

	t.Run("protected path without session redirects to login", func(t *testing.T) {
		t.Parallel()

		d := gate.Decide(routegate.Request{Path: "/settings/billing"})
		assert.Equal(t, "/auth/login?callbackUrl=%2Fsettings%2Fbilling", d.Redirect)
	})

	t.Run("locale prefix is stripped before matching", func(t *testing.T) {
		t.Parallel()

		d := gate.Decide(routegate.Request{Path: "/en/settings/billing"})
		require.True(t, d.IsRedirect())
		assert.Equal(t, "/auth/login?callbackUrl=%2Fsettings%2Fbilling", d.Redirect)
	})

	t.Run("query survives in the callback", func(t *testing.T) {
		t.Parallel()

		d := gate.Decide(routegate.Request{Path: "/de/settings/billing?tab=invoices"})
		assert.Equal(t, "/auth/login?callbackUrl=%2Fsettings%2Fbilling%3Ftab%3Dinvoices", d.Redirect)
	})

	t.Run("protected path with session passes through", func(t *testing.T) {
		t.Parallel()

		d := gate.Decide(routegate.Request{Path: "/settings/billing", HasSession: true})
		assert.True(t, d.IsContinue())
	})

	t.Run("auth-only path with session bounces to landing", func(t *testing.T) {
		t.Parallel()

		d := gate.Decide(routegate.Request{Path: "/auth/login", HasSession: true})
		assert.Equal(t, "/dashboard", d.Redirect)
	})

	t.Run("auth-only path without session passes through", func(t *testing.T) {
		t.Parallel()

		d := gate.Decide(routegate.Request{Path: "/auth/login"})
		assert.True(t, d.IsContinue())
	})

	t.Run("anchored patterns refuse prefix matches", func(t *testing.T) {
		t.Parallel()

		d := gate.Decide(routegate.Request{Path: "/settings-export"})
		assert.True(t, d.IsContinue())
	})

	t.Run("bare locale path is the root route", func(t *testing.T) {
		t.Parallel()

		d := gate.Decide(routegate.Request{Path: "/ja"})
		assert.True(t, d.IsContinue())
	})

	t.Run("unsupported locale segment is a plain path", func(t *testing.T) {
		t.Parallel()

		d := gate.Decide(routegate.Request{Path: "/fr/settings"})
		assert.True(t, d.IsContinue())
	})
}

func TestGateLocaleRewrite(t *testing.T) {
	t.Parallel()

	gate := newTestGate(t)

	t.Run("locale-less doc path picks up preferred locale", func(t *testing.T) {
		t.Parallel()

		d := gate.Decide(routegate.Request{Path: "/docs/webhooks", PreferredLocale: "de"})
		assert.Equal(t, "/de/docs/webhooks", d.Rewrite)
		assert.True(t, d.IsContinue())
	})

	t.Run("query is kept through the rewrite", func(t *testing.T) {
		t.Parallel()

		d := gate.Decide(routegate.Request{Path: "/docs/webhooks?version=2", PreferredLocale: "ja"})
		assert.Equal(t, "/ja/docs/webhooks?version=2", d.Rewrite)
	})

	t.Run("already localized doc path is left alone", func(t *testing.T) {
		t.Parallel()

		d := gate.Decide(routegate.Request{Path: "/de/docs/webhooks", PreferredLocale: "ja"})
		assert.Empty(t, d.Rewrite)
	})

	t.Run("unsupported preference is ignored", func(t *testing.T) {
		t.Parallel()

		d := gate.Decide(routegate.Request{Path: "/docs/webhooks", PreferredLocale: "fr"})
		assert.Empty(t, d.Rewrite)
	})

	t.Run("non-doc paths are never rewritten", func(t *testing.T) {
		t.Parallel()

		d := gate.Decide(routegate.Request{Path: "/pricing", PreferredLocale: "de"})
		assert.Empty(t, d.Rewrite)
	})
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	t.Run("rejects broken route patterns", func(t *testing.T) {
		t.Parallel()

		_, err := routegate.New(routegate.Config{
			ProtectedRoutes: []string{"/settings(/.*"},
			DefaultLocale:   "en",
			Locales:         []string{"en"},
		})
		require.ErrorIs(t, err, routegate.ErrInvalidRoutePattern)
	})

	t.Run("rejects invalid locale tags", func(t *testing.T) {
		t.Parallel()

		_, err := routegate.New(routegate.Config{
			DefaultLocale: "en",
			Locales:       []string{"en", "not a locale"},
		})
		require.ErrorIs(t, err, routegate.ErrInvalidLocale)
	})

	t.Run("rejects default outside the supported set", func(t *testing.T) {
		t.Parallel()

		_, err := routegate.New(routegate.Config{
			DefaultLocale: "fr",
			Locales:       []string{"en", "de"},
		})
		require.ErrorIs(t, err, routegate.ErrInvalidLocale)
	})

	t.Run("requires at least one locale", func(t *testing.T) {
		t.Parallel()

		_, err := routegate.New(routegate.Config{DefaultLocale: "en"})
		require.ErrorIs(t, err, routegate.ErrNoLocales)
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	gate := newTestGate(t)

	signedOut := routegate.ProberFunc(func(context.Context, *http.Request) bool { return false })
	signedIn := routegate.ProberFunc(func(context.Context, *http.Request) bool { return true })

	echoPath := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path)) //nolint:errcheck
	})

	t.Run("redirects signed-out visitors off protected routes", func(t *testing.T) {
		t.Parallel()

		handler := routegate.Middleware(gate, signedOut, "")(echoPath)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/en/settings/billing", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/auth/login?callbackUrl=%2Fsettings%2Fbilling", rec.Header().Get("Location"))
	})

	t.Run("bounces signed-in visitors off auth pages", func(t *testing.T) {
		t.Parallel()

		handler := routegate.Middleware(gate, signedIn, "")(echoPath)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/login", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	})

	t.Run("rewrites doc paths from the locale cookie", func(t *testing.T) {
		t.Parallel()

		handler := routegate.Middleware(gate, signedOut, "preferred_locale")(echoPath)
		req := httptest.NewRequest(http.MethodGet, "/docs/webhooks", nil)
		req.AddCookie(&http.Cookie{Name: "preferred_locale", Value: "de"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/de/docs/webhooks", rec.Body.String())
	})

	t.Run("passes everything else straight through", func(t *testing.T) {
		t.Parallel()

		handler := routegate.Middleware(gate, signedOut, "")(echoPath)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pricing", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/pricing", rec.Body.String())
	})
}
