package routegate

import (
	"net/url"
	"strings"
)

// Decision is the outcome of routing a single request through the gate.
// At most one of Redirect and Rewrite is set; when both are empty the
// request passes through untouched.
type Decision struct {
	// Redirect is the location to send the client to, when non-empty.
	Redirect string
	// Rewrite is the path the request should be served under, when
	// non-empty. The client-visible URL does not change.
	Rewrite string
}

// IsRedirect reports whether the decision redirects the client.
func (d Decision) IsRedirect() bool { return d.Redirect != "" }

// IsContinue reports whether the request passes through, rewritten or not.
func (d Decision) IsContinue() bool { return d.Redirect == "" }

// Request carries the inputs the gate needs to make a decision. It is
// deliberately decoupled from *http.Request so the gate can be exercised
// without a server.
type Request struct {
	// Path is the request path, optionally with a raw query appended
	// ("/en/settings/billing?tab=invoices").
	Path string
	// HasSession is the cheap session signal, typically the result of a
	// signed-cookie probe. The gate never loads session records itself.
	HasSession bool
	// PreferredLocale is the visitor's cookie-preferred locale, empty
	// when no preference is known.
	PreferredLocale string
}

// Gate decides, per request, whether to pass, rewrite or redirect before
// any application handler runs. All patterns are compiled once in New.
type Gate struct {
	protected     *RouteSet
	authOnly      *RouteSet
	localeRewrite *RouteSet
	locales       *LocaleSet
	loginPath     string
	landingPath   string
	callbackParam string
}

// New builds a Gate from cfg, compiling all route patterns and validating
// the locale set up front.
func New(cfg Config) (*Gate, error) {
	protected, err := CompileRoutes(cfg.ProtectedRoutes...)
	if err != nil {
		return nil, err
	}
	authOnly, err := CompileRoutes(cfg.AuthOnlyRoutes...)
	if err != nil {
		return nil, err
	}
	localeRewrite, err := CompileRoutes(cfg.LocaleRewriteRoutes...)
	if err != nil {
		return nil, err
	}
	locales, err := NewLocales(cfg.DefaultLocale, cfg.Locales...)
	if err != nil {
		return nil, err
	}

	loginPath := cfg.LoginPath
	if loginPath == "" {
		loginPath = "/auth/login"
	}
	landingPath := cfg.LandingPath
	if landingPath == "" {
		landingPath = "/dashboard"
	}
	callbackParam := cfg.CallbackParam
	if callbackParam == "" {
		callbackParam = "callbackUrl"
	}

	return &Gate{
		protected:     protected,
		authOnly:      authOnly,
		localeRewrite: localeRewrite,
		locales:       locales,
		loginPath:     loginPath,
		landingPath:   landingPath,
		callbackParam: callbackParam,
	}, nil
}

// Decide routes a single request. Matching always happens against the
// locale-canonical path: "/en/settings" and "/settings" are the same
// route. Signed-in visitors are bounced off auth-only routes to the
// landing path; signed-out visitors are bounced off protected routes to
// the login path with the original destination preserved in the callback
// query parameter.
func (g *Gate) Decide(req Request) Decision {
	path, query := splitQuery(req.Path)
	locale, canonical := g.locales.Split(path)

	if req.HasSession && g.authOnly.Matches(canonical) {
		return Decision{Redirect: g.landingPath}
	}

	if !req.HasSession && g.protected.Matches(canonical) {
		callback := canonical
		if query != "" {
			callback += "?" + query
		}
		return Decision{Redirect: g.loginPath + "?" + g.callbackParam + "=" + url.QueryEscape(callback)}
	}

	// Locale-less content paths pick up the visitor's preferred locale
	// as a rewrite, so cached locale variants can be served without a
	// client-visible redirect.
	if locale == "" && req.PreferredLocale != "" &&
		g.locales.Supports(req.PreferredLocale) &&
		g.localeRewrite.Matches(canonical) {
		rewrite := "/" + strings.ToLower(req.PreferredLocale) + canonical
		if query != "" {
			rewrite += "?" + query
		}
		return Decision{Rewrite: rewrite}
	}

	return Decision{}
}

func splitQuery(p string) (path, query string) {
	if i := strings.IndexByte(p, '?'); i >= 0 {
		return p[:i], p[i+1:]
	}
	return p, ""
}
