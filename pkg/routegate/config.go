package routegate

// Config holds the edge filter settings loaded from environment variables.
type Config struct {
	ProtectedRoutes     []string `env:"ROUTEGATE_PROTECTED_ROUTES" envSeparator:","`
	AuthOnlyRoutes      []string `env:"ROUTEGATE_AUTH_ONLY_ROUTES" envSeparator:","`
	LocaleRewriteRoutes []string `env:"ROUTEGATE_LOCALE_REWRITE_ROUTES" envSeparator:","`
	LoginPath           string   `env:"ROUTEGATE_LOGIN_PATH" envDefault:"/auth/login"`
	LandingPath         string   `env:"ROUTEGATE_LANDING_PATH" envDefault:"/dashboard"`
	CallbackParam       string   `env:"ROUTEGATE_CALLBACK_PARAM" envDefault:"callbackUrl"`
	DefaultLocale       string   `env:"ROUTEGATE_DEFAULT_LOCALE" envDefault:"en"`
	Locales             []string `env:"ROUTEGATE_LOCALES" envSeparator:"," envDefault:"en"`
	LocaleCookieName    string   `env:"ROUTEGATE_LOCALE_COOKIE" envDefault:"preferred_locale"`
}
