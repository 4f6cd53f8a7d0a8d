package session

import "time"

// Config holds session manager configuration.
type Config struct {
	CookieName    string        `env:"SESSION_COOKIE_NAME" envDefault:"storefront_session"`
	Secret        string        `env:"SESSION_SECRET,required"`
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	SecureCookies bool          `env:"SESSION_SECURE_COOKIES" envDefault:"true"`

	// CleanupInterval controls the memory store janitor when no explicit
	// store is configured.
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
}
