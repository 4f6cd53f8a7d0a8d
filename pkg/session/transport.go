package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"
)

// tokenBytes is the entropy of a session token before encoding.
const tokenBytes = 32

// sigBytes is the truncated HMAC-SHA256 length appended to the cookie
// value. 8 bytes keeps cookies small while making forgery infeasible.
const sigBytes = 8

// CookieTransport transmits session tokens as signed cookies. The
// signature lets the edge probe reject forged or corrupted cookies
// without any store access.
type CookieTransport struct {
	name   string
	secret []byte
	secure bool
}

// NewCookieTransport creates a signed-cookie transport.
func NewCookieTransport(name, secret string, secure bool) *CookieTransport {
	if secret == "" {
		panic(ErrMissingSecret.Error())
	}
	return &CookieTransport{name: name, secret: []byte(secret), secure: secure}
}

// GetToken extracts and verifies the session token from the request
// cookie. Purely computational: no I/O.
func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	cookie, err := r.Cookie(t.name)
	if err != nil {
		return "", ErrSessionNotFound
	}

	token, sig, ok := strings.Cut(cookie.Value, ".")
	if !ok {
		return "", ErrInvalidToken
	}
	if !hmac.Equal([]byte(sig), []byte(t.sign(token))) {
		return "", ErrInvalidToken
	}
	return token, nil
}

// SetToken stores the signed session token in a response cookie.
func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    token + "." + t.sign(token),
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode, // CSRF protection
	})
}

// ClearToken removes the session cookie.
func (t *CookieTransport) ClearToken(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (t *CookieTransport) sign(token string) string {
	h := hmac.New(sha256.New, t.secret)
	h.Write([]byte(token))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil)[:sigBytes])
}

// generateToken returns a cryptographically random session token.
func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", ErrTokenGeneration
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
