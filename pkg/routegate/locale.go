package routegate

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// LocaleSet knows which locale prefixes the site serves. Prefixes are
// matched case-insensitively against the first path segment, so both
// "/en/pricing" and "/en-US/pricing" canonicalize to "/pricing" when
// the set supports them.
type LocaleSet struct {
	supported  map[string]string // lowercase tag -> canonical form
	defaultTag string
}

// NewLocales builds a LocaleSet. Every locale must be a valid BCP 47 tag;
// the default locale must be among the supported ones.
func NewLocales(defaultLocale string, supported ...string) (*LocaleSet, error) {
	if len(supported) == 0 {
		return nil, ErrNoLocales
	}
	set := &LocaleSet{supported: make(map[string]string, len(supported))}
	for _, loc := range supported {
		tag, err := language.Parse(loc)
		if err != nil {
			return nil, errors.Join(ErrInvalidLocale, fmt.Errorf("locale %q: %w", loc, err))
		}
		set.supported[strings.ToLower(loc)] = tag.String()
	}
	def := strings.ToLower(defaultLocale)
	if _, ok := set.supported[def]; !ok {
		return nil, errors.Join(ErrInvalidLocale, fmt.Errorf("default locale %q is not in the supported set", defaultLocale))
	}
	set.defaultTag = def
	return set, nil
}

// Split strips a supported locale prefix from path. It returns the locale
// (lowercase, empty when the path carries none) and the canonical path,
// which always starts with "/".
func (l *LocaleSet) Split(path string) (locale, canonical string) {
	if l == nil || len(path) < 2 || path[0] != '/' {
		return "", path
	}
	rest := path[1:]
	seg := rest
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		seg = rest[:i]
	}
	key := strings.ToLower(seg)
	if _, ok := l.supported[key]; !ok {
		return "", path
	}
	canonical = path[1+len(seg):]
	if canonical == "" {
		canonical = "/"
	}
	return key, canonical
}

// Supports reports whether the given locale is in the set.
func (l *LocaleSet) Supports(locale string) bool {
	if l == nil {
		return false
	}
	_, ok := l.supported[strings.ToLower(locale)]
	return ok
}

// Default returns the default locale in lowercase form.
func (l *LocaleSet) Default() string {
	if l == nil {
		return ""
	}
	return l.defaultTag
}
