package routegate

import (
	"errors"
	"fmt"
	"regexp"
)

// RouteSet holds a list of compiled route patterns. Patterns are anchored
// at both ends so "/settings" never matches "/settings-export"; use an
// explicit suffix group like "/settings(/.*)?" to cover sub-paths.
type RouteSet struct {
	patterns []*regexp.Regexp
}

// CompileRoutes compiles the given patterns once. Call it at startup and
// reuse the set for every request.
func CompileRoutes(patterns ...string) (*RouteSet, error) {
	set := &RouteSet{patterns: make([]*regexp.Regexp, 0, len(patterns))}
	for _, p := range patterns {
		re, err := regexp.Compile("^(?:" + p + ")$")
		if err != nil {
			return nil, errors.Join(ErrInvalidRoutePattern, fmt.Errorf("pattern %q: %w", p, err))
		}
		set.patterns = append(set.patterns, re)
	}
	return set, nil
}

// Matches reports whether path matches any pattern in the set.
// The path must already be locale-canonical.
func (s *RouteSet) Matches(path string) bool {
	if s == nil {
		return false
	}
	for _, re := range s.patterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
