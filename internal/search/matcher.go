package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PatternError reports a query that failed to compile for the requested
// mode. The original pattern text and the compiler diagnostic are preserved
// so the caller can show both.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// matcher holds a query compiled once for a single search call, so the per
// entry work is a bare comparison. Pattern compilation happens here, before
// any matching, and a bad pattern fails the whole call up front.
type matcher struct {
	mode  Mode
	query string
	glob  string
	re    *regexp.Regexp

	caseSensitive bool
}

func newMatcher(mode Mode, query string, caseSensitive bool) (*matcher, error) {
	m := &matcher{mode: mode, caseSensitive: caseSensitive}

	switch mode {
	case ModeSubstring:
		m.query = fold(query, caseSensitive)
	case ModeGlob:
		// Case policy is applied to the pattern source and each name, not
		// to the compiled pattern.
		m.glob = fold(query, caseSensitive)
		if !doublestar.ValidatePattern(m.glob) {
			return nil, &PatternError{Pattern: query, Err: doublestar.ErrBadPattern}
		}
	case ModeRegex:
		// Case-insensitive matching uses an inline flag, never pre-folded
		// inputs.
		pattern := query
		if !caseSensitive {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, &PatternError{Pattern: query, Err: err}
		}
		m.re = re
	default:
		// Fuzzy matching is scored, not boolean, and never compiles here.
		return nil, fmt.Errorf("mode %v has no compiled matcher", mode)
	}

	return m, nil
}

// matches reports whether a single filename satisfies the compiled query.
// Filenames only; full paths are never inspected.
func (m *matcher) matches(filename string) bool {
	switch m.mode {
	case ModeSubstring:
		return strings.Contains(fold(filename, m.caseSensitive), m.query)
	case ModeGlob:
		return doublestar.MatchUnvalidated(m.glob, fold(filename, m.caseSensitive))
	case ModeRegex:
		return m.re.MatchString(filename)
	}
	return false
}
