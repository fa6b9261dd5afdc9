package search

import (
	"fmt"
	"sort"
)

// Index maps a filename to every full path carrying that name. Keys are
// case-folded by the index builder when the active configuration is
// case-insensitive. The engine borrows the index read-only for the duration
// of one call and never mutates it, so concurrent searches over the same
// index are safe.
type Index map[string][]string

// ScoredPath pairs a result path with its fuzzy confidence score.
type ScoredPath struct {
	Path  string
	Score float64
}

// MatchSubstring returns the paths of every filename containing the query,
// sorted lexicographically. An empty query matches every filename.
func MatchSubstring(idx Index, query string, caseSensitive bool) []string {
	m, _ := newMatcher(ModeSubstring, query, caseSensitive)
	return collect(idx, m)
}

// MatchGlob returns the paths of every filename matching the shell-style
// wildcard query, sorted lexicographically. A malformed pattern returns a
// *PatternError before any entry is inspected.
func MatchGlob(idx Index, query string, caseSensitive bool) ([]string, error) {
	m, err := newMatcher(ModeGlob, query, caseSensitive)
	if err != nil {
		return nil, err
	}
	return collect(idx, m), nil
}

// MatchRegex returns the paths of every filename matching the regular
// expression query, sorted lexicographically. A malformed pattern returns a
// *PatternError before any entry is inspected.
func MatchRegex(idx Index, query string, caseSensitive bool) ([]string, error) {
	m, err := newMatcher(ModeRegex, query, caseSensitive)
	if err != nil {
		return nil, err
	}
	return collect(idx, m), nil
}

// MatchFuzzy scores every filename against the query and returns one entry
// per path under each filename with a strictly positive score, ordered by
// descending score with ties broken by ascending path. The tie-break keeps
// output reproducible regardless of map iteration order.
func MatchFuzzy(idx Index, query string, caseSensitive bool) []ScoredPath {
	var results []ScoredPath
	for filename, paths := range idx {
		score := Score(filename, query, caseSensitive)
		if score <= 0.0 {
			continue
		}
		for _, path := range paths {
			results = append(results, ScoredPath{Path: path, Score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Path < results[j].Path
	})

	return results
}

// SearchAuto classifies the query and runs the matcher it implies,
// reporting which mode was used. Classification never selects fuzzy mode.
func SearchAuto(idx Index, query string, caseSensitive bool) ([]string, Mode, error) {
	mode := Classify(query)

	switch mode {
	case ModeGlob:
		paths, err := MatchGlob(idx, query, caseSensitive)
		return paths, mode, err
	case ModeRegex:
		paths, err := MatchRegex(idx, query, caseSensitive)
		return paths, mode, err
	default:
		return MatchSubstring(idx, query, caseSensitive), mode, nil
	}
}

// Search runs an explicitly selected exact-mode matcher. Fuzzy results carry
// scores and go through MatchFuzzy instead.
func Search(idx Index, query string, mode Mode, caseSensitive bool) ([]string, error) {
	switch mode {
	case ModeSubstring:
		return MatchSubstring(idx, query, caseSensitive), nil
	case ModeGlob:
		return MatchGlob(idx, query, caseSensitive)
	case ModeRegex:
		return MatchRegex(idx, query, caseSensitive)
	case ModeFuzzy:
		scored := MatchFuzzy(idx, query, caseSensitive)
		paths := make([]string, 0, len(scored))
		for _, sp := range scored {
			paths = append(paths, sp.Path)
		}
		return paths, nil
	}
	return nil, fmt.Errorf("unknown search mode: %v", mode)
}

// collect applies a compiled matcher to every index entry and returns the
// aggregated paths in a stable lexicographic order, independent of the
// index's internal iteration order.
func collect(idx Index, m *matcher) []string {
	var results []string
	for filename, paths := range idx {
		if m.matches(filename) {
			results = append(results, paths...)
		}
	}
	sort.Strings(results)
	return results
}
