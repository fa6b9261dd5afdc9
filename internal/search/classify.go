package search

import "strings"

// escapeIndicators are backslash sequences that only make sense in a regular
// expression, never in a literal filename.
var escapeIndicators = []string{`\d`, `\w`, `\s`, `\.`, `\^`, `\$`}

// Classify infers the mode a query most likely intends. The inference is
// best-effort: filenames can legitimately contain pattern metacharacters, so
// the rules are ordered to minimize false positives in both directions.
// Fuzzy matching is never inferred; it is opt-in only.
func Classify(query string) Mode {
	if looksLikeRegex(query) {
		return ModeRegex
	}
	if looksLikeGlob(query) {
		return ModeGlob
	}
	return ModeSubstring
}

func looksLikeRegex(query string) bool {
	if strings.Contains(query, `\`) {
		for _, ind := range escapeIndicators {
			if strings.Contains(query, ind) {
				return true
			}
		}
	}

	if strings.HasPrefix(query, "^") || strings.HasSuffix(query, "$") {
		return true
	}

	if strings.Contains(query, "[") && strings.Contains(query, "]") {
		return true
	}

	// Brace quantifiers like {2,4} need a digit; plain braces show up in
	// ordinary filenames.
	if strings.Contains(query, "{") && strings.Contains(query, "}") &&
		strings.ContainsFunc(query, func(r rune) bool { return r >= '0' && r <= '9' }) {
		return true
	}

	if strings.Contains(query, "|") {
		return true
	}

	if strings.Contains(query, "(") && strings.Contains(query, ")") {
		return true
	}

	// A leading + is a plausible filename; one anywhere else reads as a
	// quantifier.
	if runes := []rune(query); len(runes) > 1 && strings.ContainsRune(string(runes[1:]), '+') {
		return true
	}

	return false
}

func looksLikeGlob(query string) bool {
	if !strings.ContainsAny(query, "*?") {
		return false
	}
	return !strings.ContainsAny(query, `[(\|`)
}
