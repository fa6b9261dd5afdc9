package search

import (
	"strings"
	"unicode/utf8"
)

// Score rates how closely a filename resembles a query, from 0.0 (no
// resemblance) to 1.0 (identical). Scores are always finite and within
// [0, 1], so callers may total-order sort on them.
//
// An exact match scores 1.0. A filename containing the query scores between
// 0.8 and 0.9, closer to 0.9 the less extra content the filename carries.
// Anything else blends edit-distance, subsequence, and bigram similarity;
// blends below 0.3 are treated as non-matches and score 0.0.
func Score(filename, query string, caseSensitive bool) float64 {
	f := fold(filename, caseSensitive)
	q := fold(query, caseSensitive)

	if f == q {
		return 1.0
	}

	if strings.Contains(f, q) {
		fLen := float64(utf8.RuneCountInString(f))
		qLen := float64(utf8.RuneCountInString(q))
		return 0.9 - (fLen-qLen)/fLen*0.1
	}

	combined := 0.4*levenshteinScore(f, q) + 0.4*subsequenceScore(f, q) + 0.2*bigramScore(f, q)
	if combined < 0.3 {
		return 0.0
	}
	return clamp01(combined)
}

// fold applies the case policy. All comparisons in the package fold here.
func fold(s string, caseSensitive bool) string {
	if caseSensitive {
		return s
	}
	return strings.ToLower(s)
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

// levenshteinScore normalizes classic edit distance over codepoints into a
// similarity: 1 - distance/max(len). Two empty strings are identical (1.0);
// exactly one empty string shares nothing (0.0).
func levenshteinScore(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		if len(rb) == 0 {
			return 1.0
		}
		return 0.0
	}
	if len(rb) == 0 {
		return 0.0
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, min(prev[j]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}

	maxLen := max(len(ra), len(rb))
	return 1.0 - float64(prev[len(rb)])/float64(maxLen)
}

// subsequenceScore scans the filename left to right for the query characters
// in order, rewarding consecutive runs. A query that never completes scores
// 0.0; a completed scan blends coverage, completeness, and the longest
// consecutive run.
func subsequenceScore(filename, query string) float64 {
	fr := []rune(filename)
	qr := []rune(query)

	if len(qr) == 0 {
		return 1.0
	}

	var (
		queryIdx       int
		consecutive    int
		maxConsecutive int
		raw            float64
	)

	for _, ch := range fr {
		if queryIdx < len(qr) && ch == qr[queryIdx] {
			queryIdx++
			consecutive++
			if consecutive > maxConsecutive {
				maxConsecutive = consecutive
			}
			raw += 1.0 + float64(consecutive)*0.1
		} else {
			consecutive = 0
		}
	}

	if queryIdx != len(qr) {
		return 0.0
	}

	coverage := raw / float64(len(fr))
	completeness := float64(queryIdx) / float64(len(qr))
	consecutiveness := float64(maxConsecutive) / float64(len(qr))

	return coverage*0.4 + completeness*0.4 + consecutiveness*0.2
}

// bigramScore measures overlap between the sets of 2-character windows of
// both strings, with the larger set as the denominator.
func bigramScore(a, b string) float64 {
	gramsA := bigrams(a)
	gramsB := bigrams(b)

	if len(gramsA) == 0 && len(gramsB) == 0 {
		return 1.0
	}
	if len(gramsA) == 0 || len(gramsB) == 0 {
		return 0.0
	}

	common := 0
	for gram := range gramsA {
		if _, ok := gramsB[gram]; ok {
			common++
		}
	}

	return float64(common) / float64(max(len(gramsA), len(gramsB)))
}

// bigrams returns the set of length-2 windows of s. Strings shorter than two
// codepoints contribute themselves as a single gram.
func bigrams(s string) map[string]struct{} {
	runes := []rune(s)
	grams := make(map[string]struct{})
	if len(runes) < 2 {
		grams[s] = struct{}{}
		return grams
	}
	for i := 0; i+2 <= len(runes); i++ {
		grams[string(runes[i:i+2])] = struct{}{}
	}
	return grams
}
