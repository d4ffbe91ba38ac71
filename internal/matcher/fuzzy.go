package matcher

import (
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// similarity scores the approximate match between two normalized strings on a
// 0..100 scale derived from edit distance. Empty input scores zero.
func similarity(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	dist := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptions)
	if dist >= maxLen {
		return 0
	}
	return (maxLen - dist) * 100 / maxLen
}

// safeSimilarity shields the scoring loop from an unexpected panic in one
// similarity computation; the failed signal contributes zero and matching
// continues.
func safeSimilarity(a, b string) (score int) {
	defer func() {
		if r := recover(); r != nil {
			score = 0
		}
	}()
	return similarity(a, b)
}
