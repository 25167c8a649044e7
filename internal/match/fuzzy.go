package match

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// substringScore is awarded when one term contains the other outright.
// Well under any sane threshold, so prefixes like "manga" still match
// "Mangalore" the way the old search box did.
const substringScore = 0.1

// minSubstringLen guards against two-letter fragments matching everything.
const minSubstringLen = 3

// fuzzy returns the best-scoring candidate at or under the threshold.
// Scores are normalized edit distance (0 exact, 1 nothing shared). Ties
// keep the earlier candidate; dataset order is not a ranking signal, just
// a stable tie-break.
func (r *Resolver) fuzzy(term string) (string, bool) {
	best := ""
	bestScore := r.threshold
	found := false

	for _, cand := range r.canonical {
		s := score(term, strings.ToLower(cand))
		if s < bestScore || (!found && s == bestScore) {
			best = cand
			bestScore = s
			found = true
		}
	}

	return best, found
}

func score(term, cand string) float64 {
	if term == cand {
		return 0
	}

	longer := len([]rune(term))
	if l := len([]rune(cand)); l > longer {
		longer = l
	}
	if longer == 0 {
		return 1
	}

	s := float64(levenshtein.ComputeDistance(term, cand)) / float64(longer)

	if len(term) >= minSubstringLen && len(cand) >= minSubstringLen &&
		(strings.Contains(cand, term) || strings.Contains(term, cand)) &&
		s > substringScore {
		s = substringScore
	}

	return s
}
