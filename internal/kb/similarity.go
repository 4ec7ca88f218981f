package kb

import "strings"

// bigrams returns the set of character bigrams of s.
func bigrams(s string) map[string]struct{} {
	set := make(map[string]struct{}, len(s))
	for i := 0; i+2 <= len(s); i++ {
		set[s[i:i+2]] = struct{}{}
	}
	return set
}

// diceSimilarity is the Sorensen-Dice coefficient over character bigram sets,
// in [0, 1].
func diceSimilarity(a, b string) float64 {
	ba := bigrams(a)
	bb := bigrams(b)
	if len(ba) == 0 || len(bb) == 0 {
		return 0
	}
	inter := 0
	for g := range ba {
		if _, ok := bb[g]; ok {
			inter++
		}
	}
	return 2 * float64(inter) / float64(len(ba)+len(bb))
}

// closestQuestion returns the corpus question most similar to the raw query
// by character bigrams, with its similarity. Used only to annotate weak
// results with a "did you mean" suggestion; it never overrides the primary
// ranking.
func (e *Engine) closestQuestion(rawQuery string) (string, float64) {
	q := strings.ToLower(strings.TrimSpace(rawQuery))
	best := ""
	bestSim := 0.0
	for _, entry := range e.entries {
		sim := diceSimilarity(q, strings.ToLower(entry.Question))
		if sim > bestSim {
			best = entry.Question
			bestSim = sim
		}
	}
	return best, bestSim
}
