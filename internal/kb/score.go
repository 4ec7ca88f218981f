package kb

import (
	"math"
	"regexp"
)

const (
	keywordBoost  = 0.25 // per query token that exactly matches an entry keyword
	questionBoost = 0.15 // per query token also present in the question text
	answerBoost   = 0.05 // per query token present in the answer text only

	// synonymWeight discounts thesaurus-expanded tokens relative to the
	// words the user actually typed. At full weight a rare synonym can
	// outrank an entry's literal question overlap.
	synonymWeight = 0.5
)

// phraseBoost corrects cases where plain lexical overlap under-ranks an
// intuitively obvious answer: when the raw query matches `query` and the
// entry's full text matches `doc`, `bonus` is added. The table is meant to
// stay short and corpus-specific.
type phraseBoost struct {
	query *regexp.Regexp
	doc   *regexp.Regexp
	bonus float64
}

var phraseBoosts = []phraseBoost{
	{
		query: regexp.MustCompile(`\bcancel(ing|led|lation)?\b`),
		doc:   regexp.MustCompile(`\bcancel`),
		bonus: 0.6,
	},
	{
		query: regexp.MustCompile(`\brefund(s|ed)?\b|\bmoney back\b`),
		doc:   regexp.MustCompile(`\brefund`),
		bonus: 0.5,
	},
	{
		query: regexp.MustCompile(`\bhow much\b|\bprice\b|\bcost\b|\bexpensive\b`),
		doc:   regexp.MustCompile(`\b(price|pricing|cost|costs)\b`),
		bonus: 0.4,
	},
	{
		query: regexp.MustCompile(`\bnot scanning\b|\bwon'?t scan\b|\bcan'?t scan\b`),
		doc:   regexp.MustCompile(`\bnot scan`),
		bonus: 0.5,
	},
	{
		query: regexp.MustCompile(`\bnot (working|tapping)\b|\bbroken\b`),
		doc:   regexp.MustCompile(`\bnot (working|responding)\b`),
		bonus: 0.5,
	},
	{
		query: regexp.MustCompile(`\b(ship|ships|shipping|deliver|delivery|delivered)\b`),
		doc:   regexp.MustCompile(`\b(shipping|delivery)\b`),
		bonus: 0.4,
	},
	{
		query: regexp.MustCompile(`\bdelete\b.*\baccount\b|\baccount\b.*\bdelete\b`),
		doc:   regexp.MustCompile(`\bdelete\b.*\baccount\b`),
		bonus: 0.5,
	},
}

// Score computes the relevance of a query against one entry. Pure function of
// (query, entry, precomputed index); zero means no lexical overlap.
func (e *Engine) Score(query string, id string) float64 {
	i, ok := e.byID[id]
	if !ok {
		return 0
	}
	literal := Tokenize(query)
	expanded := Expand(literal)[len(literal):]
	return e.score(literal, expanded, normalizeRaw(query), i)
}

func (e *Engine) score(literal, expanded []string, rawLower string, i int) float64 {
	doc := &e.docs[i]
	score := 0.0

	// Log-weighted TF-IDF over the blended document text.
	for _, t := range literal {
		tf := doc.tf[t]
		if tf == 0 {
			continue
		}
		score += (1 + math.Log(float64(tf))) * e.idf[t]
	}
	// Expanded tokens score at a discount. Duplicates are intentional: a
	// term reached through several synonyms counts more than once, but a
	// synonym hit always stays below the same hit on a typed word.
	for _, t := range expanded {
		tf := doc.tf[t]
		if tf == 0 {
			continue
		}
		score += synonymWeight * (1 + math.Log(float64(tf))) * e.idf[t]
	}

	// Section-weighted overlap, on distinct typed tokens: literal
	// question-phrase overlap is worth more than answer-text overlap, and
	// exact keyword hits more still.
	for _, t := range uniqueTokens(literal) {
		if _, ok := doc.keywordSet[t]; ok {
			score += keywordBoost
		}
		if _, ok := doc.questionTokens[t]; ok {
			score += questionBoost
		} else if _, ok := doc.answerTokens[t]; ok {
			score += answerBoost
		}
	}

	for _, pb := range phraseBoosts {
		if pb.query.MatchString(rawLower) && pb.doc.MatchString(doc.blob) {
			score += pb.bonus
		}
	}
	return score
}

func uniqueTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
