package kb

import (
	"sort"
	"strings"
)

const (
	clarifyAnswer  = "I found a few topics that could match — which one did you mean?"
	fallbackAnswer = "I couldn't find a good answer for that. Could you pick a topic below, or rephrase your question?"
)

// fallbackOptions are the broad category labels offered when nothing matched.
var fallbackOptions = []string{
	"Plans and pricing",
	"Card orders and delivery",
	"Your profile and links",
}

type scoredCandidate struct {
	index int
	score float64
}

func normalizeRaw(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Deliberate answers a free-text query. It never returns an error: malformed
// or empty input tokenizes to nothing, scores every entry at zero and lands
// in the no-match fallback. Deterministic for identical input.
func (e *Engine) Deliberate(query string) Result {
	raw := normalizeRaw(query)

	// Hard-routed intents short-circuit scoring entirely.
	if i, ok := e.route(raw); ok {
		return Result{
			ID:      e.entries[i].ID,
			Answer:  e.entries[i].Answer,
			Score:   1,
			Related: e.relatedInOrder(i),
		}
	}

	literal := Tokenize(query)
	expanded := Expand(literal)[len(literal):]
	ranked := make([]scoredCandidate, len(e.entries))
	for i := range e.entries {
		ranked[i] = scoredCandidate{index: i, score: e.score(literal, expanded, raw, i)}
	}
	// Stable sort keeps corpus order for ties, which keeps results
	// deterministic.
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	top := ranked[0]
	if top.score < e.th.NoMatchFloor {
		return Result{
			ID:                 FallbackID,
			Answer:             fallbackAnswer,
			Score:              top.score,
			Related:            []Suggestion{},
			NeedsClarification: true,
			ClarifyOptions:     append([]string(nil), fallbackOptions...),
		}
	}

	ambiguous := top.score < e.th.WeakFloor
	if !ambiguous && len(ranked) > 1 {
		second := ranked[1]
		gap := top.score - second.score
		if gap < e.th.AmbiguityGap && e.differentTopics(top.index, second.index) {
			ambiguous = true
		}
	}

	if ambiguous {
		options := make([]string, 0, e.th.MaxClarify)
		for _, c := range ranked {
			if len(options) >= e.th.MaxClarify {
				break
			}
			options = append(options, e.entries[c.index].Question)
		}
		return Result{
			ID:                 e.entries[top.index].ID,
			Answer:             clarifyAnswer,
			Score:              top.score,
			Related:            e.relatedFromRanked(ranked[len(options):]),
			NeedsClarification: true,
			ClarifyOptions:     options,
		}
	}

	res := Result{
		ID:      e.entries[top.index].ID,
		Answer:  e.entries[top.index].Answer,
		Score:   top.score,
		Related: e.relatedFromRanked(ranked[1:]),
	}
	if top.score < e.th.DidYouMeanCeiling {
		if q, sim := e.closestQuestion(raw); sim >= e.th.DidYouMeanFloor && q != e.entries[top.index].Question {
			res.DidYouMean = q
		}
	}
	return res
}

// differentTopics reports whether two entries carry distinct non-matching
// topic tags. Untagged entries share the empty topic and never count as
// different.
func (e *Engine) differentTopics(a, b int) bool {
	return e.entries[a].Topic != e.entries[b].Topic
}

// relatedFromRanked turns the next-best candidates into related suggestions.
// rest is sorted by score; entries with no lexical overlap at all never
// surface as suggestions.
func (e *Engine) relatedFromRanked(rest []scoredCandidate) []Suggestion {
	out := make([]Suggestion, 0, e.th.MaxRelated)
	for _, c := range rest {
		if len(out) >= e.th.MaxRelated || c.score <= 0 {
			break
		}
		entry := e.entries[c.index]
		out = append(out, Suggestion{ID: entry.ID, Question: entry.Question})
	}
	return out
}

// relatedInOrder builds related suggestions from the remaining corpus in
// authoring order, used on the hard-routed path where nothing was scored.
func (e *Engine) relatedInOrder(winner int) []Suggestion {
	out := make([]Suggestion, 0, e.th.MaxRelated)
	for i, entry := range e.entries {
		if i == winner {
			continue
		}
		if len(out) >= e.th.MaxRelated {
			break
		}
		out = append(out, Suggestion{ID: entry.ID, Question: entry.Question})
	}
	return out
}
