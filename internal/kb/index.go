package kb

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// docIndex holds the precomputed lexical view of one entry.
type docIndex struct {
	tf             map[string]int      // blended question+answer+keywords term frequency
	questionTokens map[string]struct{} // tokens of the question alone
	answerTokens   map[string]struct{} // tokens of the answer alone
	keywordSet     map[string]struct{} // normalized keyword tokens
	blob           string              // lowercased full text, for phrase boosts
}

// Engine answers free-text queries against a fixed corpus. Build it once with
// NewEngine and share it freely: all state is read-only after construction, so
// concurrent Deliberate calls need no locking.
type Engine struct {
	entries []Entry
	docs    []docIndex
	idf     map[string]float64
	byID    map[string]int
	routes  []compiledRoute
	th      Thresholds
}

type compiledRoute struct {
	re      *regexp.Regexp
	entryID string
}

// NewEngine validates the corpus and routing rules, builds the document index
// and corpus statistics, and returns a ready engine. Validation failures are
// authoring errors and should be treated as fatal at startup.
func NewEngine(entries []Entry, routes []RouteRule, th Thresholds) (*Engine, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("kb: corpus is empty")
	}
	byID := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("kb: entry %d has empty id", i)
		}
		if _, dup := byID[e.ID]; dup {
			return nil, fmt.Errorf("kb: duplicate entry id %q", e.ID)
		}
		if strings.TrimSpace(e.Question) == "" {
			return nil, fmt.Errorf("kb: entry %q has empty question", e.ID)
		}
		if strings.TrimSpace(e.Answer) == "" {
			return nil, fmt.Errorf("kb: entry %q has empty answer", e.ID)
		}
		byID[e.ID] = i
	}

	compiled := make([]compiledRoute, 0, len(routes))
	for _, r := range routes {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("kb: route pattern %q: %w", r.Pattern, err)
		}
		if _, ok := byID[r.EntryID]; !ok {
			return nil, fmt.Errorf("kb: route targets unknown entry %q", r.EntryID)
		}
		compiled = append(compiled, compiledRoute{re: re, entryID: r.EntryID})
	}

	docs, idf := buildIndex(entries)
	return &Engine{
		entries: entries,
		docs:    docs,
		idf:     idf,
		byID:    byID,
		routes:  compiled,
		th:      th,
	}, nil
}

// buildIndex computes per-document term frequencies and corpus-wide IDF
// weights. Called exactly once per engine.
func buildIndex(entries []Entry) ([]docIndex, map[string]float64) {
	n := len(entries)
	docs := make([]docIndex, n)
	df := make(map[string]int, 256)

	for i, e := range entries {
		blended := e.Question + " " + e.Answer + " " + strings.Join(e.Keywords, " ")
		tf := make(map[string]int, 32)
		for _, tok := range Tokenize(blended) {
			tf[tok]++
		}
		for tok := range tf {
			df[tok]++
		}

		doc := docIndex{
			tf:             tf,
			questionTokens: tokenSet(Tokenize(e.Question)),
			answerTokens:   tokenSet(Tokenize(e.Answer)),
			keywordSet:     tokenSet(Tokenize(strings.Join(e.Keywords, " "))),
			blob:           strings.ToLower(blended),
		}
		docs[i] = doc
	}

	// Smoothed IDF: always >= 0, never divides by zero even for terms
	// present in every document.
	idf := make(map[string]float64, len(df))
	for tok, d := range df {
		idf[tok] = math.Log(1 + float64(n)/float64(1+d))
	}
	return docs, idf
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// Entries returns the corpus in authoring order.
func (e *Engine) Entries() []Entry {
	return e.entries
}

// Size returns the number of entries in the corpus.
func (e *Engine) Size() int {
	return len(e.entries)
}

// IDF returns the inverse-document-frequency weight of a token, or 0 for
// tokens absent from the corpus.
func (e *Engine) IDF(token string) float64 {
	return e.idf[token]
}
