package kb

import (
	"regexp"
	"strings"
)

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9\s]+`)

// stopwords are generic query words that would otherwise dilute every
// document's score equally (articles, pronouns, auxiliaries, question words).
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"i": {}, "me": {}, "my": {}, "mine": {},
	"we": {}, "us": {}, "our": {},
	"you": {}, "your": {}, "yours": {},
	"it": {}, "its": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"they": {}, "them": {}, "their": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {}, "am": {},
	"do": {}, "does": {}, "did": {}, "doing": {},
	"have": {}, "has": {}, "had": {},
	"can": {}, "could": {}, "will": {}, "would": {}, "should": {}, "shall": {}, "may": {}, "might": {},
	"what": {}, "how": {}, "why": {}, "when": {}, "where": {}, "who": {}, "which": {},
	"to": {}, "of": {}, "in": {}, "on": {}, "at": {}, "for": {}, "from": {}, "with": {}, "by": {},
	"and": {}, "or": {}, "but": {}, "if": {}, "so": {}, "as": {},
	"there": {}, "here": {}, "then": {}, "than": {},
	"please": {}, "get": {}, "about": {},
}

// Tokenize lowercases text, strips everything outside [a-z0-9 ], splits on
// whitespace and drops stopwords. Pure and deterministic.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	cleaned := nonAlnumRe.ReplaceAllString(lowered, " ")
	fields := strings.Fields(cleaned)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, skip := stopwords[f]; skip {
			continue
		}
		out = append(out, f)
	}
	return out
}
