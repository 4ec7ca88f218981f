package kb

// route checks the hard-routing table against the normalized query and
// returns the target entry index. These overrides exist for a handful of very
// common intents where generic lexical scoring collides with unrelated
// entries; the table is validated at NewEngine and should stay auditable.
func (e *Engine) route(rawLower string) (int, bool) {
	for _, r := range e.routes {
		if r.re.MatchString(rawLower) {
			return e.byID[r.entryID], true
		}
	}
	return 0, false
}
