package kb

import "testing"

func shippedEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(Corpus, Routes, DefaultThresholds())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestScore_ZeroWithoutOverlap(t *testing.T) {
	e := shippedEngine(t)
	if s := e.Score("zxqvbn flurble", "pro-pricing"); s != 0 {
		t.Errorf("score = %v, want 0 for no lexical overlap", s)
	}
}

func TestScore_UnknownEntry(t *testing.T) {
	e := shippedEngine(t)
	if s := e.Score("pricing", "no-such-entry"); s != 0 {
		t.Errorf("score = %v, want 0 for unknown entry", s)
	}
}

func TestScore_NonNegative(t *testing.T) {
	e := shippedEngine(t)
	queries := []string{
		"how much is pro",
		"qr code",
		"the a of",
		"",
		"delete my account please",
	}
	for _, q := range queries {
		for _, entry := range Corpus {
			if s := e.Score(q, entry.ID); s < 0 {
				t.Errorf("Score(%q, %q) = %v, want >= 0", q, entry.ID, s)
			}
		}
	}
}

func TestScore_MonotonicKeywordBoost(t *testing.T) {
	e := shippedEngine(t)
	// "custom" is an authored keyword of the custom-wallpaper entry; adding
	// it to a query must never lower that entry's score.
	base := e.Score("upload wallpaper", "custom-wallpaper")
	boosted := e.Score("upload wallpaper custom", "custom-wallpaper")
	if boosted < base {
		t.Errorf("keyword token lowered score: %v -> %v", base, boosted)
	}
}

func TestScore_QuestionOverlapBeatsAnswerOverlap(t *testing.T) {
	entries := []Entry{
		{ID: "q", Question: "Widget setup?", Answer: "Follow the guide."},
		{ID: "a", Question: "Other thing?", Answer: "Widget setup steps."},
	}
	e, err := NewEngine(entries, nil, DefaultThresholds())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if qs, as := e.Score("widget setup", "q"), e.Score("widget setup", "a"); qs <= as {
		t.Errorf("question overlap %v should outrank answer overlap %v", qs, as)
	}
}

func TestScore_PhraseBoostCancel(t *testing.T) {
	e := shippedEngine(t)
	// "cancel" phrasing must pull the cancellation entry above the pricing
	// entry even though both live in billing vocabulary.
	cancel := e.Score("I want to cancel my subscription", "cancel-subscription")
	pricing := e.Score("I want to cancel my subscription", "pro-pricing")
	if cancel <= pricing {
		t.Errorf("cancel-subscription %v should outrank pro-pricing %v", cancel, pricing)
	}
}

func TestScore_SynonymHitsAreDiscounted(t *testing.T) {
	entries := []Entry{
		{ID: "typed", Question: "Scan problems?", Answer: "Some text."},
		{ID: "expanded", Question: "Qr problems?", Answer: "Some text."},
	}
	e, err := NewEngine(entries, nil, DefaultThresholds())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	typed := e.Score("scan", "typed")
	expanded := e.Score("scan", "expanded")
	if expanded <= 0 {
		t.Fatal("thesaurus expansion should still reach the neighboring entry")
	}
	if typed <= expanded {
		t.Errorf("typed hit %v must outweigh the same hit via synonym %v", typed, expanded)
	}
}

func TestScore_OwnQuestionOutranksSynonymNeighbor(t *testing.T) {
	e := shippedEngine(t)
	// qr-not-scanning picks up extra scan/code weight on this query purely
	// through the thesaurus; the entry's own question must stay on top.
	query := "How do I download my QR code?"
	own := e.Score(query, "qr-download")
	neighbor := e.Score(query, "qr-not-scanning")
	if own <= neighbor {
		t.Errorf("qr-download %v must outrank qr-not-scanning %v for its own question", own, neighbor)
	}
}

func TestScore_SynonymRecall(t *testing.T) {
	e := shippedEngine(t)
	// "upgrade" is nowhere in the corpus text; it reaches pro-pricing only
	// through thesaurus expansion into plan vocabulary.
	if s := e.Score("upgrade", "pro-pricing"); s <= 0 {
		t.Errorf("Score(upgrade, pro-pricing) = %v, want > 0", s)
	}
}
