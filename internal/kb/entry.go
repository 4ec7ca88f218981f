package kb

// Topic is a coarse subject tag attached to an entry at authoring time.
// It is used only by the disambiguator to decide whether two close-scoring
// candidates are about unrelated things; it never contributes to scoring.
type Topic string

const (
	TopicNone      Topic = ""
	TopicBilling   Topic = "billing"
	TopicLinks     Topic = "links"
	TopicQR        Topic = "qr"
	TopicDesign    Topic = "design"
	TopicAnalytics Topic = "analytics"
	TopicOrders    Topic = "orders"
	TopicProfile   Topic = "profile"
	TopicSupport   Topic = "support"
)

// Entry is one authored question/answer pair in the knowledge base.
type Entry struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords,omitempty"`
	Topic    Topic    `json:"topic,omitempty"`
}

// RouteRule maps a regex pattern directly to an entry, bypassing scoring.
// Rules are data so they get validated and tested like ordinary entries;
// the table is meant to stay short.
type RouteRule struct {
	Pattern string `json:"pattern"`
	EntryID string `json:"entry_id"`
}

// Suggestion is an alternative entry offered alongside an answer.
type Suggestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
}

// Result is the outcome of one Deliberate call.
type Result struct {
	ID                 string       `json:"id"`
	Answer             string       `json:"answer"`
	Score              float64      `json:"score"`
	Related            []Suggestion `json:"related"`
	DidYouMean         string       `json:"did_you_mean,omitempty"`
	NeedsClarification bool         `json:"needs_clarification,omitempty"`
	ClarifyOptions     []string     `json:"clarify_options,omitempty"`
}

// FallbackID is the Result.ID used when no entry matched the query.
const FallbackID = "fallback"

// Thresholds holds the tuning knobs of the disambiguator. The exact values
// are calibrated against the shipped corpus; the shape of the decision
// (small gap across topics => ask, very low score => fallback) is what matters.
type Thresholds struct {
	// NoMatchFloor is the top score below which the query is treated as
	// having no lexical match at all.
	NoMatchFloor float64 `json:"no_match_floor"`
	// WeakFloor is the top score below which we ask for clarification even
	// without a close runner-up.
	WeakFloor float64 `json:"weak_floor"`
	// AmbiguityGap is the top-vs-second score gap under which two candidates
	// on different topics trigger a clarification prompt.
	AmbiguityGap float64 `json:"ambiguity_gap"`
	// DidYouMeanFloor is the minimum bigram similarity for a suggestion.
	DidYouMeanFloor float64 `json:"did_you_mean_floor"`
	// DidYouMeanCeiling is the confident score above which no suggestion is
	// attached.
	DidYouMeanCeiling float64 `json:"did_you_mean_ceiling"`
	MaxRelated        int     `json:"max_related"`
	MaxClarify        int     `json:"max_clarify"`
}

// DefaultThresholds returns the tuning used in production.
func DefaultThresholds() Thresholds {
	// Raw scores are unbounded above; against the shipped corpus a genuine
	// match lands between roughly 1.5 and 6, and a single shared common
	// token around 0.5 to 1.2.
	return Thresholds{
		NoMatchFloor:      0.35,
		WeakFloor:         0.9,
		AmbiguityGap:      0.25,
		DidYouMeanFloor:   0.22,
		DidYouMeanCeiling: 1.5,
		MaxRelated:        3,
		MaxClarify:        3,
	}
}
