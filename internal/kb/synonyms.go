package kb

// synonyms is a small domain thesaurus mapping query vocabulary to corpus
// vocabulary. Free-text queries rarely reuse the exact words of the authored
// questions; expansion recovers recall without semantic search.
var synonyms = map[string][]string{
	"price":        {"pricing", "cost", "fee", "fees", "charge", "charges", "rate"},
	"pricing":      {"price", "cost", "plan"},
	"cost":         {"price", "pricing", "fee", "fees"},
	"costs":        {"price", "pricing", "fee"},
	"pay":          {"payment", "pricing", "billing"},
	"paid":         {"pro", "subscription", "plan"},
	"money":        {"payment", "refund", "pricing"},
	"upgrade":      {"pro", "subscription", "plan"},
	"subscription": {"plan", "billing", "pro"},
	"plan":         {"subscription", "pricing", "pro"},
	"cancel":       {"cancellation", "unsubscribe", "stop"},
	"unsubscribe":  {"cancel", "cancellation"},
	"refund":       {"refunds", "refunded", "back"},
	"buy":          {"order", "purchase", "upgrade"},
	"purchase":     {"order", "buy"},
	"order":        {"card", "purchase", "delivery"},
	"ship":         {"shipping", "delivery", "deliver"},
	"shipping":     {"delivery", "deliver", "courier"},
	"delivery":     {"shipping", "deliver", "courier"},
	"arrive":       {"delivery", "shipping"},
	"track":        {"tracking", "order", "delivery"},
	"qr":           {"code", "scan"},
	"scan":         {"qr", "code", "tap"},
	"scanning":     {"qr", "scan"},
	"nfc":          {"card", "tap"},
	"tap":          {"nfc", "card", "scan"},
	"theme":        {"design", "wallpaper", "background", "style"},
	"themes":       {"theme", "design", "wallpaper"},
	"wallpaper":    {"theme", "background", "design"},
	"background":   {"wallpaper", "theme", "design"},
	"color":        {"theme", "design"},
	"colors":       {"theme", "design"},
	"link":         {"links", "url"},
	"links":        {"link", "url"},
	"url":          {"link", "username", "address"},
	"username":     {"url", "handle", "name"},
	"handle":       {"username", "url"},
	"stats":        {"analytics", "views", "visits"},
	"statistics":   {"analytics", "stats"},
	"analytics":    {"stats", "views", "insights"},
	"views":        {"analytics", "stats", "visitors"},
	"visitors":     {"views", "analytics"},
	"photo":        {"picture", "image", "avatar"},
	"picture":      {"photo", "image", "avatar"},
	"image":        {"photo", "picture"},
	"edit":         {"change", "update"},
	"change":       {"edit", "update"},
	"update":       {"edit", "change"},
	"remove":       {"delete", "hide"},
	"delete":       {"remove", "deactivate"},
	"help":         {"support", "contact"},
	"support":      {"help", "contact"},
	"contact":      {"support", "help", "email"},
	"broken":       {"working", "problem", "issue"},
	"problem":      {"issue", "working", "broken"},
	"issue":        {"problem", "working"},
	"ghana":        {"accra", "delivery", "shipping"},
	"accra":        {"ghana", "delivery"},
}

// Expand appends thesaurus matches for each token. The returned slice is a
// superset of the input; duplicates are allowed and contribute to scoring.
func Expand(tokens []string) []string {
	out := make([]string, 0, len(tokens)*2)
	out = append(out, tokens...)
	for _, t := range tokens {
		out = append(out, synonyms[t]...)
	}
	return out
}
