package kb

// Corpus is the authored Tapfolio FAQ, loaded once at startup. Keep questions
// phrased the way users actually ask them: the question text is both display
// copy and the strongest matching signal.
var Corpus = []Entry{
	{
		ID:       "what-is-tapfolio",
		Question: "What is Tapfolio?",
		Answer:   "Tapfolio is a digital business card. You get a personal profile page with your links, contact details and a QR code, plus an optional NFC card you can tap on any modern phone to share your profile instantly.",
		Keywords: []string{"tapfolio", "digital", "business", "card"},
		Topic:    TopicNone,
	},
	{
		ID:       "pro-pricing",
		Question: "How much does Tapfolio Pro cost in Ghana?",
		Answer:   "Tapfolio Pro costs GHS 25 per month or GHS 250 per year. The yearly plan works out to two months free. Prices include all Pro features: custom wallpapers, advanced analytics and priority support.",
		Keywords: []string{"price", "pricing", "subscription", "pro", "cost", "ghana", "cedis"},
		Topic:    TopicBilling,
	},
	{
		ID:       "free-vs-pro",
		Question: "What is the difference between Free and Pro?",
		Answer:   "The Free plan includes your profile page, unlimited link edits and a standard QR code. Pro adds custom wallpapers and themes, advanced analytics, removal of Tapfolio branding and priority support.",
		Keywords: []string{"free", "pro", "plan", "plans", "compare", "features"},
		Topic:    TopicBilling,
	},
	{
		ID:       "payment-methods",
		Question: "What payment methods do you accept?",
		Answer:   "We accept MTN Mobile Money, Vodafone Cash, AirtelTigo Money and Visa or Mastercard. Subscriptions renew automatically until cancelled.",
		Keywords: []string{"payment", "momo", "mobile", "money", "visa", "mastercard", "billing"},
		Topic:    TopicBilling,
	},
	{
		ID:       "cancel-subscription",
		Question: "How do I cancel my Pro subscription?",
		Answer:   "Go to Settings > Billing and tap Cancel subscription. Your Pro features stay active until the end of the period you already paid for, and you won't be charged again. Cancelling does not delete your profile.",
		Keywords: []string{"cancel", "cancellation", "subscription", "unsubscribe", "stop", "billing"},
		Topic:    TopicBilling,
	},
	{
		ID:       "refund-policy",
		Question: "Can I get a refund?",
		Answer:   "Monthly subscriptions are not refunded once a billing period has started. Yearly subscriptions can be refunded within 14 days of purchase. Card orders are refundable until the card ships. Contact support to request a refund.",
		Keywords: []string{"refund", "refunds", "money", "back", "billing"},
		Topic:    TopicBilling,
	},
	{
		ID:       "add-links",
		Question: "How do I add links to my profile?",
		Answer:   "Open the editor and tap Add link. Paste any URL — social media, WhatsApp, your website or a payment page — give it a title, and drag it into the order you want. Changes go live immediately.",
		Keywords: []string{"link", "links", "add", "social", "whatsapp", "website"},
		Topic:    TopicLinks,
	},
	{
		ID:       "reorder-links",
		Question: "Can I reorder or hide my links?",
		Answer:   "Yes. In the editor, drag links by the handle on the left to reorder them, or use the toggle to hide a link without deleting it. Hidden links keep their click history.",
		Keywords: []string{"link", "links", "reorder", "hide", "drag", "toggle"},
		Topic:    TopicLinks,
	},
	{
		ID:       "qr-download",
		Question: "How do I download my QR code?",
		Answer:   "Open your profile and tap the QR icon, then Download. You get a high-resolution PNG with a transparent background, suitable for print — flyers, posters or the back of your physical card.",
		Keywords: []string{"qr", "code", "download", "png", "print"},
		Topic:    TopicQR,
	},
	{
		ID:       "qr-not-scanning",
		Question: "Why is my QR code not scanning?",
		Answer:   "If your QR code is not scanning, make sure the print is at least 2cm wide with good contrast, and clean the camera lens. Re-download the PNG rather than screenshotting it — compression artifacts are the most common cause.",
		Keywords: []string{"qr", "code", "scan", "scanning", "camera", "troubleshoot"},
		Topic:    TopicQR,
	},
	{
		ID:       "change-theme",
		Question: "How do I change my theme or wallpaper?",
		Answer:   "In the editor, open the Design tab. Pick one of the free themes, or choose a wallpaper and accent color. Your public page updates as soon as you save.",
		Keywords: []string{"theme", "wallpaper", "design", "background", "color"},
		Topic:    TopicDesign,
	},
	{
		ID:       "custom-wallpaper",
		Question: "Can I upload a custom wallpaper?",
		Answer:   "Custom wallpaper uploads are a Pro feature. On the Design tab, tap Upload and pick any image up to 10MB; we generate light and dark variants automatically.",
		Keywords: []string{"wallpaper", "upload", "custom", "image", "design", "pro"},
		Topic:    TopicDesign,
	},
	{
		ID:       "view-analytics",
		Question: "How do I see my profile analytics?",
		Answer:   "Tap Analytics in the bottom bar. The free plan shows total views for the last 7 days; Pro unlocks the full history, per-link clicks, tap locations and export to CSV.",
		Keywords: []string{"analytics", "stats", "views", "clicks", "insights"},
		Topic:    TopicAnalytics,
	},
	{
		ID:       "analytics-meaning",
		Question: "What do views and taps mean in analytics?",
		Answer:   "A view is counted every time someone opens your profile page. A tap is counted when your NFC card or QR code was the source of that view. Repeat visits from the same device within an hour count once.",
		Keywords: []string{"analytics", "views", "taps", "stats", "counting"},
		Topic:    TopicAnalytics,
	},
	{
		ID:       "order-card",
		Question: "How do I order a physical NFC card?",
		Answer:   "Go to Shop > NFC Card, choose a design (matte black, bamboo or custom print) and check out. Cards are linked to your profile before shipping, so they work out of the box.",
		Keywords: []string{"order", "card", "nfc", "physical", "buy", "shop"},
		Topic:    TopicOrders,
	},
	{
		ID:       "shipping-time",
		Question: "How long does card delivery take in Ghana?",
		Answer:   "Delivery within Accra takes 1-2 working days. Everywhere else in Ghana is 3-5 working days via our courier partner. You'll get an SMS when your card is out for delivery.",
		Keywords: []string{"shipping", "delivery", "ghana", "accra", "courier", "card", "order"},
		Topic:    TopicOrders,
	},
	{
		ID:       "track-order",
		Question: "How do I track my card order?",
		Answer:   "Open Shop > My orders. Each order shows its status — printing, shipped or out for delivery — and the courier tracking code once it ships.",
		Keywords: []string{"track", "tracking", "order", "status", "card", "delivery"},
		Topic:    TopicOrders,
	},
	{
		ID:       "card-not-working",
		Question: "Why is my NFC card not working when I tap it?",
		Answer:   "If your card is not working, make sure the phone has NFC enabled and touch the card to the top half of the phone's back for a full second. Thick cases can block the signal. If it still fails, contact support for a replacement.",
		Keywords: []string{"nfc", "card", "tap", "working", "troubleshoot", "replacement"},
		Topic:    TopicOrders,
	},
	{
		ID:       "change-username",
		Question: "How do I change my username or profile URL?",
		Answer:   "Go to Settings > Username. Your profile lives at tapfolio.me/yourname; changing the username changes the URL immediately and the old one is released for others to claim, so update any printed QR codes.",
		Keywords: []string{"username", "url", "profile", "handle", "rename"},
		Topic:    TopicProfile,
	},
	{
		ID:       "edit-profile",
		Question: "How do I edit my profile details?",
		Answer:   "Tap Edit profile to change your name, job title, company, photo and bio. Everything saves as you type and is live on your public page right away.",
		Keywords: []string{"edit", "profile", "name", "photo", "bio", "details"},
		Topic:    TopicProfile,
	},
	{
		ID:       "delete-account",
		Question: "How do I delete my account?",
		Answer:   "Go to Settings > Account > Delete account. This permanently removes your profile, analytics and any unshipped card orders within 30 days. Active subscriptions are cancelled automatically.",
		Keywords: []string{"delete", "account", "remove", "deactivate", "privacy"},
		Topic:    TopicProfile,
	},
	{
		ID:       "contact-support",
		Question: "How do I contact Tapfolio support?",
		Answer:   "Email support@tapfolio.me or use the chat bubble in the app. We reply within one working day; Pro subscribers get priority. For card order issues, include your order number.",
		Keywords: []string{"support", "contact", "help", "email", "chat"},
		Topic:    TopicSupport,
	},
}

// Routes is the hard-routing table applied before scoring. Keep it short:
// each rule is a deliberate override for an intent that pure lexical scoring
// is known to misrank.
var Routes = []RouteRule{
	// "what is tapfolio" collides with every entry mentioning the product
	// name; route the bare product question to the overview entry.
	{Pattern: `^what(?:'?s| is)\s+(?:a |the )?tapfolio[\s?!.]*$`, EntryID: "what-is-tapfolio"},
	// Users asking for a human should never get ranked FAQ answers.
	{Pattern: `\b(?:talk|speak|chat)\s+(?:to|with)\s+(?:a\s+|an\s+)?(?:human|person|agent|someone|support)\b`, EntryID: "contact-support"},
	// "how do I cancel" phrasing collides with billing entries that merely
	// mention cancellation.
	{Pattern: `\bhow\s+(?:do|can)\s+i\s+(?:cancel|unsubscribe)\b`, EntryID: "cancel-subscription"},
}
