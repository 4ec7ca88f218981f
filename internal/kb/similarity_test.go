package kb

import "testing"

func TestDiceSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "night", b: "night", want: 1},
		{name: "empty left", a: "", b: "night", want: 0},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "single char has no bigrams", a: "x", b: "night", want: 0},
		{name: "classic night/nacht", a: "night", b: "nacht", want: 0.25},
		{name: "disjoint", a: "abcd", b: "wxyz", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := diceSimilarity(tc.a, tc.b); got != tc.want {
				t.Errorf("diceSimilarity(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestDiceSimilarity_Bounded(t *testing.T) {
	pairs := [][2]string{
		{"how do i cancel", "How do I cancel my Pro subscription?"},
		{"qr", "Why is my QR code not scanning?"},
		{"totally unrelated words", "What is Tapfolio?"},
	}
	for _, p := range pairs {
		got := diceSimilarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("diceSimilarity(%q, %q) = %v, out of [0, 1]", p[0], p[1], got)
		}
	}
}

func TestClosestQuestion(t *testing.T) {
	e := shippedEngine(t)
	q, sim := e.closestQuestion("why is my qr code not scaning?")
	if q != "Why is my QR code not scanning?" {
		t.Errorf("closest question = %q", q)
	}
	if sim < 0.5 {
		t.Errorf("similarity = %v, want a near-match", sim)
	}
}
