package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tapfolio/internal/config"
	"tapfolio/internal/db"
	"tapfolio/internal/kb"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.RefineEnabled = false
	engine, err := kb.NewEngine(kb.Corpus, kb.Routes, cfg.Thresholds)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewServer(cfg, engine, database, nil, "test")
}

func postJSON(t *testing.T, h http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestStatus(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	req := httptest.NewRequest("GET", "/api/status", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status code = %d, want 200", rec.Code)
	}
	var body struct {
		Status  string `json:"status"`
		Version string `json:"version"`
		Entries int    `json:"entries"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("status = %q, want ok", body.Status)
	}
	if body.Entries != len(kb.Corpus) {
		t.Errorf("entries = %d, want %d", body.Entries, len(kb.Corpus))
	}
}

func TestAsk_Answered(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	rec := postJSON(t, h, "/api/support/ask", askRequest{Query: "How do I download my QR code?"})
	if rec.Code != 200 {
		t.Fatalf("status code = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp askResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.AskID == "" {
		t.Error("ask_id is empty")
	}
	if resp.Verdict != "answered" {
		t.Errorf("verdict = %q, want answered", resp.Verdict)
	}
	if resp.Result.ID != "qr-download" {
		t.Errorf("entry = %q, want qr-download", resp.Result.ID)
	}
}

func TestAsk_EmptyQuery(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	rec := postJSON(t, h, "/api/support/ask", askRequest{Query: "   "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want 400", rec.Code)
	}
}

func TestAsk_Fallback(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	rec := postJSON(t, h, "/api/support/ask", askRequest{Query: "zxqvbn flurble grommit"})
	if rec.Code != 200 {
		t.Fatalf("status code = %d, want 200", rec.Code)
	}
	var resp askResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Verdict != "fallback" {
		t.Errorf("verdict = %q, want fallback", resp.Verdict)
	}
	if resp.Result.ID != kb.FallbackID {
		t.Errorf("entry = %q, want %q", resp.Result.ID, kb.FallbackID)
	}
}

func TestAsk_LoggedToHistory(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	postJSON(t, h, "/api/support/ask", askRequest{Query: "How much does Pro cost?", SessionID: "sess-1"})

	req := httptest.NewRequest("GET", "/api/support/history", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Fatalf("history status code = %d, want 200", rec.Code)
	}
	var asks []db.AskRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &asks); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(asks) != 1 {
		t.Fatalf("history length = %d, want 1", len(asks))
	}
	if asks[0].Query != "How much does Pro cost?" {
		t.Errorf("query = %q", asks[0].Query)
	}
	if asks[0].SessionID != "sess-1" {
		t.Errorf("session = %q, want sess-1", asks[0].SessionID)
	}
}

func TestEntries(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	req := httptest.NewRequest("GET", "/api/support/entries", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var entries []entryView
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != len(kb.Corpus) {
		t.Fatalf("entries = %d, want %d", len(entries), len(kb.Corpus))
	}
	for _, e := range entries {
		if e.ID == "" || e.Question == "" || e.Answer == "" {
			t.Errorf("incomplete entry: %+v", e)
		}
	}
}

func TestFeedback(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	ask := postJSON(t, h, "/api/support/ask", askRequest{Query: "How do I add a link?"})
	var resp askResponse
	if err := json.Unmarshal(ask.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode ask: %v", err)
	}

	rec := postJSON(t, h, "/api/support/feedback", feedbackRequest{AskID: resp.AskID, Helpful: true})
	if rec.Code != 200 {
		t.Fatalf("feedback status code = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	rec = postJSON(t, h, "/api/support/feedback", feedbackRequest{AskID: ""})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty ask_id status code = %d, want 400", rec.Code)
	}

	req := httptest.NewRequest("GET", "/api/support/feedback", nil)
	sum := httptest.NewRecorder()
	h.ServeHTTP(sum, req)
	var summary []feedbackSummary
	if err := json.Unmarshal(sum.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if len(summary) != 1 || summary[0].EntryID != "add-links" || summary[0].Helpful != 1 {
		t.Errorf("summary = %+v, want one helpful vote for add-links", summary)
	}
}

func TestConfig_UpdateSwapsEngine(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	cfg := config.Default()
	cfg.WidgetTitle = "Support"
	cfg.Thresholds.NoMatchFloor = 0.15

	rec := postJSON(t, h, "/api/config", cfg)
	if rec.Code != 200 {
		t.Fatalf("status code = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest("GET", "/api/config", nil)
	get := httptest.NewRecorder()
	h.ServeHTTP(get, req)
	var got config.Config
	if err := json.Unmarshal(get.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.WidgetTitle != "Support" {
		t.Errorf("widget_title = %q, want Support", got.WidgetTitle)
	}
	if got.Thresholds.NoMatchFloor != 0.15 {
		t.Errorf("no_match_floor = %v, want 0.15", got.Thresholds.NoMatchFloor)
	}
}

func TestConfig_RejectsInvalid(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	cfg := config.Default()
	cfg.HistoryLimit = 0
	rec := postJSON(t, h, "/api/config", cfg)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want 400", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	req := httptest.NewRequest("OPTIONS", "/api/support/ask", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != 204 {
		t.Fatalf("preflight status code = %d, want 204", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS allow-origin header")
	}
}
