package api

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tapfolio/internal/config"
	"tapfolio/internal/db"
	"tapfolio/internal/kb"
	"tapfolio/internal/logger"
	"tapfolio/internal/refine"
)

// Server is the HTTP API that connects the answer engine, database, and
// optional LLM refiner behind the support widget.
type Server struct {
	version string
	db      *db.DB
	refiner *refine.Client

	// cfg and engine are replaced together on config updates.
	mu     sync.RWMutex
	cfg    *config.Config
	engine *kb.Engine
}

// NewServer creates a Server with the given config, engine, and database.
// refiner may be nil when no API key is configured.
func NewServer(cfg *config.Config, engine *kb.Engine, database *db.DB, refiner *refine.Client, version string) *Server {
	return &Server{
		version: version,
		cfg:     cfg,
		engine:  engine,
		db:      database,
		refiner: refiner,
	}
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("POST /api/support/ask", s.handleAsk)
	mux.HandleFunc("GET /api/support/entries", s.handleEntries)
	mux.HandleFunc("POST /api/support/feedback", s.handleFeedback)
	mux.HandleFunc("GET /api/support/feedback", s.handleFeedbackSummary)
	mux.HandleFunc("GET /api/support/history", s.handleHistory)
	mux.HandleFunc("GET /api/config", s.handleGetConfig)
	mux.HandleFunc("POST /api/config", s.handleSetConfig)

	return corsMiddleware(mux)
}

func (s *Server) snapshot() (*config.Config, *kb.Engine) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg, s.engine
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	_, engine := s.snapshot()
	writeJSON(w, map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"entries": engine.Size(),
	})
}

type askRequest struct {
	Query     string `json:"query"`
	SessionID string `json:"session_id"`
}

type askResponse struct {
	AskID   string    `json:"ask_id"`
	Verdict string    `json:"verdict"`
	Result  kb.Result `json:"result"`
	Refined string    `json:"refined,omitempty"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeError(w, http.StatusBadRequest, "query must not be empty")
		return
	}

	cfg, engine := s.snapshot()
	res := engine.Deliberate(query)

	verdict := "answered"
	switch {
	case res.ID == kb.FallbackID:
		verdict = "fallback"
	case res.NeedsClarification:
		verdict = "clarify"
	}

	resp := askResponse{
		AskID:   uuid.NewString(),
		Verdict: verdict,
		Result:  res,
	}

	if cfg.RefineEnabled && s.refiner != nil && verdict == "answered" && res.Score < cfg.RefineScoreCeiling {
		refined, err := s.refiner.Refine(r.Context(), query, res, engine.Entries())
		if err != nil {
			logger.Warn("REFINE", "refinement failed: "+err.Error())
		} else {
			resp.Refined = refined
		}
	}

	rec := db.AskRecord{
		ID:        resp.AskID,
		AskedAt:   time.Now().UTC(),
		SessionID: req.SessionID,
		Query:     query,
		EntryID:   res.ID,
		Verdict:   verdict,
		Score:     res.Score,
		Refined:   resp.Refined != "",
	}
	if err := s.db.InsertAsk(rec); err != nil {
		logger.Warn("DB", "ask log insert failed: "+err.Error())
	}

	writeJSON(w, resp)
}

type entryView struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Topic    string `json:"topic"`
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	_, engine := s.snapshot()
	entries := engine.Entries()
	out := make([]entryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryView{
			ID:       e.ID,
			Question: e.Question,
			Answer:   e.Answer,
			Topic:    string(e.Topic),
		})
	}
	writeJSON(w, out)
}

type feedbackRequest struct {
	AskID   string `json:"ask_id"`
	Helpful bool   `json:"helpful"`
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.AskID) == "" {
		writeError(w, http.StatusBadRequest, "ask_id must not be empty")
		return
	}
	if err := s.db.RecordFeedback(req.AskID, req.Helpful); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record feedback")
		return
	}
	writeJSON(w, map[string]string{"status": "recorded"})
}

type feedbackSummary struct {
	EntryID    string `json:"entry_id"`
	Helpful    int    `json:"helpful"`
	NotHelpful int    `json:"not_helpful"`
}

// handleFeedbackSummary reports helpful votes per entry, for corpus authors
// reviewing which answers miss.
func (s *Server) handleFeedbackSummary(w http.ResponseWriter, r *http.Request) {
	counts, err := s.db.FeedbackCounts()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load feedback")
		return
	}
	out := make([]feedbackSummary, 0, len(counts))
	for id, c := range counts {
		out = append(out, feedbackSummary{EntryID: id, Helpful: c[0], NotHelpful: c[1]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntryID < out[j].EntryID })
	writeJSON(w, out)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	cfg, _ := s.snapshot()
	asks, err := s.db.RecentAsks(cfg.HistoryLimit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	writeJSON(w, asks)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, _ := s.snapshot()
	writeJSON(w, cfg)
}

func (s *Server) handleSetConfig(w http.ResponseWriter, r *http.Request) {
	var cfg config.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := cfg.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Threshold changes take effect via a fresh engine over the same corpus.
	engine, err := kb.NewEngine(kb.Corpus, kb.Routes, cfg.Thresholds)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid configuration: "+err.Error())
		return
	}

	if err := s.db.SaveConfig(&cfg); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save config")
		return
	}

	s.mu.Lock()
	s.cfg = &cfg
	s.engine = engine
	s.mu.Unlock()

	logger.Success("CONFIG", "configuration updated")
	writeJSON(w, &cfg)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(204)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
