package db

import (
	"time"
)

// AskRecord is one logged support query with the verdict the engine reached.
type AskRecord struct {
	ID        string    `json:"id"`
	AskedAt   time.Time `json:"asked_at"`
	SessionID string    `json:"session_id,omitempty"`
	Query     string    `json:"query"`
	EntryID   string    `json:"entry_id"`
	Verdict   string    `json:"verdict"` // answered | clarify | fallback
	Score     float64   `json:"score"`
	Refined   bool      `json:"refined"`
}

// InsertAsk logs one answered query.
func (d *DB) InsertAsk(rec AskRecord) error {
	refined := 0
	if rec.Refined {
		refined = 1
	}
	_, err := d.sql.Exec(
		`INSERT INTO ask_log (id, asked_at, session_id, query, entry_id, verdict, score, refined)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.AskedAt.UTC().Format(time.RFC3339), rec.SessionID,
		rec.Query, rec.EntryID, rec.Verdict, rec.Score, refined,
	)
	return err
}

// RecentAsks returns the most recent logged queries, newest first.
func (d *DB) RecentAsks(limit int) ([]AskRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.sql.Query(
		`SELECT id, asked_at, session_id, query, entry_id, verdict, score, refined
		 FROM ask_log ORDER BY asked_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AskRecord, 0, limit)
	for rows.Next() {
		var rec AskRecord
		var askedAt string
		var refined int
		if err := rows.Scan(&rec.ID, &askedAt, &rec.SessionID, &rec.Query,
			&rec.EntryID, &rec.Verdict, &rec.Score, &refined); err != nil {
			return nil, err
		}
		rec.AskedAt, _ = time.Parse(time.RFC3339, askedAt)
		rec.Refined = refined == 1
		out = append(out, rec)
	}
	return out, rows.Err()
}

// RecordFeedback stores whether an answer was marked helpful. Repeat
// submissions for the same ask overwrite the previous vote. Feedback is for
// corpus authors to review; it never feeds back into ranking.
func (d *DB) RecordFeedback(askID string, helpful bool) error {
	h := 0
	if helpful {
		h = 1
	}
	_, err := d.sql.Exec(
		`INSERT INTO feedback (ask_id, helpful, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(ask_id) DO UPDATE SET helpful = excluded.helpful, created_at = excluded.created_at`,
		askID, h, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// FeedbackCounts returns (helpful, notHelpful) tallies per entry id.
func (d *DB) FeedbackCounts() (map[string][2]int, error) {
	rows, err := d.sql.Query(
		`SELECT a.entry_id, f.helpful, COUNT(*)
		 FROM feedback f JOIN ask_log a ON a.id = f.ask_id
		 GROUP BY a.entry_id, f.helpful`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][2]int)
	for rows.Next() {
		var entryID string
		var helpful, count int
		if err := rows.Scan(&entryID, &helpful, &count); err != nil {
			return nil, err
		}
		c := out[entryID]
		if helpful == 1 {
			c[0] += count
		} else {
			c[1] += count
		}
		out[entryID] = c
	}
	return out, rows.Err()
}
