package db

import (
	"encoding/json"
	"strconv"

	"tapfolio/internal/config"
)

// LoadConfig reads settings from SQLite. Missing keys keep their defaults,
// so new fields are picked up without a migration.
func (d *DB) LoadConfig() *config.Config {
	cfg := config.Default()

	rows, err := d.sql.Query("SELECT key, value FROM settings")
	if err != nil {
		return cfg
	}
	defer rows.Close()

	m := make(map[string]string)
	for rows.Next() {
		var k, v string
		rows.Scan(&k, &v)
		m[k] = v
	}
	if len(m) == 0 {
		return cfg
	}

	if v, ok := m["widget_title"]; ok {
		cfg.WidgetTitle = v
	}
	if v, ok := m["refine_enabled"]; ok {
		cfg.RefineEnabled, _ = strconv.ParseBool(v)
	}
	if v, ok := m["refine_model"]; ok {
		cfg.RefineModel = v
	}
	if v, ok := m["refine_score_ceiling"]; ok {
		cfg.RefineScoreCeiling, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := m["history_limit"]; ok {
		cfg.HistoryLimit, _ = strconv.Atoi(v)
	}
	if v, ok := m["thresholds"]; ok {
		json.Unmarshal([]byte(v), &cfg.Thresholds)
	}
	return cfg
}

// SaveConfig writes all settings to SQLite.
func (d *DB) SaveConfig(cfg *config.Config) error {
	thresholds, err := json.Marshal(cfg.Thresholds)
	if err != nil {
		return err
	}
	kv := map[string]string{
		"widget_title":         cfg.WidgetTitle,
		"refine_enabled":       strconv.FormatBool(cfg.RefineEnabled),
		"refine_model":         cfg.RefineModel,
		"refine_score_ceiling": strconv.FormatFloat(cfg.RefineScoreCeiling, 'f', -1, 64),
		"history_limit":        strconv.Itoa(cfg.HistoryLimit),
		"thresholds":           string(thresholds),
	}

	tx, err := d.sql.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	for k, v := range kv {
		if _, err := tx.Exec(
			"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			k, v,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}
