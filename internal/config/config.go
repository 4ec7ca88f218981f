package config

import (
	"fmt"

	"tapfolio/internal/kb"
)

// Config holds service settings (in-memory representation).
// Persistence is handled by the internal/db package.
type Config struct {
	// WidgetTitle is shown in the chat widget header.
	WidgetTitle string `json:"widget_title"`

	// Refinement of weak local answers by the external LLM service.
	// Hard-routed answers score exactly 1; keeping the ceiling at 1 keeps
	// them out of the refiner.
	RefineEnabled      bool    `json:"refine_enabled"`
	RefineModel        string  `json:"refine_model"`
	RefineScoreCeiling float64 `json:"refine_score_ceiling"` // refine only when the local score is below this

	// HistoryLimit caps the rows returned by the ask-history endpoint.
	HistoryLimit int `json:"history_limit"`

	// Thresholds tune the FAQ engine's disambiguation behavior.
	Thresholds kb.Thresholds `json:"thresholds"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		WidgetTitle:        "Tapfolio Help",
		RefineEnabled:      true,
		RefineModel:        "gpt-4o-mini",
		RefineScoreCeiling: 1.0,
		HistoryLimit:       50,
		Thresholds:         kb.DefaultThresholds(),
	}
}

// Validate checks the config for values that would break the engine or the API.
func (c *Config) Validate() error {
	if c.WidgetTitle == "" {
		return fmt.Errorf("widget_title must not be empty")
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be positive")
	}
	if c.RefineScoreCeiling < 0 {
		return fmt.Errorf("refine_score_ceiling must not be negative")
	}
	t := c.Thresholds
	if t.NoMatchFloor <= 0 {
		return fmt.Errorf("thresholds: no_match_floor must be positive")
	}
	if t.WeakFloor < t.NoMatchFloor {
		return fmt.Errorf("thresholds: weak_floor must not be below no_match_floor")
	}
	if t.AmbiguityGap < 0 {
		return fmt.Errorf("thresholds: ambiguity_gap must not be negative")
	}
	if t.DidYouMeanFloor < 0 || t.DidYouMeanFloor > 1 {
		return fmt.Errorf("thresholds: did_you_mean_floor must be in [0, 1]")
	}
	if t.MaxRelated < 0 || t.MaxClarify <= 0 {
		return fmt.Errorf("thresholds: max_related must not be negative and max_clarify must be positive")
	}
	return nil
}
