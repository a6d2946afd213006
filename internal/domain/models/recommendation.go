package models

import "time"

// Outcome classifies the result of a trend analysis.
type Outcome string

const (
	OutcomeRising           Outcome = "rising"
	OutcomeNoTrend          Outcome = "no_trend"
	OutcomeInsufficientData Outcome = "insufficient_data"
)

// Confidence grades the strength of a rising signal.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceNone   Confidence = "none"
)

// Action kinds for SuggestedAction.
const (
	ActionDelayWindow = "delay_window"
	ActionBestTimes   = "best_times"
)

// SuggestedAction tells the caller when to publish. For a rising trend it is
// a relative delay window; otherwise it is the platform's fallback time list.
// The caller converts the delay into an absolute timestamp using its own clock.
type SuggestedAction struct {
	Kind      string        `json:"kind"` // "delay_window" or "best_times"
	DelayMin  time.Duration `json:"delayMin,omitempty"`
	DelayMax  time.Duration `json:"delayMax,omitempty"`
	BestTimes []string      `json:"bestTimes,omitempty"` // "HH:MM", most preferred first
}

// Recommendation is the engine's output for one series and platform.
type Recommendation struct {
	Outcome         Outcome         `json:"outcome"`
	Reason          string          `json:"reason"`
	Confidence      Confidence      `json:"confidence"`
	SuggestedAction SuggestedAction `json:"suggestedAction"`
	LastValue       float64         `json:"lastValue"`
}

// BatchRecommendation is the result of a batch analysis. Errors is keyed by
// item index; valid items still produce events when others fail validation.
type BatchRecommendation struct {
	Events []*ScheduleEvent `json:"events"`
	Errors map[int]string   `json:"errors,omitempty"`
}

// ScheduleEvent wraps a Recommendation for publication to downstream
// consumers. ID and GeneratedAt are assigned by the orchestration layer;
// the engine itself never reads the clock.
type ScheduleEvent struct {
	ID             string         `json:"id"`
	Platform       string         `json:"platform"`
	Keyword        string         `json:"keyword,omitempty"`
	GeneratedAt    time.Time      `json:"generatedAt"`
	Recommendation Recommendation `json:"recommendation"`
}
