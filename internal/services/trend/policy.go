package trend

import (
	"fmt"
	"time"

	"TrendPost/internal/domain/models"
)

// Policy defaults. The threshold matches the provider's 0-100 interest
// scale, where smoothed gains below 10 are treated as noise.
const (
	DefaultRiseThreshold = 10.0
	DefaultDelayMin      = 2 * time.Hour
	DefaultDelayMax      = 4 * time.Hour
)

// PolicyConfig tunes the decision policy. Zero fields fall back to the
// package defaults.
type PolicyConfig struct {
	RiseThreshold float64
	DelayMin      time.Duration
	DelayMax      time.Duration
}

func (c PolicyConfig) withDefaults() PolicyConfig {
	if c.RiseThreshold <= 0 {
		c.RiseThreshold = DefaultRiseThreshold
	}
	if c.DelayMin <= 0 {
		c.DelayMin = DefaultDelayMin
	}
	if c.DelayMax <= 0 {
		c.DelayMax = DefaultDelayMax
	}
	return c
}

// Decide classifies a Signal into a Recommendation. Pure function of its
// inputs: no clock reads, no randomness. A rising outcome suggests a relative
// delay window; no-trend and insufficient-data leave the action empty for the
// facade to fill from the platform time table.
func Decide(sig Signal, lastValue float64, cfg PolicyConfig) models.Recommendation {
	cfg = cfg.withDefaults()

	if len(sig.Slopes) == 0 {
		return models.Recommendation{
			Outcome:    models.OutcomeInsufficientData,
			Reason:     "not enough data points to detect a trend",
			Confidence: models.ConfidenceNone,
			LastValue:  lastValue,
		}
	}

	maxSlope, maxIdx := 0.0, -1
	for i, s := range sig.Slopes {
		// first occurrence of the maximum wins on ties
		if s > 0 && (maxIdx < 0 || s > maxSlope) {
			maxSlope, maxIdx = s, i
		}
	}
	if maxIdx < 0 {
		return models.Recommendation{
			Outcome:    models.OutcomeNoTrend,
			Reason:     "no rising trend in search interest",
			Confidence: models.ConfidenceNone,
			LastValue:  lastValue,
		}
	}

	// Strict comparison: a slope exactly at the threshold stays medium.
	conf := models.ConfidenceMedium
	if maxSlope > cfg.RiseThreshold {
		conf = models.ConfidenceHigh
	}
	return models.Recommendation{
		Outcome:    models.OutcomeRising,
		Reason:     fmt.Sprintf("search interest is rising (steepest smoothed gain %.2f)", maxSlope),
		Confidence: conf,
		SuggestedAction: models.SuggestedAction{
			Kind:     models.ActionDelayWindow,
			DelayMin: cfg.DelayMin,
			DelayMax: cfg.DelayMax,
		},
		LastValue: lastValue,
	}
}
