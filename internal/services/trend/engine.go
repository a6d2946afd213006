package trend

import (
	"time"

	"TrendPost/internal/domain/models"
)

// Config is the engine's immutable tuning, injected at construction. Zero
// fields take the package defaults so an empty Config is usable.
type Config struct {
	Window            int
	RiseThreshold     float64
	DelayMin          time.Duration
	DelayMax          time.Duration
	BestTimeOverrides map[string][]string
}

// Engine is the scheduling facade: normalize → analyze → decide, with the
// platform time table merged in when no actionable trend exists. Stateless
// and safe for concurrent use; identical inputs produce identical output.
type Engine struct {
	window int
	policy PolicyConfig
	table  TimeTable
}

// NewEngine builds an engine from config.
func NewEngine(cfg Config) *Engine {
	window := cfg.Window
	if window < 1 {
		window = DefaultWindow
	}
	return &Engine{
		window: window,
		policy: PolicyConfig{
			RiseThreshold: cfg.RiseThreshold,
			DelayMin:      cfg.DelayMin,
			DelayMax:      cfg.DelayMax,
		}.withDefaults(),
		table: NewTimeTable(cfg.BestTimeOverrides),
	}
}

// TimeTable exposes the engine's platform time table.
func (e *Engine) TimeTable() TimeTable { return e.table }

// Window returns the configured moving-average window.
func (e *Engine) Window() int { return e.window }

// Recommend runs the full pipeline for one raw series and platform. window
// overrides the configured moving-average window when > 0. The only error is
// a ValidationError from normalization; insufficient data and a flat or
// falling trend are regular outcomes.
func (e *Engine) Recommend(raw map[string]any, platform string, window int) (models.Recommendation, error) {
	if window < 1 {
		window = e.window
	}

	series, err := Normalize(raw)
	if err != nil {
		return models.Recommendation{}, err
	}

	rec := Decide(Analyze(series, window), series.Last(), e.policy)
	if rec.Outcome != models.OutcomeRising {
		rec.SuggestedAction = models.SuggestedAction{
			Kind:      models.ActionBestTimes,
			BestTimes: e.table.BestTimes(platform),
		}
	}
	return rec, nil
}
