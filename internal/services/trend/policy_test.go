package trend

import (
	"testing"
	"time"

	"TrendPost/internal/domain/models"
)

func TestDecideInsufficientData(t *testing.T) {
	rec := Decide(Signal{}, 0, PolicyConfig{})
	if rec.Outcome != models.OutcomeInsufficientData {
		t.Fatalf("unexpected outcome %s", rec.Outcome)
	}
	if rec.Confidence != models.ConfidenceNone {
		t.Fatalf("unexpected confidence %s", rec.Confidence)
	}
	if rec.Reason == "" {
		t.Fatalf("reason must be set")
	}
}

func TestDecideSingleMovingAvgIsInsufficient(t *testing.T) {
	// One moving-average point produces no slope array at all.
	rec := Decide(Signal{MovingAvg: []float64{20}}, 30, PolicyConfig{})
	if rec.Outcome != models.OutcomeInsufficientData {
		t.Fatalf("no slopes must read as insufficient data, got %s", rec.Outcome)
	}
}

func TestDecideRisingHigh(t *testing.T) {
	sig := Analyze(seriesOf(5, 5, 5, 5, 50), 3) // slopes [0, 15]
	rec := Decide(sig, 50, PolicyConfig{})
	if rec.Outcome != models.OutcomeRising {
		t.Fatalf("unexpected outcome %s", rec.Outcome)
	}
	if rec.Confidence != models.ConfidenceHigh {
		t.Fatalf("slope 15 > 10 must be high, got %s", rec.Confidence)
	}
	if rec.SuggestedAction.Kind != models.ActionDelayWindow {
		t.Fatalf("unexpected action kind %s", rec.SuggestedAction.Kind)
	}
	if rec.SuggestedAction.DelayMin != 2*time.Hour || rec.SuggestedAction.DelayMax != 4*time.Hour {
		t.Fatalf("unexpected delay window %v-%v", rec.SuggestedAction.DelayMin, rec.SuggestedAction.DelayMax)
	}
	if rec.LastValue != 50 {
		t.Fatalf("unexpected last value %v", rec.LastValue)
	}
}

func TestDecideThresholdBoundaryIsMedium(t *testing.T) {
	// [10,20,30,40] w=3 → MA [20,30], slope [10]. A slope exactly at the
	// threshold stays medium: the comparison is strictly greater-than.
	sig := Analyze(seriesOf(10, 20, 30, 40), 3)
	rec := Decide(sig, 40, PolicyConfig{})
	if rec.Outcome != models.OutcomeRising {
		t.Fatalf("unexpected outcome %s", rec.Outcome)
	}
	if rec.Confidence != models.ConfidenceMedium {
		t.Fatalf("slope == threshold must be medium, got %s", rec.Confidence)
	}
}

func TestDecideMonotonicIncreasingNeverNone(t *testing.T) {
	sig := Analyze(seriesOf(10, 20, 30, 40, 50, 60), 3)
	rec := Decide(sig, 60, PolicyConfig{})
	if rec.Outcome != models.OutcomeRising {
		t.Fatalf("unexpected outcome %s", rec.Outcome)
	}
	if rec.Confidence == models.ConfidenceNone {
		t.Fatalf("rising outcome must carry a confidence grade")
	}
}

func TestDecideFallingIsNoTrend(t *testing.T) {
	sig := Analyze(seriesOf(90, 70, 50, 30, 10), 3)
	rec := Decide(sig, 10, PolicyConfig{})
	if rec.Outcome != models.OutcomeNoTrend {
		t.Fatalf("unexpected outcome %s", rec.Outcome)
	}
	if rec.Confidence != models.ConfidenceNone {
		t.Fatalf("no-trend asserts no signal, confidence must be none")
	}
}

func TestDecideConstantSeriesIsNoTrend(t *testing.T) {
	sig := Analyze(seriesOf(40, 40, 40, 40, 40), 3)
	for _, s := range sig.Slopes {
		if s != 0 {
			t.Fatalf("constant series must have zero slopes, got %v", sig.Slopes)
		}
	}
	rec := Decide(sig, 40, PolicyConfig{})
	if rec.Outcome != models.OutcomeNoTrend {
		t.Fatalf("unexpected outcome %s", rec.Outcome)
	}
}

func TestDecideTieBreakFirstMaxSlope(t *testing.T) {
	// Two equal maxima; the first occurrence wins, and the grade is the same
	// either way, so pin via the threshold: equal slopes of 12 stay one grade.
	rec := Decide(Signal{MovingAvg: []float64{10, 22, 20, 32}, Slopes: []float64{12, -2, 12}}, 40, PolicyConfig{})
	if rec.Outcome != models.OutcomeRising {
		t.Fatalf("unexpected outcome %s", rec.Outcome)
	}
	if rec.Confidence != models.ConfidenceHigh {
		t.Fatalf("slope 12 > 10 must be high, got %s", rec.Confidence)
	}
}

func TestDecideCustomThreshold(t *testing.T) {
	sig := Signal{MovingAvg: []float64{10, 15, 20}, Slopes: []float64{5, 5}}
	rec := Decide(sig, 20, PolicyConfig{RiseThreshold: 4})
	if rec.Confidence != models.ConfidenceHigh {
		t.Fatalf("slope 5 > threshold 4 must be high, got %s", rec.Confidence)
	}
	rec = Decide(sig, 20, PolicyConfig{RiseThreshold: 6})
	if rec.Confidence != models.ConfidenceMedium {
		t.Fatalf("slope 5 < threshold 6 must be medium, got %s", rec.Confidence)
	}
}
