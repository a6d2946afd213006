package trend

import (
	"testing"
	"time"
)

func seriesOf(values ...float64) Series {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	s := make(Series, len(values))
	for i, v := range values {
		s[i] = Point{Timestamp: base.AddDate(0, 0, i), Value: v}
	}
	return s
}

func TestMovingAverageFixture(t *testing.T) {
	// (10+20+30)/3 = 20, (20+30+40)/3 = 30
	ma := MovingAverage([]float64{10, 20, 30, 40}, 3)
	want := []float64{20, 30}
	if len(ma) != len(want) {
		t.Fatalf("unexpected length %d", len(ma))
	}
	for i := range want {
		if ma[i] != want[i] {
			t.Fatalf("ma[%d] = %v, want %v", i, ma[i], want[i])
		}
	}
}

func TestMovingAverageShortSeries(t *testing.T) {
	if ma := MovingAverage([]float64{10, 20}, 3); ma != nil {
		t.Fatalf("expected nil for short series, got %v", ma)
	}
}

func TestMovingAverageWindowOne(t *testing.T) {
	ma := MovingAverage([]float64{5, 7, 9}, 1)
	want := []float64{5, 7, 9}
	for i := range want {
		if ma[i] != want[i] {
			t.Fatalf("window 1 must echo values, got %v", ma)
		}
	}
}

func TestSlopesFirstDifference(t *testing.T) {
	got := Slopes([]float64{20, 30, 25})
	want := []float64{10, -5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slopes = %v, want %v", got, want)
		}
	}
}

func TestSlopesSinglePoint(t *testing.T) {
	if s := Slopes([]float64{20}); s != nil {
		t.Fatalf("expected nil slopes, got %v", s)
	}
}

func TestAnalyzeEmptyOnInsufficientData(t *testing.T) {
	sig := Analyze(seriesOf(10, 20), 3)
	if len(sig.MovingAvg) != 0 || len(sig.Slopes) != 0 {
		t.Fatalf("expected empty signal, got %+v", sig)
	}
}

func TestAnalyzeSpikeFixture(t *testing.T) {
	// [5,5,5,5,50] w=3 → MA [5,5,20], slopes [0,15]
	sig := Analyze(seriesOf(5, 5, 5, 5, 50), 3)
	wantMA := []float64{5, 5, 20}
	wantSlopes := []float64{0, 15}
	if len(sig.MovingAvg) != 3 || len(sig.Slopes) != 2 {
		t.Fatalf("unexpected signal shape %+v", sig)
	}
	for i := range wantMA {
		if sig.MovingAvg[i] != wantMA[i] {
			t.Fatalf("MovingAvg = %v, want %v", sig.MovingAvg, wantMA)
		}
	}
	for i := range wantSlopes {
		if sig.Slopes[i] != wantSlopes[i] {
			t.Fatalf("Slopes = %v, want %v", sig.Slopes, wantSlopes)
		}
	}
}

func TestAnalyzeSlopeInvariant(t *testing.T) {
	sig := Analyze(seriesOf(10, 40, 20, 70, 35, 90, 15), 3)
	if len(sig.Slopes) != len(sig.MovingAvg)-1 {
		t.Fatalf("slope length %d, expected %d", len(sig.Slopes), len(sig.MovingAvg)-1)
	}
	for i, s := range sig.Slopes {
		if s != sig.MovingAvg[i+1]-sig.MovingAvg[i] {
			t.Fatalf("slope[%d] does not match first difference", i)
		}
	}
}
