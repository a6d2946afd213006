package trend

// DefaultWindow is the moving-average window applied when none is configured.
const DefaultWindow = 3

// Signal holds the smoothed view of a series: moving averages and their
// first differences. Slopes[i] = MovingAvg[i+1] - MovingAvg[i].
type Signal struct {
	MovingAvg []float64
	Slopes    []float64
}

// MovingAverage computes the simple (unweighted) moving average over a
// sliding window. It returns len(values)-window+1 points, or nil when the
// series is shorter than the window. A simple mean is used deliberately so
// results verify against hand-computed fixtures.
func MovingAverage(values []float64, window int) []float64 {
	if window < 1 {
		window = DefaultWindow
	}
	if len(values) < window {
		return nil
	}
	out := make([]float64, 0, len(values)-window+1)
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out = append(out, sum/float64(window))
		}
	}
	return out
}

// Slopes computes first differences between consecutive moving-average
// points. Deltas are not normalized by time spacing; the source data is
// assumed near-uniformly sampled (typically daily).
func Slopes(ma []float64) []float64 {
	if len(ma) < 2 {
		return nil
	}
	out := make([]float64, 0, len(ma)-1)
	for i := 1; i < len(ma); i++ {
		out = append(out, ma[i]-ma[i-1])
	}
	return out
}

// Analyze smooths the series and derives slopes. A series shorter than the
// window yields an empty Signal, which the policy reads as insufficient data.
func Analyze(s Series, window int) Signal {
	ma := MovingAverage(s.Values(), window)
	return Signal{MovingAvg: ma, Slopes: Slopes(ma)}
}
