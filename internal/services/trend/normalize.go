package trend

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"TrendPost/pkg/util"
)

// ValidationError reports a malformed input series. Insufficient data is not
// an error; it is a Recommendation outcome.
type ValidationError struct {
	Key    string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("invalid series: %s", e.Reason)
	}
	return fmt.Sprintf("invalid series: %q: %s", e.Key, e.Reason)
}

// Point is a single interest observation on the provider's 0-100 scale.
type Point struct {
	Timestamp time.Time
	Value     float64
}

// Series is an interest-over-time series ordered by ascending timestamp
// with no duplicate timestamps.
type Series []Point

// Values returns the interest values in series order.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// Last returns the most recent value, or 0 for an empty series.
func (s Series) Last() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Value
}

// Normalize converts a raw timestamp→value mapping (as decoded from a trends
// provider response) into an ordered Series. A nil or empty mapping yields an
// empty Series; downstream that reads as insufficient data. Keys accept
// RFC3339, unix seconds, and "2006-01-02". Values must be numeric within
// [0,100] — anything else is presumed corrupt and rejected.
func Normalize(raw map[string]any) (Series, error) {
	if len(raw) == 0 {
		return Series{}, nil
	}

	series := make(Series, 0, len(raw))
	seen := make(map[int64]string, len(raw))
	for key, val := range raw {
		ts, ok := util.ParseTime(key)
		if !ok {
			return nil, &ValidationError{Key: key, Reason: "unparseable timestamp"}
		}
		v, ok := numeric(val)
		if !ok {
			return nil, &ValidationError{Key: key, Reason: "value is not numeric"}
		}
		if v < 0 || v > 100 {
			return nil, &ValidationError{Key: key, Reason: fmt.Sprintf("value %g outside interest scale 0-100", v)}
		}
		if prev, dup := seen[ts.UnixNano()]; dup {
			return nil, &ValidationError{Key: key, Reason: fmt.Sprintf("duplicate timestamp (same instant as %q)", prev)}
		}
		seen[ts.UnixNano()] = key
		series = append(series, Point{Timestamp: ts, Value: v})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Timestamp.Before(series[j].Timestamp)
	})
	return series, nil
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
