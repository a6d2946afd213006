package trend

import (
	"errors"
	"testing"
)

func TestNormalizeSortsByTimestamp(t *testing.T) {
	raw := map[string]any{
		"2024-06-03": 30.0,
		"2024-06-01": 10.0,
		"2024-06-02": 20.0,
	}
	s, err := Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := s.Values()
	want := []float64{10, 20, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values out of order: got %v want %v", got, want)
		}
	}
	if s.Last() != 30 {
		t.Fatalf("unexpected last value %v", s.Last())
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	s, err := Normalize(nil)
	if err != nil {
		t.Fatalf("empty input must not error: %v", err)
	}
	if len(s) != 0 {
		t.Fatalf("expected empty series, got %d points", len(s))
	}
}

func TestNormalizeDuplicateTimestamp(t *testing.T) {
	// Different key spellings resolving to the same instant.
	raw := map[string]any{
		"2024-06-01T00:00:00Z": 10.0,
		"2024-06-01":           20.0,
	}
	_, err := Normalize(raw)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestNormalizeRejectsOutOfRange(t *testing.T) {
	for _, v := range []float64{-1, 100.5, 1000} {
		_, err := Normalize(map[string]any{"2024-06-01": v})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("value %v: expected ValidationError, got %v", v, err)
		}
	}
}

func TestNormalizeRejectsNonNumeric(t *testing.T) {
	_, err := Normalize(map[string]any{"2024-06-01": "lots"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestNormalizeRejectsBadTimestamp(t *testing.T) {
	_, err := Normalize(map[string]any{"yesterday": 10.0})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestNormalizeAcceptsIntValues(t *testing.T) {
	s, err := Normalize(map[string]any{"2024-06-01": 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s[0].Value != 42 {
		t.Fatalf("unexpected value %v", s[0].Value)
	}
}
