package ratelimit

import (
	"testing"
	"time"
)

func TestAllowConsumesTokens(t *testing.T) {
	l := New()

	for i := 0; i < 3; i++ {
		if !l.Allow("client-a", 3, 0) {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if l.Allow("client-a", 3, 0) {
		t.Fatalf("expected bucket to be empty after capacity consumed")
	}
}

func TestAllowIsPerKey(t *testing.T) {
	l := New()

	if !l.Allow("client-a", 1, 0) {
		t.Fatalf("first request for client-a should be allowed")
	}
	if l.Allow("client-a", 1, 0) {
		t.Fatalf("client-a should be exhausted")
	}
	if !l.Allow("client-b", 1, 0) {
		t.Fatalf("client-b has its own bucket")
	}
}

func TestPruneDropsIdleBuckets(t *testing.T) {
	l := New()
	l.Allow("client-a", 1, 0)

	time.Sleep(2 * time.Millisecond)
	l.Prune(time.Millisecond)

	if len(l.m) != 0 {
		t.Fatalf("expected idle buckets to be pruned, have %d", len(l.m))
	}
}
