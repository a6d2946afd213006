package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	type payload struct {
		Outcome string  `json:"outcome"`
		Value   float64 `json:"value"`
	}

	in := payload{Outcome: "rising", Value: 42.5}
	if err := c.Set(ctx, "k1", in, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out payload
	if err := c.Get(ctx, "k1", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if out != in {
		t.Fatalf("expected %+v, got %+v", in, out)
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()

	var out string
	if err := c.Get(context.Background(), "absent", &out); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "k1", "v1", time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	var out string
	if err := c.Get(ctx, "k1", &out); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected expired entry to miss, got %v", err)
	}
}

func TestMemoryCacheEvictsAtCapacity(t *testing.T) {
	c := NewMemoryCache(WithMemoryMaxSize(2))
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "a", "1", time.Minute); err != nil {
		t.Fatalf("set a: %v", err)
	}
	if err := c.Set(ctx, "b", "1", time.Hour); err != nil {
		t.Fatalf("set b: %v", err)
	}
	if err := c.Set(ctx, "c", "1", time.Hour); err != nil {
		t.Fatalf("set c: %v", err)
	}

	// "a" expires soonest and is the eviction victim.
	var out string
	if err := c.Get(ctx, "a", &out); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected earliest-expiry entry to be evicted, got %v", err)
	}
	if err := c.Get(ctx, "c", &out); err != nil {
		t.Fatalf("newest entry should survive: %v", err)
	}
}

func TestHashFieldsIsOrderIndependent(t *testing.T) {
	a := HashFields(map[string]string{"x": "1", "y": "2", "z": "3"})
	b := HashFields(map[string]string{"z": "3", "x": "1", "y": "2"})
	if a != b {
		t.Fatalf("expected identical hashes, got %q and %q", a, b)
	}

	c := HashFields(map[string]string{"x": "1", "y": "2", "z": "4"})
	if a == c {
		t.Fatalf("different field sets should not collide")
	}
}
