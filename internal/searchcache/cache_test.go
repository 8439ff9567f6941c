package searchcache

import (
	"testing"
	"time"
)

func TestGetSetExpiry(t *testing.T) {
	clock := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	c := New[string](10*time.Minute, func() time.Time { return clock })

	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Set("k", "v")
	if got, ok := c.Get("k"); !ok || got != "v" {
		t.Fatalf("expected hit with v, got %q ok=%v", got, ok)
	}

	clock = clock.Add(10 * time.Minute)
	if got, ok := c.Get("k"); !ok || got != "v" {
		t.Fatalf("entry at exact TTL should still be served, got %q ok=%v", got, ok)
	}

	clock = clock.Add(time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss after TTL elapsed")
	}
}

func TestSetResetsTTL(t *testing.T) {
	clock := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	c := New[int](time.Minute, func() time.Time { return clock })

	c.Set("k", 1)
	clock = clock.Add(50 * time.Second)
	c.Set("k", 2)
	clock = clock.Add(50 * time.Second)

	got, ok := c.Get("k")
	if !ok {
		t.Fatal("rewritten entry should not be expired yet")
	}
	if got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestPurgeExpired(t *testing.T) {
	clock := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	c := New[int](time.Minute, func() time.Time { return clock })

	c.Set("old", 1)
	clock = clock.Add(2 * time.Minute)
	c.Set("fresh", 2)

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries before purge, got %d", c.Len())
	}
	if removed := c.PurgeExpired(); removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 entry after purge, got %d", c.Len())
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Fatal("fresh entry should survive purge")
	}
}

func TestNilClockDefaults(t *testing.T) {
	c := New[string](time.Hour, nil)
	c.Set("k", "v")
	if got, ok := c.Get("k"); !ok || got != "v" {
		t.Fatalf("expected hit, got %q ok=%v", got, ok)
	}
}
