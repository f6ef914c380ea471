package cache

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New()

	c.Set("risk_profile:1", 42, time.Minute)

	v, ok := c.Get("risk_profile:1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if v.(int) != 42 {
		t.Errorf("got %v, want 42", v)
	}
}

func TestCacheExpiry(t *testing.T) {
	c := New()

	c.Set("portfolio:1", "stale", -time.Second)

	if _, ok := c.Get("portfolio:1"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestCacheDelete(t *testing.T) {
	c := New()

	c.Set("risk_profile:7", 1, time.Minute)
	c.Delete("risk_profile:7")

	if _, ok := c.Get("risk_profile:7"); ok {
		t.Error("expected deleted entry to miss")
	}
}

func TestCacheSweep(t *testing.T) {
	c := New()

	c.Set("a", 1, -time.Second)
	c.Set("b", 2, -time.Second)
	c.Set("c", 3, time.Minute)

	if evicted := c.Sweep(); evicted != 2 {
		t.Errorf("Sweep() = %d, want 2", evicted)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}
