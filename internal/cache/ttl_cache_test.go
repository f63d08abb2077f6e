package cache

import (
	"testing"
	"time"
)

func TestTTLCacheSetGet(t *testing.T) {
	c := NewTTLCache[string, int]()

	c.Set("a", 1, time.Minute)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("got %d/%v", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatal("missing key should not be found")
	}
}

func TestTTLCacheExpiry(t *testing.T) {
	c := NewTTLCache[string, int]()

	c.Set("a", 1, 5*time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	if _, ok := c.Get("a"); ok {
		t.Fatal("expired entry should not be returned")
	}
	if c.Len() != 0 {
		t.Fatalf("len = %d after lazy prune", c.Len())
	}
}

func TestTTLCacheZeroTTLNeverExpires(t *testing.T) {
	c := NewTTLCache[string, int]()

	c.Set("a", 1, 0)
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get("a"); !ok {
		t.Fatal("zero ttl entry should persist")
	}
}

func TestTTLCacheDelete(t *testing.T) {
	c := NewTTLCache[string, int]()

	c.Set("a", 1, time.Minute)
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Fatal("deleted entry should not be returned")
	}
}

func TestTTLCacheNilReceiver(t *testing.T) {
	var c *TTLCache[string, int]

	if _, ok := c.Get("a"); ok {
		t.Fatal("nil cache should miss")
	}
	c.Set("a", 1, time.Minute)
	c.Delete("a")
	if c.Len() != 0 {
		t.Fatal("nil cache has no entries")
	}
}
