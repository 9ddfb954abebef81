package cache

import (
	"testing"
	"time"
)

func TestKeyIsStableAndDistinct(t *testing.T) {
	a := Key("google-factcheck", "the earth is flat")
	b := Key("google-factcheck", "the earth is flat")
	c := Key("newsapi", "the earth is flat")

	if a != b {
		t.Error("same provider and query should produce the same key")
	}
	if a == c {
		t.Error("different providers should produce different keys")
	}
}

func TestLayeredCachePromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	layered := NewLayeredCache(time.Minute, dir, time.Hour)

	key := Key("google-factcheck", "promote me")
	if err := layered.Set(key, []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Drop the memory layer; the value must come back from disk
	if err := layered.memory.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	val, found := layered.Get(key)
	if !found || string(val) != "payload" {
		t.Fatalf("disk layer miss: found=%v val=%q", found, val)
	}

	// The hit should now be served from memory again
	if _, found := layered.memory.Get(key); !found {
		t.Error("disk hit was not promoted to memory")
	}
}

func TestDiskCacheExpiry(t *testing.T) {
	disk := NewDiskCache(t.TempDir(), time.Hour)
	key := Key("newsapi", "expired entry")

	if err := disk.Set(key, []byte("stale"), -time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := disk.Get(key); found {
		t.Error("expired entry should not be returned")
	}
}
