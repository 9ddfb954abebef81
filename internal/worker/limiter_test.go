package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiterAllowWithinBurst(t *testing.T) {
	limiter := NewLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("https://api.example.com/v1") {
			t.Fatalf("call %d within burst was denied", i+1)
		}
	}
	if limiter.Allow("https://api.example.com/v1") {
		t.Error("call beyond burst was allowed")
	}
}

func TestLimiterIsPerHost(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if !limiter.Allow("https://a.example.com/x") {
		t.Fatal("first call to a.example.com denied")
	}
	if limiter.Allow("https://a.example.com/y") {
		t.Error("second call to a.example.com should be denied")
	}
	if !limiter.Allow("https://b.example.com/x") {
		t.Error("call to an unrelated host was denied")
	}
}

func TestLimiterSetHostRate(t *testing.T) {
	limiter := NewLimiter(1, 1)
	limiter.SetHostRate("slow.example.com", 0.001, 1)

	if !limiter.Allow("https://slow.example.com/") {
		t.Fatal("burst call denied")
	}
	if limiter.Allow("https://slow.example.com/") {
		t.Error("second call should be throttled at the per-host rate")
	}
	if !limiter.Allow("https://fast.example.com/") {
		t.Error("default-rate host was throttled by the override")
	}
}

func TestLimiterWaitHonorsContext(t *testing.T) {
	limiter := NewLimiter(0.001, 1)

	// Drain the burst so the next Wait would block for a long time
	if err := limiter.Wait(context.Background(), "https://api.example.com/"); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := limiter.Wait(ctx, "https://api.example.com/"); err == nil {
		t.Error("expected an error when the context expires before the limiter allows")
	}
}

func TestLimiterRejectsUnparsableURL(t *testing.T) {
	limiter := NewLimiter(1, 1)
	if limiter.Allow("://not a url") {
		t.Error("unparsable URL should not be allowed")
	}
}
