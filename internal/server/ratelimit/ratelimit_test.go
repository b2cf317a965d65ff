package ratelimit

import (
	"testing"
	"time"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/generate-roadmap", Method: "POST", Limit: 5, Window: time.Hour, Burst: 2},
			{Path: "/api/auth/", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
			{Path: "/health", Method: "GET", Limit: 0, Window: time.Minute},
		},
	}
}

func TestLimiter_BurstThenLimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/generate-roadmap", "POST")
		if !allowed {
			t.Fatalf("request %d should be allowed within burst", i+1)
		}
	}

	allowed, info := l.Allow("1.2.3.4", "/api/generate-roadmap", "POST")
	if allowed {
		t.Fatal("request beyond burst should be limited")
	}
	if info.Limit != 5 {
		t.Errorf("expected limit 5, got %d", info.Limit)
	}
	if info.RetryAfter <= 0 {
		t.Error("expected positive RetryAfter when limited")
	}
}

func TestLimiter_ClientsIsolated(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		l.Allow("1.1.1.1", "/api/generate-roadmap", "POST")
	}
	allowed, _ := l.Allow("2.2.2.2", "/api/generate-roadmap", "POST")
	if !allowed {
		t.Error("second client should have its own bucket")
	}
}

func TestLimiter_PrefixMatch(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/auth/login", "POST")
		if !allowed {
			t.Fatalf("request %d should be allowed within burst", i+1)
		}
	}
	allowed, _ := l.Allow("1.2.3.4", "/api/auth/login", "POST")
	if allowed {
		t.Error("auth endpoint should hit the /api/auth/ prefix limit")
	}
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		if !allowed {
			t.Fatal("health check should never be limited")
		}
	}
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/generate-roadmap", "POST")
		if !allowed {
			t.Fatal("disabled limiter should allow everything")
		}
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := testConfig().EndpointConfigs

	if c := matchEndpoint("/api/generate-roadmap", "POST", configs); c == nil || c.Limit != 5 {
		t.Error("exact path should match")
	}
	if c := matchEndpoint("/api/generate-roadmap", "GET", configs); c != nil {
		t.Error("method mismatch should not match")
	}
	if c := matchEndpoint("/api/auth/register", "POST", configs); c == nil || c.Limit != 10 {
		t.Error("prefix path should match")
	}
	if c := matchEndpoint("/api/news", "GET", configs); c != nil {
		t.Error("unconfigured path should fall through to default")
	}
}
