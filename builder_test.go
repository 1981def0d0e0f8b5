package soilauth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/soilsmart/soilauth/kv"
	"github.com/soilsmart/soilauth/token"
)

func TestBuildRequiresStore(t *testing.T) {
	if _, err := New().WithClock(newFakeClock()).Build(context.Background()); err == nil {
		t.Fatalf("Build without a store succeeded")
	}
}

func TestBuilderSingleUse(t *testing.T) {
	b := New().WithStore(kv.NewMemoryStore()).WithClock(newFakeClock())

	session, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	defer session.Close()

	if _, err := b.Build(context.Background()); err == nil {
		t.Fatalf("second Build on the same builder succeeded")
	}
}

func TestBuildValidatesConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "empty token key",
			mutate: func(c *Config) { c.Storage.TokenKey = "" },
			want:   "storage keys",
		},
		{
			name:   "colliding keys",
			mutate: func(c *Config) { c.Storage.UserKey = c.Storage.TokenKey },
			want:   "must differ",
		},
		{
			name:   "negative latency",
			mutate: func(c *Config) { c.Latency.Login = -time.Second },
			want:   "non-negative",
		},
		{
			name:   "reset digits out of range",
			mutate: func(c *Config) { c.PasswordReset.CodeDigits = 4 },
			want:   "between 6 and 10",
		},
		{
			name:   "reset ttl zero",
			mutate: func(c *Config) { c.PasswordReset.CodeTTL = 0 },
			want:   "ttl",
		},
		{
			name:   "verification attempts zero",
			mutate: func(c *Config) { c.Verification.MaxAttempts = 0 },
			want:   "attempts",
		},
		{
			name:   "audit enabled with no buffer",
			mutate: func(c *Config) { c.Audit.Enabled = true; c.Audit.BufferSize = 0 },
			want:   "buffer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)

			_, err := New().
				WithConfig(cfg).
				WithStore(kv.NewMemoryStore()).
				WithClock(newFakeClock()).
				Build(context.Background())
			if err == nil {
				t.Fatalf("Build accepted an invalid config")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestBuildDisabledFlowsSkipValidation(t *testing.T) {
	cfg := defaultConfig()
	cfg.PasswordReset = ResetConfig{}
	cfg.Verification = VerificationConfig{}
	cfg.Storage.ResetPrefix = ""
	cfg.Storage.VerifyPrefix = ""

	session, err := New().
		WithConfig(cfg).
		WithStore(kv.NewMemoryStore()).
		WithClock(newFakeClock()).
		Build(context.Background())
	if err != nil {
		t.Fatalf("Build with disabled flows failed: %v", err)
	}
	session.Close()
}

func TestBuildWithJWTTokenSource(t *testing.T) {
	store := kv.NewMemoryStore()
	// Zero TTL: the fake clock sits in the past, an expiry claim would
	// already be stale when verified against wall time.
	src, err := token.NewJWTSource([]byte("test-secret"), "soilauth-test", 0)
	if err != nil {
		t.Fatalf("NewJWTSource failed: %v", err)
	}

	session, err := New().
		WithStore(store).
		WithClock(newFakeClock()).
		WithTokenSource(src).
		Build(context.Background())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer session.Close()

	user, err := session.Login(context.Background(), "jane@x.com", "pw")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	raw, err := store.GetItem(context.Background(), "@soilsmart:auth_token")
	if err != nil {
		t.Fatalf("stored token missing: %v", err)
	}
	subject, err := src.Subject(raw)
	if err != nil {
		t.Fatalf("stored token does not verify: %v", err)
	}
	if subject != user.ID {
		t.Fatalf("token subject = %q, want %q", subject, user.ID)
	}
}

func TestBuildEmitsAuditEvents(t *testing.T) {
	cfg := defaultConfig()
	cfg.Audit.Enabled = true

	sink := NewChannelSink(16)
	session, err := New().
		WithConfig(cfg).
		WithStore(kv.NewMemoryStore()).
		WithClock(newFakeClock()).
		WithAuditSink(sink).
		Build(context.Background())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, err := session.Login(context.Background(), "jane@x.com", "pw"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	session.Close()

	var types []string
	for drained := false; !drained; {
		select {
		case event := <-sink.Events():
			types = append(types, event.EventType)
		default:
			drained = true
		}
	}

	var sawCheck, sawLogin bool
	for _, eventType := range types {
		switch eventType {
		case "checkauth":
			sawCheck = true
		case "login":
			sawLogin = true
		}
	}
	if !sawCheck || !sawLogin {
		t.Fatalf("audit events = %v, want checkauth and login", types)
	}
}
