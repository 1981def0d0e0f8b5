package soilauth

import (
	"errors"
	"time"
)

// Config defines a public type used by soilauth APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Storage      StorageConfig
	Latency      LatencyConfig
	PasswordReset ResetConfig
	Verification VerificationConfig
	Audit        AuditConfig
	Metrics      MetricsConfig
}

/*
====================================
STORAGE CONFIG
====================================
*/

// StorageConfig names the logical keys the engine owns in the key-value
// store. TokenKey and UserKey must both be present for a stored session to
// count as authenticated; the prefixes namespace the per-email challenge
// records of the reset and verification flows.
type StorageConfig struct {
	TokenKey     string
	UserKey      string
	ResetPrefix  string
	VerifyPrefix string
}

/*
====================================
LATENCY CONFIG
====================================
*/

// LatencyConfig holds the simulated remote round-trip delays. All delays run
// through the injected [Clock], so a fake clock makes them instantaneous in
// tests. Zero disables a delay.
type LatencyConfig struct {
	Login        time.Duration
	SignUp       time.Duration
	Reset        time.Duration
	Verification time.Duration
}

/*
====================================
CHALLENGE FLOW CONFIG
====================================
*/

// ResetConfig defines a public type used by soilauth APIs.
//
// ResetConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ResetConfig struct {
	Enabled           bool
	CodeTTL           time.Duration
	CodeDigits        int
	MaxAttempts       int
	MinPasswordLength int
}

// VerificationConfig defines a public type used by soilauth APIs.
//
// VerificationConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type VerificationConfig struct {
	Enabled     bool
	CodeTTL     time.Duration
	CodeDigits  int
	MaxAttempts int
}

/*
====================================
OBSERVABILITY CONFIG
====================================
*/

// AuditConfig defines a public type used by soilauth APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by soilauth APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled bool
}

func defaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			TokenKey:     "@soilsmart:auth_token",
			UserKey:      "@soilsmart:user_data",
			ResetPrefix:  "@soilsmart:reset_code",
			VerifyPrefix: "@soilsmart:verify_code",
		},
		Latency: LatencyConfig{
			Login:        time.Second,
			SignUp:       1500 * time.Millisecond,
			Reset:        1500 * time.Millisecond,
			Verification: 1500 * time.Millisecond,
		},
		PasswordReset: ResetConfig{
			Enabled:           true,
			CodeTTL:           15 * time.Minute,
			CodeDigits:        6,
			MaxAttempts:       5,
			MinPasswordLength: 6,
		},
		Verification: VerificationConfig{
			Enabled:     true,
			CodeTTL:     10 * time.Minute,
			CodeDigits:  6,
			MaxAttempts: 5,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func cloneConfig(cfg Config) Config {
	// All fields are value types; a shallow copy is a deep copy.
	return cfg
}

func validateConfig(cfg *Config) error {
	if cfg.Storage.TokenKey == "" || cfg.Storage.UserKey == "" {
		return errors.New("storage keys must be non-empty")
	}
	if cfg.Storage.TokenKey == cfg.Storage.UserKey {
		return errors.New("token and user keys must differ")
	}
	if cfg.Latency.Login < 0 || cfg.Latency.SignUp < 0 || cfg.Latency.Reset < 0 || cfg.Latency.Verification < 0 {
		return errors.New("latency durations must be non-negative")
	}
	if cfg.PasswordReset.Enabled {
		if cfg.Storage.ResetPrefix == "" {
			return errors.New("reset key prefix must be non-empty")
		}
		if cfg.PasswordReset.CodeDigits < 6 || cfg.PasswordReset.CodeDigits > 10 {
			return errors.New("reset code digits must be between 6 and 10")
		}
		if cfg.PasswordReset.CodeTTL <= 0 {
			return errors.New("reset code ttl must be positive")
		}
		if cfg.PasswordReset.MaxAttempts < 1 {
			return errors.New("reset max attempts must be at least 1")
		}
		if cfg.PasswordReset.MinPasswordLength < 1 {
			return errors.New("reset minimum password length must be at least 1")
		}
	}
	if cfg.Verification.Enabled {
		if cfg.Storage.VerifyPrefix == "" {
			return errors.New("verification key prefix must be non-empty")
		}
		if cfg.Verification.CodeDigits < 6 || cfg.Verification.CodeDigits > 10 {
			return errors.New("verification code digits must be between 6 and 10")
		}
		if cfg.Verification.CodeTTL <= 0 {
			return errors.New("verification code ttl must be positive")
		}
		if cfg.Verification.MaxAttempts < 1 {
			return errors.New("verification max attempts must be at least 1")
		}
	}
	if cfg.Audit.Enabled && cfg.Audit.BufferSize < 1 {
		return errors.New("audit buffer size must be at least 1")
	}
	return nil
}
