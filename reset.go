package soilauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/soilsmart/soilauth/internal"
	"github.com/soilsmart/soilauth/internal/stores"
	"github.com/soilsmart/soilauth/validation"
)

// RequestPasswordReset simulates sending a reset code to email. The code is
// a numeric one-time code stored (hashed) in the key-value store with a TTL
// and an attempt budget; any previously pending code for the same email is
// replaced. Because delivery is mocked, the code is returned to the caller.
func (s *Session) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if s == nil {
		return "", ErrEngineNotReady
	}
	if !s.config.PasswordReset.Enabled {
		return "", ErrResetDisabled
	}
	if msg := validation.ValidateField(email, validation.Rule{Required: true, Email: true}, nil, "email"); msg != "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidEmail, msg)
	}

	if err := s.clock.Sleep(ctx, s.config.Latency.Reset); err != nil {
		return "", err
	}

	code, err := internal.NewOTP(s.config.PasswordReset.CodeDigits)
	if err != nil {
		return "", fmt.Errorf("generate reset code: %w", err)
	}

	expiresAt := s.clock.Now().Add(s.config.PasswordReset.CodeTTL)
	if err := s.resetStore.Issue(ctx, email, code, expiresAt); err != nil {
		s.metricInc(MetricResetFailed)
		s.emitAudit(ctx, "password_reset_request", "", email, false, err.Error())
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.metricInc(MetricResetRequested)
	s.emitAudit(ctx, "password_reset_request", "", email, true, "")
	return code, nil
}

// ConfirmPasswordReset consumes a pending reset code. The new password must
// satisfy the configured minimum length; a wrong code burns one attempt and
// exhausting the budget invalidates the challenge. The mocked backend has no
// credential record to update, so a successful confirmation only consumes
// the challenge.
func (s *Session) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	if s == nil {
		return ErrEngineNotReady
	}
	if !s.config.PasswordReset.Enabled {
		return ErrResetDisabled
	}

	rule := validation.Rule{Required: true, MinLength: s.config.PasswordReset.MinPasswordLength}
	if msg := validation.ValidateField(newPassword, rule, nil, "password"); msg != "" {
		return fmt.Errorf("%w: %s", ErrPasswordPolicy, msg)
	}

	if err := s.resetStore.Consume(ctx, email, code, s.clock.Now()); err != nil {
		mapped := mapChallengeError(err)
		s.metricInc(MetricResetFailed)
		s.emitAudit(ctx, "password_reset_confirm", "", email, false, mapped.Error())
		return mapped
	}

	s.metricInc(MetricResetConfirmed)
	s.emitAudit(ctx, "password_reset_confirm", "", email, true, "")
	return nil
}

// Challenge-store failures collapse to the public taxonomy: not-found and
// mismatch are indistinguishable to callers.
func mapChallengeError(err error) error {
	switch {
	case errors.Is(err, stores.ErrCodeNotFound), errors.Is(err, stores.ErrCodeMismatch):
		return ErrChallengeInvalid
	case errors.Is(err, stores.ErrCodeExpired):
		return ErrChallengeExpired
	case errors.Is(err, stores.ErrCodeAttempts):
		return ErrChallengeAttempts
	default:
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}
