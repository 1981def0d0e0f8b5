package soilauth

import (
	"context"
	"fmt"

	"github.com/soilsmart/soilauth/internal"
	"github.com/soilsmart/soilauth/validation"
)

// RequestVerification simulates sending an account-verification code to
// email. Mechanics match the password reset flow: hashed storage, TTL,
// attempt budget, mocked delivery via the return value.
func (s *Session) RequestVerification(ctx context.Context, email string) (string, error) {
	if s == nil {
		return "", ErrEngineNotReady
	}
	if !s.config.Verification.Enabled {
		return "", ErrVerificationDisabled
	}
	if msg := validation.ValidateField(email, validation.Rule{Required: true, Email: true}, nil, "email"); msg != "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidEmail, msg)
	}

	if err := s.clock.Sleep(ctx, s.config.Latency.Verification); err != nil {
		return "", err
	}

	code, err := internal.NewOTP(s.config.Verification.CodeDigits)
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}

	expiresAt := s.clock.Now().Add(s.config.Verification.CodeTTL)
	if err := s.verifyStore.Issue(ctx, email, code, expiresAt); err != nil {
		s.metricInc(MetricVerificationFailed)
		s.emitAudit(ctx, "verification_request", "", email, false, err.Error())
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.metricInc(MetricVerificationRequested)
	s.emitAudit(ctx, "verification_request", "", email, true, "")
	return code, nil
}

// ConfirmVerification consumes a pending verification code for email.
func (s *Session) ConfirmVerification(ctx context.Context, email, code string) error {
	if s == nil {
		return ErrEngineNotReady
	}
	if !s.config.Verification.Enabled {
		return ErrVerificationDisabled
	}

	if err := s.verifyStore.Consume(ctx, email, code, s.clock.Now()); err != nil {
		mapped := mapChallengeError(err)
		s.metricInc(MetricVerificationFailed)
		s.emitAudit(ctx, "verification_confirm", "", email, false, mapped.Error())
		return mapped
	}

	s.metricInc(MetricVerificationConfirmed)
	s.emitAudit(ctx, "verification_confirm", "", email, true, "")
	return nil
}
