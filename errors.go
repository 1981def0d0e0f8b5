package soilauth

import "errors"

var (
	// ErrEngineNotReady is an exported constant or variable used by the session engine.
	ErrEngineNotReady = errors.New("session engine not ready")
	// ErrStoreUnavailable is an exported constant or variable used by the session engine.
	ErrStoreUnavailable = errors.New("session store unavailable")
	// ErrInvalidEmail is an exported constant or variable used by the session engine.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrPasswordPolicy is an exported constant or variable used by the session engine.
	ErrPasswordPolicy = errors.New("password policy violation")
	// ErrResetDisabled is an exported constant or variable used by the session engine.
	ErrResetDisabled = errors.New("password reset disabled")
	// ErrVerificationDisabled is an exported constant or variable used by the session engine.
	ErrVerificationDisabled = errors.New("verification disabled")
	// ErrChallengeInvalid is an exported constant or variable used by the session engine.
	ErrChallengeInvalid = errors.New("challenge code invalid")
	// ErrChallengeExpired is an exported constant or variable used by the session engine.
	ErrChallengeExpired = errors.New("challenge code expired")
	// ErrChallengeAttempts is an exported constant or variable used by the session engine.
	ErrChallengeAttempts = errors.New("challenge attempts exceeded")
)
