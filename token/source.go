package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrNoSecret is returned by [NewJWTSource] when no signing secret is given.
var ErrNoSecret = errors.New("token: jwt source requires a signing secret")

// ErrTokenInvalid is returned by [JWTSource.Subject] for unparseable or
// mis-signed tokens.
var ErrTokenInvalid = errors.New("token: invalid token")

// Source defines a public type used by soilauth APIs.
//
// Source mints one session token per successful login or sign-up. subject is
// the user ID the token belongs to; now is supplied by the engine clock so
// sources stay deterministic under a fake clock.
type Source interface {
	Mint(subject string, now time.Time) (string, error)
}

// OpaqueSource mints unverifiable tokens of the form
// "tok_<unix-millis>_<random>". It is the engine default.
type OpaqueSource struct{}

// Mint implements [Source]. It never fails.
func (OpaqueSource) Mint(_ string, now time.Time) (string, error) {
	return "tok_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + uuid.NewString(), nil
}

// JWTSource defines a public type used by soilauth APIs.
//
// JWTSource mints HS256-signed tokens carrying the subject and issue time.
// The engine still treats them as opaque; Subject exists for callers that
// want to verify out of band.
type JWTSource struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTSource creates a [JWTSource]. A zero ttl mints tokens without an
// expiry claim.
func NewJWTSource(secret []byte, issuer string, ttl time.Duration) (*JWTSource, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	if ttl < 0 {
		return nil, errors.New("token: negative ttl")
	}
	return &JWTSource{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// Mint implements [Source].
func (s *JWTSource) Mint(subject string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  subject,
		Issuer:   s.issuer,
		IssuedAt: jwt.NewNumericDate(now),
		ID:       uuid.NewString(),
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Subject verifies the signature and returns the token's subject.
func (s *JWTSource) Subject(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	return claims.Subject, nil
}
