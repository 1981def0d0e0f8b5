package stores

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/soilsmart/soilauth/internal"
	"github.com/soilsmart/soilauth/kv"
)

var (
	// ErrCodeNotFound is returned when no challenge exists for the email.
	ErrCodeNotFound = errors.New("challenge code not found")
	// ErrCodeMismatch is returned when the supplied code does not match.
	ErrCodeMismatch = errors.New("challenge code mismatch")
	// ErrCodeExpired is returned when the challenge outlived its TTL.
	ErrCodeExpired = errors.New("challenge code expired")
	// ErrCodeAttempts is returned when the attempt budget is exhausted.
	ErrCodeAttempts = errors.New("challenge attempts exceeded")
	// ErrCodeUnavailable is returned when the backing store fails.
	ErrCodeUnavailable = errors.New("challenge store unavailable")
)

type codeRecord struct {
	Email     string `json:"email"`
	CodeHash  string `json:"code_hash"`
	ExpiresAt int64  `json:"expires_at"`
	Attempts  int    `json:"attempts"`
}

// CodeStore keeps one pending challenge per email under a dedicated key
// prefix. Issuing a new challenge replaces any pending one.
type CodeStore struct {
	store       kv.Store
	prefix      string
	maxAttempts int
}

func NewCodeStore(store kv.Store, prefix string, maxAttempts int) *CodeStore {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &CodeStore{
		store:       store,
		prefix:      prefix,
		maxAttempts: maxAttempts,
	}
}

func (s *CodeStore) key(email string) string {
	return s.prefix + ":" + normalizeEmail(email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Issue stores a new challenge for email, replacing any pending one. Only
// the code hash is persisted.
func (s *CodeStore) Issue(ctx context.Context, email, code string, expiresAt time.Time) error {
	hash := internal.HashCode(code)
	record := codeRecord{
		Email:     normalizeEmail(email),
		CodeHash:  hex.EncodeToString(hash[:]),
		ExpiresAt: expiresAt.Unix(),
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCodeUnavailable, err)
	}
	if err := s.store.SetItem(ctx, s.key(email), string(encoded)); err != nil {
		return fmt.Errorf("%w: %v", ErrCodeUnavailable, err)
	}
	return nil
}

// Consume verifies code against the pending challenge for email. A correct
// code removes the record. A wrong code burns one attempt; exhausting the
// budget removes the record and returns [ErrCodeAttempts]. Expired or
// undecodable records behave like missing ones, except expiry is reported
// as [ErrCodeExpired].
func (s *CodeStore) Consume(ctx context.Context, email, code string, now time.Time) error {
	key := s.key(email)

	raw, err := s.store.GetItem(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return ErrCodeNotFound
		}
		return fmt.Errorf("%w: %v", ErrCodeUnavailable, err)
	}

	var record codeRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		_ = s.store.RemoveItem(ctx, key)
		return ErrCodeNotFound
	}

	if now.Unix() > record.ExpiresAt {
		_ = s.store.RemoveItem(ctx, key)
		return ErrCodeExpired
	}

	stored, err := hex.DecodeString(record.CodeHash)
	if err != nil || len(stored) != 32 {
		_ = s.store.RemoveItem(ctx, key)
		return ErrCodeNotFound
	}
	var storedHash [32]byte
	copy(storedHash[:], stored)

	if !internal.CodesEqual(internal.HashCode(code), storedHash) {
		record.Attempts++
		if record.Attempts >= s.maxAttempts {
			_ = s.store.RemoveItem(ctx, key)
			return ErrCodeAttempts
		}
		encoded, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCodeUnavailable, err)
		}
		if err := s.store.SetItem(ctx, key, string(encoded)); err != nil {
			return fmt.Errorf("%w: %v", ErrCodeUnavailable, err)
		}
		return ErrCodeMismatch
	}

	if err := s.store.RemoveItem(ctx, key); err != nil {
		return fmt.Errorf("%w: %v", ErrCodeUnavailable, err)
	}
	return nil
}
