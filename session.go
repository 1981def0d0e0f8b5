package soilauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	internalaudit "github.com/soilsmart/soilauth/internal/audit"
	"github.com/soilsmart/soilauth/internal/stores"
	"github.com/soilsmart/soilauth/kv"
	"github.com/soilsmart/soilauth/token"
)

// Session defines a public type used by soilauth APIs.
//
// Session owns the authenticated-user lifecycle. The state machine is
// Initializing → Unauthenticated ⇄ Authenticated; [Builder.Build] performs
// the initial check, so a built session is always past Initializing.
//
// Lifecycle operations hold one operation mutex end to end, including the
// simulated latency and the store round-trips, so overlapping calls from
// different goroutines are serialized rather than racing last-write-wins on
// the in-memory state.
type Session struct {
	config Config
	store  kv.Store
	clock  Clock
	tokens token.Source
	logger *slog.Logger

	resetStore  *stores.CodeStore
	verifyStore *stores.CodeStore
	audit       *internalaudit.Dispatcher
	metrics     *Metrics

	opMu sync.Mutex

	stateMu  sync.RWMutex
	user     *User
	loading  bool
	watchers []chan Snapshot
}

// Snapshot returns the current observable state triple. The embedded User is
// a copy.
func (s *Session) Snapshot() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		IsLoading:       s.loading,
		IsAuthenticated: s.user != nil,
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// CurrentUser returns a copy of the authenticated user, or nil.
func (s *Session) CurrentUser() *User {
	return s.Snapshot().User
}

// IsAuthenticated reports whether a user is held in memory.
func (s *Session) IsAuthenticated() bool {
	if s == nil {
		return false
	}
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.user != nil
}

// IsLoading reports whether a session check is in flight.
func (s *Session) IsLoading() bool {
	if s == nil {
		return false
	}
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.loading
}

// Watch registers a snapshot channel that receives the state after every
// transition. Delivery is drop-if-full: a slow consumer misses intermediate
// snapshots, never blocks the engine. The channel is never closed.
func (s *Session) Watch(buffer int) <-chan Snapshot {
	if buffer <= 0 {
		buffer = 1
	}
	if s == nil {
		return make(chan Snapshot, buffer)
	}
	ch := make(chan Snapshot, buffer)

	s.stateMu.Lock()
	s.watchers = append(s.watchers, ch)
	s.stateMu.Unlock()

	return ch
}

func (s *Session) setState(user *User, loading bool) {
	s.stateMu.Lock()
	s.user = user
	s.loading = loading
	snap := s.snapshotLocked()
	watchers := s.watchers
	s.stateMu.Unlock()

	for _, ch := range watchers {
		select {
		case ch <- snap:
		default:
		}
	}
}

func (s *Session) setLoading(loading bool) {
	s.stateMu.Lock()
	user := s.user
	s.stateMu.Unlock()
	s.setState(user, loading)
}

// CheckAuth re-reads the persisted session and settles the state machine:
// token and user blob both present and decodable means Authenticated,
// anything else — missing keys, store failure, corrupt JSON — degrades to
// Unauthenticated. IsLoading is true for the duration of the check and false
// afterwards. The resulting snapshot is returned for convenience.
func (s *Session) CheckAuth(ctx context.Context) Snapshot {
	if s == nil {
		return Snapshot{}
	}
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.setLoading(true)
	user := s.readStoredUser(ctx)
	s.setState(user, false)

	if user != nil {
		s.metricInc(MetricCheckAuthAuthenticated)
		s.emitAudit(ctx, "checkauth", user.ID, user.Email, true, "")
	} else {
		s.metricInc(MetricCheckAuthUnauthenticated)
		s.emitAudit(ctx, "checkauth", "", "", false, "")
	}

	return s.Snapshot()
}

// readStoredUser returns the persisted user when both keys hold usable data,
// nil otherwise. Failures are deliberately indistinguishable from absence.
func (s *Session) readStoredUser(ctx context.Context) *User {
	tok, err := s.store.GetItem(ctx, s.config.Storage.TokenKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.logger.Warn("session check: token read failed", "error", err)
		}
		return nil
	}
	if tok == "" {
		return nil
	}

	blob, err := s.store.GetItem(ctx, s.config.Storage.UserKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.logger.Warn("session check: user read failed", "error", err)
		}
		return nil
	}

	var user User
	if err := json.Unmarshal([]byte(blob), &user); err != nil {
		// Corrupt blob counts as no session.
		s.logger.Warn("session check: corrupt user blob", "error", err)
		return nil
	}
	return &user
}

// Login simulates a remote authentication round-trip and establishes an
// authenticated session. The mocked backend accepts any credentials: the
// user is synthesized from the email's local part with a fresh ID. The token
// and the user blob are persisted in that order; a write failure surfaces as
// an error wrapping [ErrStoreUnavailable] and leaves the state
// unauthenticated.
func (s *Session) Login(ctx context.Context, email, password string) (User, error) {
	if s == nil {
		return User{}, ErrEngineNotReady
	}
	_ = password // accepted but never checked in the mocked backend

	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.clock.Sleep(ctx, s.config.Latency.Login); err != nil {
		return User{}, err
	}

	user := User{
		ID:    uuid.NewString(),
		Name:  emailLocalPart(email),
		Email: email,
	}

	if err := s.persistSession(ctx, user); err != nil {
		s.metricInc(MetricLoginFailure)
		s.emitAudit(ctx, "login", user.ID, email, false, err.Error())
		return User{}, err
	}

	s.setAuthenticated(user)
	s.metricInc(MetricLoginSuccess)
	s.emitAudit(ctx, "login", user.ID, email, true, "")
	return user, nil
}

// SignUp simulates a remote registration round-trip. The contract matches
// [Session.Login] with a longer default delay; the supplied name is used
// directly and the user ID derives from the current timestamp.
func (s *Session) SignUp(ctx context.Context, name, email, password string) (User, error) {
	if s == nil {
		return User{}, ErrEngineNotReady
	}
	_ = password

	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.clock.Sleep(ctx, s.config.Latency.SignUp); err != nil {
		return User{}, err
	}

	user := User{
		ID:    strconv.FormatInt(s.clock.Now().UnixMilli(), 10),
		Name:  name,
		Email: email,
	}

	if err := s.persistSession(ctx, user); err != nil {
		s.metricInc(MetricSignUpFailure)
		s.emitAudit(ctx, "signup", user.ID, email, false, err.Error())
		return User{}, err
	}

	s.setAuthenticated(user)
	s.metricInc(MetricSignUpSuccess)
	s.emitAudit(ctx, "signup", user.ID, email, true, "")
	return user, nil
}

// Logout removes both persisted keys and clears the in-memory user. It is
// best-effort: persistence failures are logged and swallowed, the in-memory
// state always ends Unauthenticated, and IsLoading is untouched.
func (s *Session) Logout(ctx context.Context) {
	if s == nil {
		return
	}
	s.opMu.Lock()
	defer s.opMu.Unlock()

	var userID, email string
	if snap := s.Snapshot(); snap.User != nil {
		userID, email = snap.User.ID, snap.User.Email
	}

	if err := s.store.RemoveItem(ctx, s.config.Storage.TokenKey); err != nil {
		s.logger.Warn("logout: token removal failed", "error", err)
	}
	if err := s.store.RemoveItem(ctx, s.config.Storage.UserKey); err != nil {
		s.logger.Warn("logout: user removal failed", "error", err)
	}

	s.stateMu.RLock()
	loading := s.loading
	s.stateMu.RUnlock()
	s.setState(nil, loading)

	s.metricInc(MetricLogout)
	s.emitAudit(ctx, "logout", userID, email, true, "")
}

// persistSession mints a token and writes the two keys sequentially. There
// is no atomicity across the writes; a partial write leaves state the next
// CheckAuth resolves to Unauthenticated.
func (s *Session) persistSession(ctx context.Context, user User) error {
	tok, err := s.tokens.Mint(user.ID, s.clock.Now())
	if err != nil {
		return fmt.Errorf("mint session token: %w", err)
	}

	blob, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	if err := s.store.SetItem(ctx, s.config.Storage.TokenKey, tok); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := s.store.SetItem(ctx, s.config.Storage.UserKey, string(blob)); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Session) setAuthenticated(user User) {
	s.stateMu.RLock()
	loading := s.loading
	s.stateMu.RUnlock()
	s.setState(&user, loading)
}

// Close flushes and stops the audit dispatcher. The session itself holds no
// other resources.
func (s *Session) Close() {
	if s == nil {
		return
	}
	s.audit.Close()
}

// AuditDropped reports how many audit events were dropped under
// backpressure.
func (s *Session) AuditDropped() uint64 {
	if s == nil {
		return 0
	}
	return s.audit.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of all engine counters.
func (s *Session) MetricsSnapshot() MetricsSnapshot {
	if s == nil || s.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return s.metrics.Snapshot()
}

func (s *Session) metricInc(id MetricID) {
	if s == nil || s.metrics == nil {
		return
	}
	s.metrics.Inc(id)
}

func (s *Session) emitAudit(ctx context.Context, eventType, userID, email string, success bool, errMsg string) {
	if s == nil || s.audit == nil {
		return
	}
	s.audit.Emit(ctx, AuditEvent{
		Timestamp: s.clock.Now(),
		EventType: eventType,
		UserID:    userID,
		Email:     email,
		Success:   success,
		Error:     errMsg,
	})
}

func emailLocalPart(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
