package soilauth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	internalaudit "github.com/soilsmart/soilauth/internal/audit"
	"github.com/soilsmart/soilauth/internal/stores"
	"github.com/soilsmart/soilauth/kv"
	"github.com/soilsmart/soilauth/token"
)

// Builder defines a public type used by soilauth APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	store  kv.Store
	clock  Clock
	tokens token.Source
	logger *slog.Logger

	auditSink AuditSink

	built bool
}

// New creates a [Builder] pre-loaded with the default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the builder's configuration. The config is cloned; the
// caller's copy can be reused.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithStore installs the key-value persistence collaborator. A store is
// required; [Builder.Build] fails without one.
func (b *Builder) WithStore(store kv.Store) *Builder {
	b.store = store
	return b
}

// WithClock installs a [Clock]. Defaults to [SystemClock]; tests inject a
// fake so simulated latency costs nothing.
func (b *Builder) WithClock(clock Clock) *Builder {
	b.clock = clock
	return b
}

// WithTokenSource installs a [token.Source]. Defaults to
// [token.OpaqueSource].
func (b *Builder) WithTokenSource(src token.Source) *Builder {
	b.tokens = src
	return b
}

// WithLogger installs a structured logger for swallowed errors. Defaults to
// [slog.Default].
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithAuditSink installs an [AuditSink]. Events are dispatched only when
// [AuditConfig.Enabled] is true.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// Build validates the configuration, assembles the [Session], and runs the
// initial session check against the store. The returned session is past its
// Initializing state: IsLoading is already false.
//
// A builder can be used once.
func (b *Builder) Build(ctx context.Context) (*Session, error) {
	if b == nil {
		return nil, ErrEngineNotReady
	}
	if b.built {
		return nil, errors.New("builder already used")
	}
	if b.store == nil {
		return nil, errors.New("key-value store is required")
	}

	cfg := cloneConfig(b.config)
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	clock := b.clock
	if clock == nil {
		clock = systemClock{}
	}
	tokens := b.tokens
	if tokens == nil {
		tokens = token.OpaqueSource{}
	}
	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{
		config:  cfg,
		store:   b.store,
		clock:   clock,
		tokens:  tokens,
		logger:  logger,
		loading: true,
		resetStore: stores.NewCodeStore(
			b.store, cfg.Storage.ResetPrefix, cfg.PasswordReset.MaxAttempts),
		verifyStore: stores.NewCodeStore(
			b.store, cfg.Storage.VerifyPrefix, cfg.Verification.MaxAttempts),
		audit: internalaudit.NewDispatcher(internalaudit.Config{
			Enabled:    cfg.Audit.Enabled,
			BufferSize: cfg.Audit.BufferSize,
			DropIfFull: cfg.Audit.DropIfFull,
		}, b.auditSink),
		metrics: NewMetrics(cfg.Metrics),
	}

	b.built = true

	s.CheckAuth(ctx)
	return s, nil
}
