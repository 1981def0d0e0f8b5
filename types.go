package soilauth

import (
	"context"
	"io"
	"time"

	internalaudit "github.com/soilsmart/soilauth/internal/audit"
)

// User is the authenticated account held by a [Session]. It is created by
// Login/SignUp, immutable for the lifetime of the session, and cleared on
// logout. The JSON form is what gets persisted under the user-blob key.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Snapshot is the observable state triple of a [Session].
//
// IsAuthenticated is derived: it is true exactly when User is non-nil. The
// User pointer is a copy; mutating it does not affect the session.
type Snapshot struct {
	User            *User
	IsLoading       bool
	IsAuthenticated bool
}

// Clock abstracts time and simulated latency so tests can run without real
// delays. Sleep must return early with ctx.Err() when the context is
// canceled.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SystemClock returns the real-time [Clock] used when none is injected.
func SystemClock() Clock {
	return systemClock{}
}

// AuditEvent is a structured audit record emitted by the session engine.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the engine's audit dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
