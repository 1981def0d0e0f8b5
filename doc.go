// Package soilauth implements the SoilSmart client authentication core: a
// session-lifecycle engine over an abstract key-value store, with simulated
// remote latency, audit dispatch, and in-process metrics.
//
// The package is designed for UI-driven workloads: a [Session] is built once
// at application start through [Builder.Build] and passed by reference to
// every consumer. Session methods are safe to call from multiple goroutines;
// lifecycle operations (CheckAuth, Login, SignUp, Logout) are serialized
// internally so overlapping calls cannot interleave their store writes.
//
// # Architecture boundaries
//
// soilauth is the public surface. It exposes [Session], [Builder], [Config],
// and value types (User, Snapshot, AuditEvent, MetricsSnapshot). Event
// dispatch and challenge-code storage live under internal/ and are never
// exported. The persistence collaborator, validation engine, and token
// sources live in the kv, validation, and token sub-packages.
//
// # What this package must NOT do
//
//   - Verify credentials or tokens: the remote backend is simulated, logins
//     always succeed, and stored tokens are checked for presence only.
//   - Perform I/O outside of Session methods and the initial session check
//     inside [Builder.Build].
//   - Import any sub-package that re-imports soilauth (no import cycles).
package soilauth
