// Package token mints the opaque session tokens persisted by the soilauth
// engine.
//
// The default [OpaqueSource] produces timestamp-derived strings that carry no
// verifiable content, matching the mocked design: the engine only ever checks
// for token presence. [JWTSource] is an optional drop-in that mints signed
// HS256 tokens for deployments that want to graduate to verifiable sessions
// without touching the engine.
package token
