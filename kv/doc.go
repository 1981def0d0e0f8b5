// Package kv defines the key-value persistence collaborator consumed by the
// soilauth session engine, together with the two shipped implementations:
// a Redis-backed store for real deployments and an in-memory store for tests
// and examples.
//
// The session engine is the sole writer of its keys; kv makes no transactional
// guarantees across keys.
package kv
