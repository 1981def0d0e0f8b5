package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by [Store.GetItem] when the key has no value.
var ErrNotFound = errors.New("kv: key not found")

// ErrUnavailable is returned when the backing store cannot be reached.
var ErrUnavailable = errors.New("kv: store unavailable")

// Store defines a public type used by soilauth APIs.
//
// Store is the abstract persistence collaborator: string keys, string values,
// no ordering or transactional guarantees. Implementations must be safe for
// concurrent use.
type Store interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}
