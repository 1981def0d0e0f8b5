package kv

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.GetItem(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetItem on empty store = %v, want ErrNotFound", err)
	}

	if err := store.SetItem(ctx, "k", "v1"); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	if err := store.SetItem(ctx, "k", "v2"); err != nil {
		t.Fatalf("SetItem overwrite failed: %v", err)
	}

	val, err := store.GetItem(ctx, "k")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if val != "v2" {
		t.Fatalf("GetItem = %q, want %q", val, "v2")
	}

	if err := store.RemoveItem(ctx, "k"); err != nil {
		t.Fatalf("RemoveItem failed: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("Len = %d, want 0", store.Len())
	}
}

func TestMemoryStoreConcurrent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", n)
			_ = store.SetItem(ctx, key, "v")
			_, _ = store.GetItem(ctx, key)
			_ = store.RemoveItem(ctx, key)
		}(i)
	}
	wg.Wait()

	if store.Len() != 0 {
		t.Fatalf("Len = %d, want 0", store.Len())
	}
}
