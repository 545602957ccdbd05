package app

import (
	"context"
	"testing"
)

func TestCacheValues(t *testing.T) {
	ctx := ContextWithCache(context.Background())

	val, found := GetCacheValue(ctx, []any{"a", 1}, "fallback")
	if found || val != "fallback" {
		t.Fatalf("expected fallback on empty cache, got %v (found=%v)", val, found)
	}

	reset := SetCacheValue(ctx, []any{"a", 1}, "cached")
	val, found = GetCacheValue(ctx, []any{"a", 1}, "fallback")
	if !found || val != "cached" {
		t.Fatalf("expected cached value, got %v (found=%v)", val, found)
	}

	reset()
	val, found = GetCacheValue(ctx, []any{"a", 1}, "fallback")
	if found || val != "fallback" {
		t.Fatalf("expected fallback after reset, got %v (found=%v)", val, found)
	}
}

func TestCacheTypeMismatch(t *testing.T) {
	ctx := ContextWithCache(context.Background())
	defer SetCacheValue(ctx, []any{"n"}, 42)()

	val, found := GetCacheValue(ctx, []any{"n"}, "fallback")
	if found || val != "fallback" {
		t.Fatalf("expected fallback on type mismatch, got %v (found=%v)", val, found)
	}
}

func TestCacheWithoutContext(t *testing.T) {
	ctx := context.Background()

	val, found := GetCacheValue(ctx, []any{"a"}, 7)
	if found || val != 7 {
		t.Fatalf("expected fallback without cache in context, got %v (found=%v)", val, found)
	}

	// Setting without a cache is a no-op, not a panic.
	reset := SetCacheValue(ctx, []any{"a"}, 1)
	reset()
}
