package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryGetWithinTTL(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Set(ctx, "sig", []byte(`{"results":[]}`), time.Minute)
	got, ok := m.Get(ctx, "sig")
	if !ok {
		t.Fatal("expected hit within TTL")
	}
	if string(got) != `{"results":[]}` {
		t.Fatalf("unexpected payload %q", got)
	}
}

func TestMemoryMissWhenUnset(t *testing.T) {
	m := NewMemory()
	if _, ok := m.Get(context.Background(), "nope"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Set(ctx, "sig", []byte("v"), 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)

	if _, ok := m.Get(ctx, "sig"); ok {
		t.Fatal("expected expired entry to read as absent")
	}
}

func TestMemoryOverwriteResetsExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Set(ctx, "sig", []byte("old"), 15*time.Millisecond)
	m.Set(ctx, "sig", []byte("new"), 200*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	got, ok := m.Get(ctx, "sig")
	if !ok {
		t.Fatal("expected overwritten entry to still be fresh")
	}
	if string(got) != "new" {
		t.Fatalf("expected replacement payload, got %q", got)
	}
}
