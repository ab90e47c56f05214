package session

import (
	"context"
	"testing"
	"time"
)

func TestDeleteRemovesRecord(t *testing.T) {
	mr, store := newTestStore(t)
	ctx := context.Background()

	record := &Record{UserID: "user-123", Name: "Alice", Email: "alice@example.com", Token: "token-abc"}
	if err := store.Save(ctx, record, time.Hour); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := store.Delete(ctx, "user-123"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if mr.Exists(store.Key("user-123")) {
		t.Fatal("expected the key to be gone")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()

	if err := store.Delete(ctx, "nobody"); err != nil {
		t.Fatalf("deleting a missing session must not fail: %v", err)
	}
	if err := store.Delete(ctx, "nobody"); err != nil {
		t.Fatalf("repeated delete must not fail: %v", err)
	}
}
