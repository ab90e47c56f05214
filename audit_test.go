package authcore

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func waitForEvent(t *testing.T, sink *ChannelSink) AuditEvent {
	t.Helper()

	select {
	case event := <-sink.Events():
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an audit event")
		return AuditEvent{}
	}
}

func newAuditedEngine(t *testing.T, store UserStore) (*Engine, *ChannelSink) {
	t.Helper()

	_, rdb := newTestRedis(t)

	cfg := testConfig()
	cfg.Audit.Enabled = true
	cfg.Audit.BufferSize = 16

	sink := NewChannelSink(16)

	engine, err := New().
		WithConfig(cfg).
		WithRedis(rdb).
		WithUserStore(store).
		WithAuditSink(sink).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	return engine, sink
}

func TestAuditLoginSuccessCarriesNoSecrets(t *testing.T) {
	store := newMockUserStore()
	user := seedUser(t, store, "Alice", "alice@example.com", "correct-horse")

	engine, sink := newAuditedEngine(t, store)

	token, err := engine.Login(context.Background(), "alice@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	event := waitForEvent(t, sink)
	if event.EventType != "login_success" {
		t.Fatalf("unexpected event type %q", event.EventType)
	}
	if !event.Success {
		t.Fatal("expected a success event")
	}
	if event.UserID != user.ID {
		t.Fatalf("user id mismatch: got %q", event.UserID)
	}

	// Serialize the whole event and assert the token never leaks through
	// any field.
	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	if strings.Contains(string(data), token) {
		t.Fatal("audit event must not contain the issued token")
	}
	if strings.Contains(string(data), "correct-horse") {
		t.Fatal("audit event must not contain the raw password")
	}
}

func TestAuditLoginFailure(t *testing.T) {
	store := newMockUserStore()
	seedUser(t, store, "Alice", "alice@example.com", "correct-horse")

	engine, sink := newAuditedEngine(t, store)

	if _, err := engine.Login(context.Background(), "alice@example.com", "wrong"); err == nil {
		t.Fatal("expected the login to fail")
	}

	event := waitForEvent(t, sink)
	if event.EventType != "login_failure" {
		t.Fatalf("unexpected event type %q", event.EventType)
	}
	if event.Success {
		t.Fatal("expected a failure event")
	}
	if event.Error != "invalid_credentials" {
		t.Fatalf("unexpected error code %q", event.Error)
	}
	if event.Metadata["identifier"] != "alice@example.com" {
		t.Fatalf("expected the attempted identifier in metadata, got %v", event.Metadata)
	}
}

func TestAuditLogout(t *testing.T) {
	store := newMockUserStore()
	user := seedUser(t, store, "Alice", "alice@example.com", "correct-horse")

	engine, sink := newAuditedEngine(t, store)
	ctx := context.Background()

	if _, err := engine.Login(ctx, "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	waitForEvent(t, sink) // login_success

	if err := engine.Logout(ctx, user.ID); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	event := waitForEvent(t, sink)
	if event.EventType != "logout_session" {
		t.Fatalf("unexpected event type %q", event.EventType)
	}
	if event.UserID != user.ID || !event.Success {
		t.Fatalf("unexpected event %+v", event)
	}
}

func TestAuditEventsCarryClientIP(t *testing.T) {
	store := newMockUserStore()
	seedUser(t, store, "Alice", "alice@example.com", "correct-horse")

	engine, sink := newAuditedEngine(t, store)
	ctx := WithClientIP(context.Background(), "10.0.0.1")

	if _, err := engine.Login(ctx, "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	event := waitForEvent(t, sink)
	if event.IP != "10.0.0.1" {
		t.Fatalf("expected the client IP from context, got %q", event.IP)
	}
}

func TestJSONWriterSinkWritesLines(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), AuditEvent{EventType: "login_success", Success: true})
	sink.Emit(context.Background(), AuditEvent{EventType: "logout_session", Success: true})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	for _, line := range lines {
		var event AuditEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			t.Fatalf("line %q is not valid JSON: %v", line, err)
		}
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	// A sink that never consumes; the 1-slot buffer fills after one event.
	blocked := make(chan struct{})

	d := newAuditDispatcher(AuditConfig{
		Enabled:    true,
		BufferSize: 1,
		DropIfFull: true,
	}, blockingSink{blocked})

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		d.Emit(ctx, AuditEvent{EventType: "login_failure"})
	}

	if d.Dropped() == 0 {
		t.Fatal("expected dropped events with a full buffer and DropIfFull set")
	}

	// Unblock the sink before Close waits on the worker.
	close(blocked)
	d.Close()
}

type blockingSink struct {
	release <-chan struct{}
}

func (s blockingSink) Emit(context.Context, AuditEvent) {
	<-s.release
}
