package debugserver

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNewAssignsDistinctSessionIDs(t *testing.T) {
	a, b := New(), New()
	if a.Session() == "" {
		t.Error("Session() should not be empty")
	}
	if a.Session() == b.Session() {
		t.Error("two servers should get distinct session ids")
	}
}

func TestEmitCallAndExceptionAreNilSafe(t *testing.T) {
	var s *Server
	s.EmitCall("foo")
	s.EmitException("ValueError", "bad")
}

func TestEmitPublishesOntoEventsChannel(t *testing.T) {
	s := New()
	s.EmitCall("greet")
	select {
	case ev := <-s.events:
		if ev.Kind != EventCall || ev.Name != "greet" || ev.Session != s.Session() {
			t.Errorf("event = %+v, want a call event named greet for this session", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("EmitCall should publish onto the events channel without blocking")
	}
}

func TestEmitExceptionEventShape(t *testing.T) {
	s := New()
	s.EmitException("ValueError", "bad input")
	ev := <-s.events
	if ev.Kind != EventException || ev.Name != "ValueError" || ev.Message != "bad input" {
		t.Errorf("event = %+v, want an exception event with kind/message set", ev)
	}
}

func TestRunBroadcastsToRegisteredClient(t *testing.T) {
	s := New()
	send := make(chan Event, 1)
	s.mu.Lock()
	s.clients["c1"] = &client{send: send}
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	s.EmitCall("f")
	select {
	case ev := <-send:
		if ev.Name != "f" {
			t.Errorf("broadcast event = %+v, want Name=f", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("Run should broadcast the emitted event to the registered client")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil on clean shutdown", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run should return promptly once ctx is cancelled")
	}
}

func TestMarshalEvent(t *testing.T) {
	s, err := MarshalEvent(Event{Session: "s1", Kind: EventCall, Name: "f"})
	if err != nil {
		t.Fatalf("MarshalEvent: %v", err)
	}
	if !strings.Contains(s, `"kind":"call"`) || !strings.Contains(s, `"name":"f"`) {
		t.Errorf("MarshalEvent = %q, missing expected fields", s)
	}
}
