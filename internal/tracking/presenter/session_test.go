package presenter

import (
	"sync"
	"testing"
	"time"
)

type recordingSink struct {
	mu        sync.Mutex
	snapshots []Snapshot
}

func (s *recordingSink) Render(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = append(s.snapshots, snapshot)
}

func (s *recordingSink) conversations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, len(s.snapshots))
	for i, snap := range s.snapshots {
		ids[i] = snap.ConversationID
	}
	return ids
}

func TestSessionRendersImmediately(t *testing.T) {
	sink := &recordingSink{}
	session := NewSession(sink)
	defer session.Stop()

	session.Start("c1", time.Now().Add(-time.Minute), 120)

	deadline := time.After(time.Second)
	for {
		if len(sink.conversations()) > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("no snapshot rendered after Start")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if got := sink.conversations()[0]; got != "c1" {
		t.Errorf("first snapshot for conversation %q, want c1", got)
	}
}

func TestSessionSwitchStopsPreviousConversation(t *testing.T) {
	sink := &recordingSink{}
	session := NewSession(sink)
	session.interval = 10 * time.Millisecond
	defer session.Stop()

	session.Start("old", time.Now().Add(-time.Minute), 120)
	time.Sleep(30 * time.Millisecond)
	session.Start("new", time.Now().Add(-time.Minute), 120)
	time.Sleep(30 * time.Millisecond)

	if session.Current() != "new" {
		t.Fatalf("Current() = %q, want new", session.Current())
	}

	// Nothing rendered for the old conversation after the switch settled.
	time.Sleep(30 * time.Millisecond)
	before := len(sink.conversations())
	time.Sleep(50 * time.Millisecond)
	for _, id := range sink.conversations()[before:] {
		if id == "old" {
			t.Error("stale timer rendered after selection switched")
		}
	}
}

func TestSessionStopHaltsRendering(t *testing.T) {
	sink := &recordingSink{}
	session := NewSession(sink)
	session.interval = 10 * time.Millisecond

	session.Start("c1", time.Now().Add(-time.Minute), 120)
	time.Sleep(30 * time.Millisecond)
	session.Stop()

	if session.Current() != "" {
		t.Errorf("Current() = %q after Stop, want empty", session.Current())
	}

	time.Sleep(20 * time.Millisecond)
	count := len(sink.conversations())
	time.Sleep(50 * time.Millisecond)
	if got := len(sink.conversations()); got != count {
		t.Errorf("renders continued after Stop: %d -> %d", count, got)
	}
}
