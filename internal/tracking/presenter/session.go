package presenter

import (
	"sync"
	"time"
)

// Sink receives timer snapshots to render. It exposes no inputs back to the
// session; rendering is purely a side effect.
type Sink interface {
	Render(snapshot Snapshot)
}

// Session drives the live timer for the currently selected conversation,
// pushing a snapshot to the sink once per second while the record is pending.
// Switching selection starts a new session; Start stops the previous one, so
// a store call that completes late cannot resurrect a stale timer.
type Session struct {
	sink     Sink
	interval time.Duration

	mu      sync.Mutex
	current string
	stop    chan struct{}
}

// NewSession creates a session rendering to sink at the standard 1 Hz cadence.
func NewSession(sink Sink) *Session {
	return &Session{sink: sink, interval: time.Second}
}

// Start begins ticking for a pending conversation, replacing whatever was
// ticking before.
func (s *Session) Start(conversationID string, receivedAt time.Time, slaMinutes int) {
	s.mu.Lock()
	s.stopLocked()
	s.current = conversationID
	stop := make(chan struct{})
	s.stop = stop
	s.mu.Unlock()

	go func() {
		s.render(conversationID, receivedAt, slaMinutes)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.render(conversationID, receivedAt, slaMinutes)
			case <-stop:
				return
			}
		}
	}()
}

// Stop halts the timer, typically because the selection moved off the item
// or the record transitioned to replied.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.current = ""
}

// Current returns the conversation the session is ticking for, or "".
func (s *Session) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Session) stopLocked() {
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}

func (s *Session) render(conversationID string, receivedAt time.Time, slaMinutes int) {
	// A tick can race with Start for a new selection; drop the render if this
	// goroutine no longer owns the session.
	if s.Current() != conversationID {
		return
	}
	s.sink.Render(Compute(conversationID, receivedAt, slaMinutes, time.Now()))
}
