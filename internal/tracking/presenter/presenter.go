package presenter

import (
	"fmt"
	"time"
)

// DashboardRefreshInterval is the taskpane's stats poll cadence.
const DashboardRefreshInterval = 30 * time.Second

// Snapshot is one rendering of the live SLA timer. It is derived from the
// record's timestamps on every tick, never stored.
type Snapshot struct {
	ConversationID string        `json:"conversation_id"`
	Elapsed        time.Duration `json:"-"`
	Formatted      string        `json:"elapsed"`
	OverSLA        bool          `json:"over_sla"`
}

// Compute derives the timer state for a pending record as of now.
// The SLA boundary is strict: elapsed equal to the window is still within SLA.
func Compute(conversationID string, receivedAt time.Time, slaMinutes int, now time.Time) Snapshot {
	elapsed := now.Sub(receivedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	return Snapshot{
		ConversationID: conversationID,
		Elapsed:        elapsed,
		Formatted:      FormatElapsed(elapsed),
		OverSLA:        elapsed > time.Duration(slaMinutes)*time.Minute,
	}
}

// FormatElapsed renders a duration as zero-padded HH:MM:SS, hours unbounded.
func FormatElapsed(elapsed time.Duration) string {
	totalSeconds := int64(elapsed / time.Second)
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
