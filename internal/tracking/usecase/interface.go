package usecase

import (
	"time"

	"github.com/kranuabs13/Emailtrackmaster/internal/tracking/domain"
)

// SLAResolver decides the SLA window for a sender at record-creation time.
type SLAResolver interface {
	// Resolve returns (true, rule SLA) for VIP senders, (false, default) otherwise.
	// Store failures fall through to the default; resolution never errors.
	Resolve(senderEmail string) (isVip bool, slaMinutes int)
}

// TrackingUsecase is the reconciliation core behind the two mail-client events.
type TrackingUsecase interface {
	// HandleSelectionChanged materializes the record for a newly viewed
	// conversation, or returns the existing one. receivedAt comes from the
	// message's creation timestamp on the mail client.
	HandleSelectionChanged(userEmail, conversationID, senderEmail string, receivedAt time.Time) (*domain.EmailRecord, error)

	// HandleSend marks a pending conversation replied and records the reply
	// latency. Untracked or already-replied conversations are a no-op.
	// Returns whether a record transitioned.
	HandleSend(conversationID string, now time.Time) bool

	// GetByConversation reads the record for a conversation, (nil, nil) on miss
	GetByConversation(conversationID string) (*domain.EmailRecord, error)

	// DashboardStats aggregates the mailbox's records as of now
	DashboardStats(userEmail string, now time.Time) (*Stats, error)
}
