package repository

import (
	"time"

	"github.com/kranuabs13/Emailtrackmaster/internal/tracking/domain"
)

// EmailRecordRepository defines the store operations the reconciler consumes.
// Lookup methods return (nil, nil) when no row matches; a miss is not an error.
type EmailRecordRepository interface {
	// FindByConversationID finds the record for a conversation, any status
	FindByConversationID(conversationID string) (*domain.EmailRecord, error)

	// FindPendingByConversationID finds the record only if it is still pending
	FindPendingByConversationID(conversationID string) (*domain.EmailRecord, error)

	// InsertIfAbsent creates the record, relying on the conversation_id unique
	// index. Returns conflict=true when another session already inserted one;
	// the caller resolves that by re-reading, not by retrying.
	InsertIfAbsent(record *domain.EmailRecord) (conflict bool, err error)

	// MarkRepliedIfPending transitions pending -> replied with the reply
	// timestamp and latency. Returns updated=false when the record was not
	// pending (or does not exist); that is a harmless no-op for the caller.
	MarkRepliedIfPending(conversationID string, repliedAt time.Time, responseTimeSeconds int64) (updated bool, err error)

	// FindByUserEmail returns all records tracked for a mailbox
	FindByUserEmail(userEmail string) ([]*domain.EmailRecord, error)
}

// VipRuleRepository reads per-sender SLA overrides
type VipRuleRepository interface {
	// FindBySender returns the rule for an exact sender address, (nil, nil) on miss
	FindBySender(senderEmail string) (*domain.VipRule, error)
}
