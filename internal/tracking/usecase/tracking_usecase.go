package usecase

import (
	"log"
	"time"

	"github.com/kranuabs13/Emailtrackmaster/internal/tracking/domain"
	"github.com/kranuabs13/Emailtrackmaster/internal/tracking/repository"
)

// trackingUsecase implements TrackingUsecase
type trackingUsecase struct {
	recordRepo repository.EmailRecordRepository
	resolver   SLAResolver
}

// NewTrackingUsecase creates a new instance of trackingUsecase
func NewTrackingUsecase(recordRepo repository.EmailRecordRepository, resolver SLAResolver) TrackingUsecase {
	return &trackingUsecase{
		recordRepo: recordRepo,
		resolver:   resolver,
	}
}

func (u *trackingUsecase) HandleSelectionChanged(userEmail, conversationID, senderEmail string, receivedAt time.Time) (*domain.EmailRecord, error) {
	record, err := u.recordRepo.FindByConversationID(conversationID)
	if err != nil {
		return nil, err
	}
	if record != nil {
		return record, nil
	}

	// First observation of this conversation. VIP status and the SLA window
	// are decided now and never revisited.
	isVip, slaMinutes := u.resolver.Resolve(senderEmail)
	candidate := &domain.EmailRecord{
		UserEmail:      userEmail,
		SenderEmail:    senderEmail,
		ConversationID: conversationID,
		ReceivedAt:     receivedAt,
		IsVip:          isVip,
		SLAMinutes:     slaMinutes,
		Status:         domain.StatusPending,
	}

	conflict, err := u.recordRepo.InsertIfAbsent(candidate)
	if err != nil {
		return nil, err
	}
	if conflict {
		// Another session created the record between our read and insert.
		// The store's unique index already picked the winner; re-read it.
		log.Printf("[Reconciler] insert conflict on conversation %s, re-reading", conversationID)
		return u.recordRepo.FindByConversationID(conversationID)
	}
	return candidate, nil
}

func (u *trackingUsecase) HandleSend(conversationID string, now time.Time) bool {
	record, err := u.recordRepo.FindPendingByConversationID(conversationID)
	if err != nil {
		// Never block outbound mail over a store failure; the reply simply
		// goes unrecorded.
		log.Printf("[Reconciler] read failed on send for conversation %s: %v", conversationID, err)
		return false
	}
	if record == nil {
		// Untracked, or already replied. Nothing to reconcile.
		return false
	}

	responseTime := ResponseTimeSeconds(record.ReceivedAt, now)
	updated, err := u.recordRepo.MarkRepliedIfPending(conversationID, now, responseTime)
	if err != nil {
		log.Printf("[Reconciler] update failed on send for conversation %s: %v", conversationID, err)
		return false
	}
	if !updated {
		// A concurrent send-path update landed first; its timestamps stand.
		return false
	}
	return true
}

func (u *trackingUsecase) GetByConversation(conversationID string) (*domain.EmailRecord, error) {
	return u.recordRepo.FindByConversationID(conversationID)
}

func (u *trackingUsecase) DashboardStats(userEmail string, now time.Time) (*Stats, error) {
	records, err := u.recordRepo.FindByUserEmail(userEmail)
	if err != nil {
		return nil, err
	}
	stats := Aggregate(records, now)
	return &stats, nil
}

// ResponseTimeSeconds is the reply latency, floored to whole seconds and
// clamped to zero for clock skew between the mail client and the server.
func ResponseTimeSeconds(receivedAt, repliedAt time.Time) int64 {
	seconds := int64(repliedAt.Sub(receivedAt) / time.Second)
	if seconds < 0 {
		return 0
	}
	return seconds
}
