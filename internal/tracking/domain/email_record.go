package domain

import "time"

// Status of a tracked conversation. The only transition is pending -> replied.
type Status string

const (
	StatusPending Status = "pending"
	StatusReplied Status = "replied"
)

// DefaultSLAMinutes applies to senders without a VIP rule (2 hours).
const DefaultSLAMinutes = 120

// EmailRecord tracks reply latency for one conversation. Exactly one record
// exists per ConversationID; the store's unique index enforces it.
type EmailRecord struct {
	ID                  string     `json:"id" gorm:"primaryKey"`
	UserEmail           string     `json:"user_email" gorm:"index;not null"`
	SenderEmail         string     `json:"sender_email" gorm:"not null"`
	ConversationID      string     `json:"conversation_id" gorm:"uniqueIndex;not null"`
	ReceivedAt          time.Time  `json:"received_at"`
	RepliedAt           *time.Time `json:"replied_at,omitempty"`
	ResponseTimeSeconds *int64     `json:"response_time_seconds,omitempty"`
	IsVip               bool       `json:"is_vip"`
	SLAMinutes          int        `json:"sla_minutes"`
	Status              Status     `json:"status" gorm:"index;default:pending"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (EmailRecord) TableName() string {
	return "email_records"
}

// IsPending reports whether the conversation still awaits a reply.
func (r *EmailRecord) IsPending() bool {
	return r.Status == StatusPending
}
