package domain

import "time"

// VipRule overrides the default SLA window for a specific sender.
// Rules are managed outside this service; the tracker only reads them.
type VipRule struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	SenderEmail string    `json:"sender_email" gorm:"uniqueIndex;not null"`
	SLAMinutes  int       `json:"sla_minutes" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (VipRule) TableName() string {
	return "vip_rules"
}
