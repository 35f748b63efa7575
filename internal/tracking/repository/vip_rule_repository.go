package repository

import (
	"errors"

	"github.com/kranuabs13/Emailtrackmaster/internal/tracking/domain"

	"gorm.io/gorm"
)

// gormVipRuleRepository implements VipRuleRepository using GORM
type gormVipRuleRepository struct {
	db *gorm.DB
}

// NewVipRuleRepository creates a new GORM-based VipRuleRepository
func NewVipRuleRepository(db *gorm.DB) VipRuleRepository {
	return &gormVipRuleRepository{db: db}
}

func (r *gormVipRuleRepository) FindBySender(senderEmail string) (*domain.VipRule, error) {
	var rule domain.VipRule
	err := r.db.Where("sender_email = ?", senderEmail).First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}
