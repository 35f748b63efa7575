package repository

import (
	"errors"
	"time"

	"github.com/kranuabs13/Emailtrackmaster/internal/tracking/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormEmailRecordRepository implements EmailRecordRepository using GORM
type gormEmailRecordRepository struct {
	db *gorm.DB
}

// NewEmailRecordRepository creates a new GORM-based EmailRecordRepository
func NewEmailRecordRepository(db *gorm.DB) EmailRecordRepository {
	return &gormEmailRecordRepository{db: db}
}

func (r *gormEmailRecordRepository) FindByConversationID(conversationID string) (*domain.EmailRecord, error) {
	var record domain.EmailRecord
	err := r.db.Where("conversation_id = ?", conversationID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *gormEmailRecordRepository) FindPendingByConversationID(conversationID string) (*domain.EmailRecord, error) {
	var record domain.EmailRecord
	err := r.db.Where("conversation_id = ? AND status = ?", conversationID, domain.StatusPending).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *gormEmailRecordRepository) InsertIfAbsent(record *domain.EmailRecord) (bool, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	err := r.db.Create(record).Error
	if err != nil {
		// Requires TranslateError on the gorm config so the postgres unique
		// violation maps to ErrDuplicatedKey.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

func (r *gormEmailRecordRepository) MarkRepliedIfPending(conversationID string, repliedAt time.Time, responseTimeSeconds int64) (bool, error) {
	result := r.db.Model(&domain.EmailRecord{}).
		Where("conversation_id = ? AND status = ?", conversationID, domain.StatusPending).
		Updates(map[string]interface{}{
			"status":                domain.StatusReplied,
			"replied_at":            repliedAt,
			"response_time_seconds": responseTimeSeconds,
			"updated_at":            time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *gormEmailRecordRepository) FindByUserEmail(userEmail string) ([]*domain.EmailRecord, error) {
	var records []*domain.EmailRecord
	err := r.db.Where("user_email = ?", userEmail).Order("received_at DESC").Find(&records).Error
	return records, err
}
