package repository

import (
	"time"

	"github.com/openvoice/openvoice-backend/internal/domain"
	"gorm.io/gorm"
)

// BlockRepository block data access interface
type BlockRepository interface {
	Create(blockerID, blockedID string) error
	Delete(blockerID, blockedID string) error
	Exists(blockerID, blockedID string) (bool, error)
	ListByBlocker(blockerID string) ([]*domain.BlockResponse, error)
}

type blockRepository struct {
	db *gorm.DB
}

// NewBlockRepository creates a new BlockRepository
func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepository{db: db}
}

// Create adds a block edge
func (r *blockRepository) Create(blockerID, blockedID string) error {
	return r.db.Create(&domain.BlockedUser{
		BlockerID: blockerID,
		BlockedID: blockedID,
	}).Error
}

// Delete removes a block edge by composite key
func (r *blockRepository) Delete(blockerID, blockedID string) error {
	result := r.db.Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&domain.BlockedUser{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists checks if a block edge exists
func (r *blockRepository) Exists(blockerID, blockedID string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.BlockedUser{}).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Count(&count).Error
	return count > 0, err
}

// ListByBlocker returns blocks with the blocked profile joined in
func (r *blockRepository) ListByBlocker(blockerID string) ([]*domain.BlockResponse, error) {
	var rows []struct {
		BlockedID string
		Username  string
		AvatarURL string
		CreatedAt time.Time
	}
	err := r.db.Table("blocked_users").
		Select("blocked_users.blocked_id, profiles.username, profiles.avatar_url, blocked_users.created_at").
		Joins("LEFT JOIN profiles ON profiles.id = blocked_users.blocked_id").
		Where("blocked_users.blocker_id = ?", blockerID).
		Order("blocked_users.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	blocks := make([]*domain.BlockResponse, 0, len(rows))
	for _, row := range rows {
		blocks = append(blocks, &domain.BlockResponse{
			BlockedID: row.BlockedID,
			Username:  row.Username,
			AvatarURL: row.AvatarURL,
			BlockedAt: row.CreatedAt.Format(time.RFC3339),
		})
	}
	return blocks, nil
}
