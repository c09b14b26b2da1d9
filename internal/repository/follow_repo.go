package repository

import (
	"github.com/openvoice/openvoice-backend/internal/domain"
	"gorm.io/gorm"
)

// FollowRepository follow data access interface
type FollowRepository interface {
	Create(followerID, followingID string) error
	Delete(followerID, followingID string) error
	Exists(followerID, followingID string) (bool, error)
	CountFollowers(profileID string) (int64, error)
	CountFollowing(profileID string) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new FollowRepository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create adds a follow edge
func (r *followRepository) Create(followerID, followingID string) error {
	return r.db.Create(&domain.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}).Error
}

// Delete removes a follow edge by composite key
func (r *followRepository) Delete(followerID, followingID string) error {
	return r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&domain.Follow{}).Error
}

// Exists checks if a follow edge exists
func (r *followRepository) Exists(followerID, followingID string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

// CountFollowers counts members following the profile
func (r *followRepository) CountFollowers(profileID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Follow{}).
		Where("following_id = ?", profileID).
		Count(&count).Error
	return count, err
}

// CountFollowing counts profiles the member follows
func (r *followRepository) CountFollowing(profileID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Follow{}).
		Where("follower_id = ?", profileID).
		Count(&count).Error
	return count, err
}
