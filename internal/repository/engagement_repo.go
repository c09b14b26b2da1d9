package repository

import (
	"fmt"

	"github.com/openvoice/openvoice-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EngagementRepository accesses the like/save/repost edge tables.
// Every operation addresses edges by the (post_id, user_id) composite key,
// which keeps insert/delete naturally idempotent under the at-most-one-edge
// constraint.
type EngagementRepository interface {
	CountByPost(postID int64, kind domain.EngagementKind) (int64, error)
	Exists(postID int64, userID string, kind domain.EngagementKind) (bool, error)
	CreateEdge(postID int64, userID string, kind domain.EngagementKind) error
	DeleteEdge(postID int64, userID string, kind domain.EngagementKind) error
	UpsertQuote(postID int64, userID string, quote string) error
	ListSavedPostIDs(userID string) ([]int64, error)
}

type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new EngagementRepository
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func edgeModel(kind domain.EngagementKind) (interface{}, error) {
	switch kind {
	case domain.KindLike:
		return &domain.Like{}, nil
	case domain.KindSave:
		return &domain.Save{}, nil
	case domain.KindRepost:
		return &domain.Repost{}, nil
	}
	return nil, fmt.Errorf("unknown engagement kind %q", kind)
}

// CountByPost counts the edges of one kind for a post
func (r *engagementRepository) CountByPost(postID int64, kind domain.EngagementKind) (int64, error) {
	model, err := edgeModel(kind)
	if err != nil {
		return 0, err
	}
	var count int64
	err = r.db.Model(model).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// Exists checks for a viewer's edge of one kind on a post
func (r *engagementRepository) Exists(postID int64, userID string, kind domain.EngagementKind) (bool, error) {
	model, err := edgeModel(kind)
	if err != nil {
		return false, err
	}
	var count int64
	err = r.db.Model(model).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

// CreateEdge inserts a viewer's edge of one kind
func (r *engagementRepository) CreateEdge(postID int64, userID string, kind domain.EngagementKind) error {
	switch kind {
	case domain.KindLike:
		return r.db.Create(&domain.Like{PostID: postID, UserID: userID}).Error
	case domain.KindSave:
		return r.db.Create(&domain.Save{PostID: postID, UserID: userID}).Error
	case domain.KindRepost:
		return r.db.Create(&domain.Repost{PostID: postID, UserID: userID}).Error
	}
	return fmt.Errorf("unknown engagement kind %q", kind)
}

// DeleteEdge removes a viewer's edge of one kind by composite key
func (r *engagementRepository) DeleteEdge(postID int64, userID string, kind domain.EngagementKind) error {
	model, err := edgeModel(kind)
	if err != nil {
		return err
	}
	return r.db.Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(model).Error
}

// UpsertQuote writes a repost edge carrying quote text, overwriting the
// quote when the viewer already reposted the post
func (r *engagementRepository) UpsertQuote(postID int64, userID string, quote string) error {
	repost := &domain.Repost{PostID: postID, UserID: userID, Quote: &quote}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quote"}),
	}).Create(repost).Error
}

// ListSavedPostIDs returns the post ids of a viewer's save edges
func (r *engagementRepository) ListSavedPostIDs(userID string) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&domain.Save{}).
		Where("user_id = ?", userID).
		Pluck("post_id", &ids).Error
	return ids, err
}
