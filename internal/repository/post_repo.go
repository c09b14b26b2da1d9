package repository

import (
	"github.com/openvoice/openvoice-backend/internal/domain"
	"gorm.io/gorm"
)

const postColumns = "posts.id, posts.user_id, posts.title, posts.content, " +
	"posts.image_url, posts.source, posts.created_at, " +
	"profiles.username, profiles.avatar_url"

// PostRepository post data access interface
type PostRepository interface {
	Create(post *domain.Post) error
	FindByID(id int64) (*domain.Post, error)
	ListRecent(limit int) ([]*domain.PostResponse, error)
	ListByAuthor(userID string, limit int) ([]*domain.PostResponse, error)
	// SearchByContent matches topic as a case-insensitive substring of the
	// post content. The topic reaches ILIKE unescaped, so % and _ act as
	// wildcards.
	SearchByContent(topic string, limit int) ([]*domain.PostResponse, error)
	FindByIDs(ids []int64) ([]*domain.PostResponse, error)
	Delete(id int64) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a post
func (r *postRepository) Create(post *domain.Post) error {
	return r.db.Create(post).Error
}

// FindByID returns a single post without the author join
func (r *postRepository) FindByID(id int64) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) joined() *gorm.DB {
	return r.db.Table("posts").
		Select(postColumns).
		Joins("LEFT JOIN profiles ON profiles.id = posts.user_id")
}

// ListRecent returns the newest posts with their authors joined in
func (r *postRepository) ListRecent(limit int) ([]*domain.PostResponse, error) {
	var posts []*domain.PostResponse
	err := r.joined().
		Order("posts.created_at DESC").
		Limit(limit).
		Scan(&posts).Error
	return posts, err
}

// ListByAuthor returns one member's posts, newest first
func (r *postRepository) ListByAuthor(userID string, limit int) ([]*domain.PostResponse, error) {
	var posts []*domain.PostResponse
	err := r.joined().
		Where("posts.user_id = ?", userID).
		Order("posts.created_at DESC").
		Limit(limit).
		Scan(&posts).Error
	return posts, err
}

// SearchByContent returns posts whose content contains the topic
func (r *postRepository) SearchByContent(topic string, limit int) ([]*domain.PostResponse, error) {
	var posts []*domain.PostResponse
	err := r.joined().
		Where("posts.content ILIKE ?", "%"+topic+"%").
		Order("posts.created_at DESC").
		Limit(limit).
		Scan(&posts).Error
	return posts, err
}

// FindByIDs returns the posts in the id set, newest first
func (r *postRepository) FindByIDs(ids []int64) ([]*domain.PostResponse, error) {
	if len(ids) == 0 {
		return []*domain.PostResponse{}, nil
	}
	var posts []*domain.PostResponse
	err := r.joined().
		Where("posts.id IN ?", ids).
		Order("posts.created_at DESC").
		Scan(&posts).Error
	return posts, err
}

// Delete removes a post; edge cleanup cascades in the database
func (r *postRepository) Delete(id int64) error {
	result := r.db.Delete(&domain.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
