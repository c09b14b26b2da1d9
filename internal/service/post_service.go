package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/openvoice/openvoice-backend/internal/common"
	"github.com/openvoice/openvoice-backend/internal/domain"
	"github.com/openvoice/openvoice-backend/internal/repository"
	"github.com/openvoice/openvoice-backend/pkg/logger"
	"gorm.io/gorm"
)

const (
	titleFromContentMax = 80
	authorPostsLimit    = 100
)

// PostService post business logic
type PostService interface {
	CreatePost(ctx context.Context, req *domain.CreatePostRequest, authorID string) (*domain.Post, error)
	GetPost(ctx context.Context, id int64) (*domain.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*domain.PostResponse, error)
	DeletePost(ctx context.Context, id int64, requesterID string) error
}

type postService struct {
	repo     repository.PostRepository
	trending TrendingService
}

// NewPostService creates a new PostService
func NewPostService(repo repository.PostRepository, trending TrendingService) PostService {
	return &postService{repo: repo, trending: trending}
}

// CreatePost validates and stores a composer submission
func (s *postService) CreatePost(ctx context.Context, req *domain.CreatePostRequest, authorID string) (*domain.Post, error) {
	if authorID == "" {
		return nil, common.ErrSignInRequired
	}

	content := strings.TrimSpace(req.Content)
	title := strings.TrimSpace(req.Title)
	if content == "" && title == "" {
		return nil, common.ErrInvalidInput
	}
	if title == "" {
		title = truncateOnRune(content, titleFromContentMax)
	}
	if err := common.ValidateContentLinks(content); err != nil {
		return nil, err
	}

	post := &domain.Post{
		UserID:   authorID,
		Title:    title,
		Content:  content,
		ImageURL: strings.TrimSpace(req.ImageURL),
		Source:   domain.SourceUser,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}

	if s.trending != nil {
		if err := s.trending.RecordPostTopics(ctx, content); err != nil {
			// Counter updates are best effort
			logger.GetLogger().Warn().Err(err).Msg("failed to record trending topics")
		}
	}

	return post, nil
}

// GetPost returns a single post
func (s *postService) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.repo.FindByID(id)
	if err != nil {
		return nil, common.ErrPostNotFound
	}
	return post, nil
}

// ListByAuthor returns a member's posts, newest first
func (s *postService) ListByAuthor(ctx context.Context, authorID string) ([]*domain.PostResponse, error) {
	return s.repo.ListByAuthor(authorID, authorPostsLimit)
}

// truncateOnRune cuts s to at most max bytes without splitting a rune
func truncateOnRune(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// DeletePost removes a post when the requester owns it. The database
// cascades the engagement edges.
func (s *postService) DeletePost(ctx context.Context, id int64, requesterID string) error {
	if requesterID == "" {
		return common.ErrSignInRequired
	}

	post, err := s.repo.FindByID(id)
	if err != nil {
		return common.ErrPostNotFound
	}
	if post.UserID != requesterID {
		return common.ErrForbidden
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrPostNotFound
		}
		return err
	}
	return nil
}
