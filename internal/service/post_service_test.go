package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/openvoice/openvoice-backend/internal/common"
	"github.com/openvoice/openvoice-backend/internal/domain"
	"github.com/openvoice/openvoice-backend/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// --- Mock TrendingService ---

type mockTrendingService struct {
	mock.Mock
}

func (m *mockTrendingService) RecordPostTopics(ctx context.Context, content string) error {
	return m.Called(content).Error(0)
}

func (m *mockTrendingService) TopTopics(ctx context.Context, limit int) ([]cache.TopicCount, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cache.TopicCount), args.Error(1)
}

// --- Tests ---

func TestCreatePost_Success(t *testing.T) {
	repo := new(mockPostRepo)
	trending := new(mockTrendingService)
	svc := NewPostService(repo, trending)

	repo.On("Create", mock.MatchedBy(func(p *domain.Post) bool {
		return p.UserID == "user1" && p.Content == "hello #golang" && p.Source == domain.SourceUser
	})).Return(nil)
	trending.On("RecordPostTopics", "hello #golang").Return(nil)

	post, err := svc.CreatePost(context.Background(), &domain.CreatePostRequest{Content: "hello #golang"}, "user1")

	assert.NoError(t, err)
	assert.Equal(t, "hello #golang", post.Title)
	repo.AssertExpectations(t)
	trending.AssertExpectations(t)
}

func TestCreatePost_TitleDefaultsFromLongContent(t *testing.T) {
	repo := new(mockPostRepo)
	trending := new(mockTrendingService)
	svc := NewPostService(repo, trending)

	content := strings.Repeat("a", 120)
	repo.On("Create", mock.Anything).Return(nil)
	trending.On("RecordPostTopics", mock.Anything).Return(nil)

	post, err := svc.CreatePost(context.Background(), &domain.CreatePostRequest{Content: content}, "user1")

	assert.NoError(t, err)
	assert.Len(t, post.Title, 80)
}

func TestCreatePost_TitleTruncationKeepsRunesIntact(t *testing.T) {
	repo := new(mockPostRepo)
	trending := new(mockTrendingService)
	svc := NewPostService(repo, trending)

	// 40 three-byte runes; a byte cut at 80 would land mid-rune
	content := strings.Repeat("한", 40)
	repo.On("Create", mock.Anything).Return(nil)
	trending.On("RecordPostTopics", mock.Anything).Return(nil)

	post, err := svc.CreatePost(context.Background(), &domain.CreatePostRequest{Content: content}, "user1")

	assert.NoError(t, err)
	assert.True(t, utf8.ValidString(post.Title))
	assert.Equal(t, strings.Repeat("한", 26), post.Title)
}

func TestCreatePost_EmptyContentAndTitle(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, nil)

	_, err := svc.CreatePost(context.Background(), &domain.CreatePostRequest{Content: "   "}, "user1")

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreatePost_BlockedLink(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, nil)

	req := &domain.CreatePostRequest{Content: "click https://grabify.link/x"}
	_, err := svc.CreatePost(context.Background(), req, "user1")

	assert.ErrorIs(t, err, common.ErrBlockedLink)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreatePost_TrendingFailureIsNotFatal(t *testing.T) {
	repo := new(mockPostRepo)
	trending := new(mockTrendingService)
	svc := NewPostService(repo, trending)

	repo.On("Create", mock.Anything).Return(nil)
	trending.On("RecordPostTopics", mock.Anything).Return(errors.New("redis down"))

	_, err := svc.CreatePost(context.Background(), &domain.CreatePostRequest{Content: "#topic"}, "user1")

	assert.NoError(t, err)
}

func TestDeletePost_OwnerOnly(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, nil)

	repo.On("FindByID", int64(5)).Return(&domain.Post{ID: 5, UserID: "owner"}, nil)

	err := svc.DeletePost(context.Background(), 5, "intruder")

	assert.ErrorIs(t, err, common.ErrForbidden)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeletePost_Success(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, nil)

	repo.On("FindByID", int64(5)).Return(&domain.Post{ID: 5, UserID: "owner"}, nil)
	repo.On("Delete", int64(5)).Return(nil)

	err := svc.DeletePost(context.Background(), 5, "owner")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeletePost_NotFound(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, nil)

	repo.On("FindByID", int64(9)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.DeletePost(context.Background(), 9, "owner")

	assert.ErrorIs(t, err, common.ErrPostNotFound)
}

func TestGetPost_NotFound(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, nil)

	repo.On("FindByID", int64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetPost(context.Background(), 9)

	assert.ErrorIs(t, err, common.ErrPostNotFound)
}
