package service

import (
	"context"
	"errors"
	"testing"

	"github.com/openvoice/openvoice-backend/internal/common"
	"github.com/openvoice/openvoice-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock EngagementRepository ---

type mockEngagementRepo struct {
	mock.Mock
}

func (m *mockEngagementRepo) CountByPost(postID int64, kind domain.EngagementKind) (int64, error) {
	args := m.Called(postID, kind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEngagementRepo) Exists(postID int64, userID string, kind domain.EngagementKind) (bool, error) {
	args := m.Called(postID, userID, kind)
	return args.Bool(0), args.Error(1)
}

func (m *mockEngagementRepo) CreateEdge(postID int64, userID string, kind domain.EngagementKind) error {
	return m.Called(postID, userID, kind).Error(0)
}

func (m *mockEngagementRepo) DeleteEdge(postID int64, userID string, kind domain.EngagementKind) error {
	return m.Called(postID, userID, kind).Error(0)
}

func (m *mockEngagementRepo) UpsertQuote(postID int64, userID string, quote string) error {
	return m.Called(postID, userID, quote).Error(0)
}

func (m *mockEngagementRepo) ListSavedPostIDs(userID string) ([]int64, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// --- Tests ---

func TestLoad_WithViewer(t *testing.T) {
	repo := new(mockEngagementRepo)
	svc := NewEngagementService(repo)

	repo.On("CountByPost", int64(7), domain.KindLike).Return(int64(3), nil)
	repo.On("CountByPost", int64(7), domain.KindRepost).Return(int64(1), nil)
	repo.On("Exists", int64(7), "user1", domain.KindLike).Return(true, nil)
	repo.On("Exists", int64(7), "user1", domain.KindSave).Return(false, nil)
	repo.On("Exists", int64(7), "user1", domain.KindRepost).Return(true, nil)

	state, err := svc.Load(context.Background(), 7, "user1")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), state.LikeCount)
	assert.Equal(t, int64(1), state.RepostCount)
	assert.True(t, state.IsLiked)
	assert.False(t, state.IsSaved)
	assert.True(t, state.IsReposted)
	repo.AssertExpectations(t)
}

func TestLoad_AnonymousSkipsViewerFlags(t *testing.T) {
	repo := new(mockEngagementRepo)
	svc := NewEngagementService(repo)

	repo.On("CountByPost", int64(7), domain.KindLike).Return(int64(2), nil)
	repo.On("CountByPost", int64(7), domain.KindRepost).Return(int64(0), nil)

	state, err := svc.Load(context.Background(), 7, "")

	assert.NoError(t, err)
	assert.Equal(t, int64(2), state.LikeCount)
	assert.False(t, state.IsLiked)
	repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoad_CountError(t *testing.T) {
	repo := new(mockEngagementRepo)
	svc := NewEngagementService(repo)

	repo.On("CountByPost", int64(99), domain.KindLike).Return(int64(0), errors.New("db down"))
	repo.On("CountByPost", int64(99), domain.KindRepost).Return(int64(0), nil).Maybe()

	state, err := svc.Load(context.Background(), 99, "")

	assert.Nil(t, state)
	assert.ErrorIs(t, err, common.ErrPostNotFound)
}

func TestToggleLike_RoundTrip(t *testing.T) {
	repo := new(mockEngagementRepo)
	svc := NewEngagementService(repo)

	repo.On("CreateEdge", int64(5), "user1", domain.KindLike).Return(nil)
	repo.On("DeleteEdge", int64(5), "user1", domain.KindLike).Return(nil)

	start := domain.EngagementState{LikeCount: 3}

	on, err := svc.Toggle(context.Background(), domain.KindLike, 5, "user1", start)
	assert.NoError(t, err)
	assert.True(t, on.IsLiked)
	assert.Equal(t, int64(4), on.LikeCount)

	off, err := svc.Toggle(context.Background(), domain.KindLike, 5, "user1", on)
	assert.NoError(t, err)
	assert.Equal(t, start, off)
}

func TestToggleSave_NoCountMoves(t *testing.T) {
	repo := new(mockEngagementRepo)
	svc := NewEngagementService(repo)

	repo.On("CreateEdge", int64(5), "user1", domain.KindSave).Return(nil)

	start := domain.EngagementState{LikeCount: 3, RepostCount: 2}
	next, err := svc.Toggle(context.Background(), domain.KindSave, 5, "user1", start)

	assert.NoError(t, err)
	assert.True(t, next.IsSaved)
	assert.Equal(t, start.LikeCount, next.LikeCount)
	assert.Equal(t, start.RepostCount, next.RepostCount)
}

func TestToggle_WriteFailureReturnsPriorState(t *testing.T) {
	repo := new(mockEngagementRepo)
	svc := NewEngagementService(repo)

	repo.On("CreateEdge", int64(5), "user1", domain.KindLike).Return(errors.New("insert failed"))

	start := domain.EngagementState{LikeCount: 3, IsSaved: true}
	got, err := svc.Toggle(context.Background(), domain.KindLike, 5, "user1", start)

	assert.Error(t, err)
	assert.Equal(t, start, got)
}

func TestToggle_SignedOutFailsBeforeRepo(t *testing.T) {
	repo := new(mockEngagementRepo)
	svc := NewEngagementService(repo)

	start := domain.EngagementState{LikeCount: 1}
	got, err := svc.Toggle(context.Background(), domain.KindLike, 5, "", start)

	assert.ErrorIs(t, err, common.ErrSignInRequired)
	assert.Equal(t, start, got)
	repo.AssertNotCalled(t, "CreateEdge", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteEdge", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggle_InvalidKind(t *testing.T) {
	repo := new(mockEngagementRepo)
	svc := NewEngagementService(repo)

	_, err := svc.Toggle(context.Background(), domain.EngagementKind("boost"), 5, "user1", domain.EngagementState{})

	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestToggle_ConcurrentSameKeyIsBusy(t *testing.T) {
	repo := new(mockEngagementRepo)
	svc := NewEngagementService(repo)

	entered := make(chan struct{})
	release := make(chan struct{})
	repo.On("CreateEdge", int64(5), "user1", domain.KindLike).
		Run(func(args mock.Arguments) {
			close(entered)
			<-release
		}).Return(nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := svc.Toggle(context.Background(), domain.KindLike, 5, "user1", domain.EngagementState{})
		assert.NoError(t, err)
	}()

	<-entered
	_, err := svc.Toggle(context.Background(), domain.KindLike, 5, "user1", domain.EngagementState{})
	assert.ErrorIs(t, err, common.ErrEngagementBusy)

	close(release)
	<-done

	// The key is released once the first toggle finishes
	repo.On("DeleteEdge", int64(5), "user1", domain.KindLike).Return(nil)
	_, err = svc.Toggle(context.Background(), domain.KindLike, 5, "user1", domain.EngagementState{IsLiked: true, LikeCount: 1})
	assert.NoError(t, err)
}

func TestSubmitQuoteRepost_Success(t *testing.T) {
	repo := new(mockEngagementRepo)
	svc := NewEngagementService(repo)

	repo.On("UpsertQuote", int64(5), "user1", "hot take").Return(nil)

	start := domain.EngagementState{RepostCount: 2}
	next, err := svc.SubmitQuoteRepost(context.Background(), 5, "user1", "  hot take  ", start)

	assert.NoError(t, err)
	assert.True(t, next.IsReposted)
	assert.Equal(t, int64(3), next.RepostCount)
}

func TestSubmitQuoteRepost_AlreadyRepostedKeepsCount(t *testing.T) {
	repo := new(mockEngagementRepo)
	svc := NewEngagementService(repo)

	repo.On("UpsertQuote", int64(5), "user1", "again").Return(nil)

	start := domain.EngagementState{RepostCount: 2, IsReposted: true}
	next, err := svc.SubmitQuoteRepost(context.Background(), 5, "user1", "again", start)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), next.RepostCount)
}

func TestSubmitQuoteRepost_EmptyQuoteFailsBeforeRepo(t *testing.T) {
	repo := new(mockEngagementRepo)
	svc := NewEngagementService(repo)

	start := domain.EngagementState{RepostCount: 2}
	got, err := svc.SubmitQuoteRepost(context.Background(), 5, "user1", "   ", start)

	assert.ErrorIs(t, err, common.ErrEmptyQuote)
	assert.Equal(t, start, got)
	repo.AssertNotCalled(t, "UpsertQuote", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitQuoteRepost_WriteFailureReturnsPriorState(t *testing.T) {
	repo := new(mockEngagementRepo)
	svc := NewEngagementService(repo)

	repo.On("UpsertQuote", int64(5), "user1", "quote").Return(errors.New("upsert failed"))

	start := domain.EngagementState{RepostCount: 2}
	got, err := svc.SubmitQuoteRepost(context.Background(), 5, "user1", "quote", start)

	assert.Error(t, err)
	assert.Equal(t, start, got)
}
