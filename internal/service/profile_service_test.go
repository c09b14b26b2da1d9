package service

import (
	"context"
	"testing"

	"github.com/openvoice/openvoice-backend/internal/common"
	"github.com/openvoice/openvoice-backend/internal/domain"
	"github.com/openvoice/openvoice-backend/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// --- Mock ProfileRepository ---

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) Create(profile *domain.Profile) error {
	return m.Called(profile).Error(0)
}

func (m *mockProfileRepo) FindByID(id string) (*domain.Profile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockProfileRepo) FindByUsername(username string) (*domain.Profile, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockProfileRepo) Update(id string, fields map[string]interface{}) error {
	return m.Called(id, fields).Error(0)
}

// --- Tests ---

func TestGetProfile_FallsThroughToRepo(t *testing.T) {
	repo := new(mockProfileRepo)
	svc := NewProfileService(repo, cache.NewService(nil))

	repo.On("FindByID", "user1").Return(&domain.Profile{ID: "user1", Username: "alice"}, nil)

	profile, err := svc.GetProfile(context.Background(), "user1")

	assert.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
}

func TestGetProfile_NotFound(t *testing.T) {
	repo := new(mockProfileRepo)
	svc := NewProfileService(repo, cache.NewService(nil))

	repo.On("FindByID", "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetProfile(context.Background(), "ghost")

	assert.ErrorIs(t, err, common.ErrProfileNotFound)
}

func TestGetProfile_CacheHitSkipsRepo(t *testing.T) {
	repo := new(mockProfileRepo)
	cacheSvc := new(mockCacheService)
	svc := NewProfileService(repo, cacheSvc)

	cacheSvc.On("IsAvailable").Return(true)
	cacheSvc.On("Get", cache.PrefixProfile+"user1", mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(1).(*domain.Profile)
			*dest = domain.Profile{ID: "user1", Username: "alice"}
		}).Return(nil)

	profile, err := svc.GetProfile(context.Background(), "user1")

	assert.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	repo.AssertNotCalled(t, "FindByID", mock.Anything)
}

func TestUpdateProfile_RequesterMustOwnProfile(t *testing.T) {
	repo := new(mockProfileRepo)
	svc := NewProfileService(repo, cache.NewService(nil))

	name := "Mallory"
	_, err := svc.UpdateProfile(context.Background(), "user1", "user2", &domain.UpdateProfileRequest{FullName: &name})

	assert.ErrorIs(t, err, common.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateProfile_NoFields(t *testing.T) {
	repo := new(mockProfileRepo)
	svc := NewProfileService(repo, cache.NewService(nil))

	_, err := svc.UpdateProfile(context.Background(), "user1", "user1", &domain.UpdateProfileRequest{})

	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestUpdateProfile_InvalidatesCache(t *testing.T) {
	repo := new(mockProfileRepo)
	cacheSvc := new(mockCacheService)
	svc := NewProfileService(repo, cacheSvc)

	bio := "new bio"
	repo.On("Update", "user1", map[string]interface{}{"bio": bio}).Return(nil)
	repo.On("FindByID", "user1").Return(&domain.Profile{ID: "user1", Bio: bio}, nil)
	cacheSvc.On("InvalidateProfile", "user1").Return(nil)

	profile, err := svc.UpdateProfile(context.Background(), "user1", "user1", &domain.UpdateProfileRequest{Bio: &bio})

	assert.NoError(t, err)
	assert.Equal(t, bio, profile.Bio)
	cacheSvc.AssertExpectations(t)
}
