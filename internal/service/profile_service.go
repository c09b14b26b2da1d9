package service

import (
	"context"

	"github.com/openvoice/openvoice-backend/internal/common"
	"github.com/openvoice/openvoice-backend/internal/domain"
	"github.com/openvoice/openvoice-backend/internal/repository"
	"github.com/openvoice/openvoice-backend/pkg/cache"
	"github.com/openvoice/openvoice-backend/pkg/logger"
)

// ProfileService profile business logic
type ProfileService interface {
	GetProfile(ctx context.Context, id string) (*domain.Profile, error)
	GetProfileByUsername(ctx context.Context, username string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, id, requesterID string, req *domain.UpdateProfileRequest) (*domain.Profile, error)
}

type profileService struct {
	repo  repository.ProfileRepository
	cache cache.Service
}

// NewProfileService creates a new ProfileService
func NewProfileService(repo repository.ProfileRepository, cacheSvc cache.Service) ProfileService {
	return &profileService{repo: repo, cache: cacheSvc}
}

// GetProfile returns a profile by identity id, cache first
func (s *profileService) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	if s.cache != nil && s.cache.IsAvailable() {
		var cached domain.Profile
		if err := s.cache.Get(ctx, cache.PrefixProfile+id, &cached); err == nil {
			return &cached, nil
		}
	}

	profile, err := s.repo.FindByID(id)
	if err != nil {
		return nil, common.ErrProfileNotFound
	}

	if s.cache != nil {
		if err := s.cache.SetProfile(ctx, id, profile); err != nil {
			logger.GetLogger().Warn().Err(err).Msg("profile cache write failed")
		}
	}
	return profile, nil
}

// GetProfileByUsername returns a profile by its unique username
func (s *profileService) GetProfileByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	profile, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, common.ErrProfileNotFound
	}
	return profile, nil
}

// UpdateProfile applies owner edits and invalidates the cache
func (s *profileService) UpdateProfile(ctx context.Context, id, requesterID string, req *domain.UpdateProfileRequest) (*domain.Profile, error) {
	if requesterID == "" {
		return nil, common.ErrSignInRequired
	}
	if id != requesterID {
		return nil, common.ErrForbidden
	}

	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}
	if req.BannerURL != nil {
		fields["banner_url"] = *req.BannerURL
	}
	if req.DarkMode != nil {
		fields["dark_mode"] = *req.DarkMode
	}
	if req.AccentColor != nil {
		fields["accent_color"] = *req.AccentColor
	}
	if len(fields) == 0 {
		return nil, common.ErrInvalidInput
	}

	if err := s.repo.Update(id, fields); err != nil {
		return nil, common.ErrProfileNotFound
	}

	if s.cache != nil {
		_ = s.cache.InvalidateProfile(ctx, id)
	}

	return s.repo.FindByID(id)
}
