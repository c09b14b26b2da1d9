package service

import (
	"context"

	"github.com/openvoice/openvoice-backend/internal/common"
	"github.com/openvoice/openvoice-backend/internal/domain"
	"github.com/openvoice/openvoice-backend/internal/repository"
)

// FollowService follow business logic
type FollowService interface {
	Follow(ctx context.Context, followerID, followingID string) error
	Unfollow(ctx context.Context, followerID, followingID string) error
	Stats(ctx context.Context, profileID, viewerID string) (*domain.FollowStats, error)
}

type followService struct {
	repo repository.FollowRepository
}

// NewFollowService creates a new FollowService
func NewFollowService(repo repository.FollowRepository) FollowService {
	return &followService{repo: repo}
}

// Follow adds a follow edge; following twice is a no-op
func (s *followService) Follow(ctx context.Context, followerID, followingID string) error {
	if followerID == "" {
		return common.ErrSignInRequired
	}
	if followerID == followingID {
		return common.ErrSelfFollow
	}

	exists, err := s.repo.Exists(followerID, followingID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.repo.Create(followerID, followingID)
}

// Unfollow removes a follow edge
func (s *followService) Unfollow(ctx context.Context, followerID, followingID string) error {
	if followerID == "" {
		return common.ErrSignInRequired
	}
	return s.repo.Delete(followerID, followingID)
}

// Stats returns follower/following counts and the viewer's relation
func (s *followService) Stats(ctx context.Context, profileID, viewerID string) (*domain.FollowStats, error) {
	followers, err := s.repo.CountFollowers(profileID)
	if err != nil {
		return nil, err
	}
	following, err := s.repo.CountFollowing(profileID)
	if err != nil {
		return nil, err
	}

	stats := &domain.FollowStats{
		Followers: followers,
		Following: following,
	}
	if viewerID != "" && viewerID != profileID {
		isFollowing, err := s.repo.Exists(viewerID, profileID)
		if err != nil {
			return nil, err
		}
		stats.IsFollowing = isFollowing
	}
	return stats, nil
}
