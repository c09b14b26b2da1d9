package service

import (
	"context"
	"errors"

	"github.com/openvoice/openvoice-backend/internal/common"
	"github.com/openvoice/openvoice-backend/internal/domain"
	"github.com/openvoice/openvoice-backend/internal/repository"
	"gorm.io/gorm"
)

// BlockService block business logic
type BlockService interface {
	Block(ctx context.Context, blockerID, blockedID string) error
	Unblock(ctx context.Context, blockerID, blockedID string) error
	ListBlocked(ctx context.Context, blockerID string) ([]*domain.BlockResponse, error)
}

type blockService struct {
	repo repository.BlockRepository
}

// NewBlockService creates a new BlockService
func NewBlockService(repo repository.BlockRepository) BlockService {
	return &blockService{repo: repo}
}

// Block adds a block edge; blocking twice is a no-op
func (s *blockService) Block(ctx context.Context, blockerID, blockedID string) error {
	if blockerID == "" {
		return common.ErrSignInRequired
	}
	if blockerID == blockedID {
		return common.ErrSelfBlock
	}

	exists, err := s.repo.Exists(blockerID, blockedID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.repo.Create(blockerID, blockedID)
}

// Unblock removes a block edge
func (s *blockService) Unblock(ctx context.Context, blockerID, blockedID string) error {
	if blockerID == "" {
		return common.ErrSignInRequired
	}
	if err := s.repo.Delete(blockerID, blockedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrNotFound
		}
		return err
	}
	return nil
}

// ListBlocked returns the blocker's block list with profiles joined
func (s *blockService) ListBlocked(ctx context.Context, blockerID string) ([]*domain.BlockResponse, error) {
	if blockerID == "" {
		return nil, common.ErrSignInRequired
	}
	return s.repo.ListByBlocker(blockerID)
}
