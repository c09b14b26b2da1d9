package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/openvoice/openvoice-backend/internal/common"
	"github.com/openvoice/openvoice-backend/internal/domain"
	"github.com/openvoice/openvoice-backend/internal/repository"
	"github.com/openvoice/openvoice-backend/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// EngagementService maintains per-post engagement state for the signed-in
// viewer. Toggles are optimistic: the pure state transition happens first,
// the edge write confirms it, and a failed write hands the caller back the
// untouched prior state.
type EngagementService interface {
	Load(ctx context.Context, postID int64, viewerID string) (*domain.EngagementState, error)
	Toggle(ctx context.Context, kind domain.EngagementKind, postID int64, viewerID string, current domain.EngagementState) (domain.EngagementState, error)
	SubmitQuoteRepost(ctx context.Context, postID int64, viewerID, quote string, current domain.EngagementState) (domain.EngagementState, error)
}

type engagementService struct {
	repo repository.EngagementRepository

	// inFlight rejects re-entrant toggles on the same (post, kind, viewer)
	// so racing duplicate edges cannot happen behind one identity.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(repo repository.EngagementRepository) EngagementService {
	return &engagementService{
		repo:     repo,
		inFlight: make(map[string]struct{}),
	}
}

// Load fetches aggregate counts and, when a viewer is present, the viewer's
// per-post flags. The reads run in parallel and must all resolve; they are
// not snapshot-consistent with each other.
func (s *engagementService) Load(ctx context.Context, postID int64, viewerID string) (*domain.EngagementState, error) {
	state := &domain.EngagementState{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.repo.CountByPost(postID, domain.KindLike)
		if err != nil {
			return common.ErrPostNotFound
		}
		state.LikeCount = count
		return nil
	})
	g.Go(func() error {
		count, err := s.repo.CountByPost(postID, domain.KindRepost)
		if err != nil {
			return common.ErrPostNotFound
		}
		state.RepostCount = count
		return nil
	})

	if viewerID != "" {
		g.Go(func() error {
			liked, err := s.repo.Exists(postID, viewerID, domain.KindLike)
			if err != nil {
				return fmt.Errorf("load like flag: %w", err)
			}
			state.IsLiked = liked
			return nil
		})
		g.Go(func() error {
			saved, err := s.repo.Exists(postID, viewerID, domain.KindSave)
			if err != nil {
				return fmt.Errorf("load save flag: %w", err)
			}
			state.IsSaved = saved
			return nil
		})
		g.Go(func() error {
			reposted, err := s.repo.Exists(postID, viewerID, domain.KindRepost)
			if err != nil {
				return fmt.Errorf("load repost flag: %w", err)
			}
			state.IsReposted = reposted
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return state, nil
}

// Toggle flips one engagement flag and confirms it with an edge write.
// On write failure the prior state is returned unchanged alongside the
// error; the caller decides whether to notify, never to retry.
func (s *engagementService) Toggle(ctx context.Context, kind domain.EngagementKind, postID int64, viewerID string, current domain.EngagementState) (domain.EngagementState, error) {
	if viewerID == "" {
		return current, common.ErrSignInRequired
	}
	if !kind.Valid() {
		return current, common.ErrInvalidInput
	}

	key := toggleKey(kind, postID, viewerID)
	if !s.acquire(key) {
		return current, common.ErrEngagementBusy
	}
	defer s.release(key)

	next, turnOn := current.Toggle(kind)

	var err error
	if turnOn {
		err = s.repo.CreateEdge(postID, viewerID, kind)
	} else {
		err = s.repo.DeleteEdge(postID, viewerID, kind)
	}
	if err != nil {
		logger.GetLogger().Warn().
			Err(err).
			Str("kind", string(kind)).
			Int64("post_id", postID).
			Str("viewer_id", viewerID).
			Msg("engagement toggle failed, state reverted")
		return current, err
	}

	return next, nil
}

// SubmitQuoteRepost upserts the viewer's repost edge with quote text.
// An empty quote fails validation before any repository call.
func (s *engagementService) SubmitQuoteRepost(ctx context.Context, postID int64, viewerID, quote string, current domain.EngagementState) (domain.EngagementState, error) {
	if viewerID == "" {
		return current, common.ErrSignInRequired
	}
	quote = strings.TrimSpace(quote)
	if quote == "" {
		return current, common.ErrEmptyQuote
	}

	if err := s.repo.UpsertQuote(postID, viewerID, quote); err != nil {
		logger.GetLogger().Warn().
			Err(err).
			Int64("post_id", postID).
			Str("viewer_id", viewerID).
			Msg("quote repost failed")
		return current, err
	}

	return current.WithQuoteRepost(), nil
}

func toggleKey(kind domain.EngagementKind, postID int64, viewerID string) string {
	return fmt.Sprintf("%s:%d:%s", kind, postID, viewerID)
}

func (s *engagementService) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *engagementService) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}
