package service

import (
	"context"
	"fmt"

	"github.com/openvoice/openvoice-backend/internal/domain"
	"github.com/openvoice/openvoice-backend/internal/repository"
	"github.com/openvoice/openvoice-backend/pkg/logger"
	"github.com/openvoice/openvoice-backend/pkg/news"
)

const (
	homeFeedDefaultLimit = 50
	homeFeedMaxLimit     = 100
	topicPostLimit       = 20
	topicNewsLimit       = 10
)

// FeedService produces ordered feed views from the two disjoint sources:
// locally stored posts and externally fetched news items.
type FeedService interface {
	HomeFeed(ctx context.Context, limit int) ([]*domain.PostResponse, error)
	TopicFeed(ctx context.Context, topic string) ([]domain.FeedEntry, error)
	SavedFeed(ctx context.Context, viewerID string) ([]*domain.PostResponse, error)
}

type feedService struct {
	postRepo   repository.PostRepository
	engageRepo repository.EngagementRepository
	newsClient news.Client
}

// NewFeedService creates a new FeedService
func NewFeedService(postRepo repository.PostRepository, engageRepo repository.EngagementRepository, newsClient news.Client) FeedService {
	return &feedService{
		postRepo:   postRepo,
		engageRepo: engageRepo,
		newsClient: newsClient,
	}
}

// HomeFeed returns the newest posts; ordering is the repository's
func (s *feedService) HomeFeed(ctx context.Context, limit int) ([]*domain.PostResponse, error) {
	if limit < 1 || limit > homeFeedMaxLimit {
		limit = homeFeedDefaultLimit
	}
	return s.postRepo.ListRecent(limit)
}

// TopicFeed merges topic-matching posts with news items for the same topic.
// All posts come first, newest first, then news in upstream order. The two
// sources are never interleaved or deduplicated: post timestamps and news
// publish dates are not comparable.
func (s *feedService) TopicFeed(ctx context.Context, topic string) ([]domain.FeedEntry, error) {
	var (
		posts []*domain.PostResponse
		err   error
	)
	if topic == "" {
		posts, err = s.postRepo.ListRecent(topicPostLimit)
	} else {
		posts, err = s.postRepo.SearchByContent(topic, topicPostLimit)
	}
	if err != nil {
		return nil, err
	}

	entries := make([]domain.FeedEntry, 0, len(posts)+topicNewsLimit)
	for _, post := range posts {
		entries = append(entries, domain.FeedEntry{
			Type: domain.EntryPost,
			Key:  fmt.Sprintf("post-%d", post.ID),
			Post: post,
		})
	}

	// A failing news fetch degrades to a posts-only feed; it never sinks
	// the whole view.
	items, err := s.newsClient.Fetch(ctx, topic)
	if err != nil {
		logger.GetLogger().Warn().Err(err).Str("topic", topic).Msg("news fetch failed")
		return entries, nil
	}
	if len(items) > topicNewsLimit {
		items = items[:topicNewsLimit]
	}
	for i := range items {
		entries = append(entries, domain.FeedEntry{
			Type: domain.EntryNews,
			Key:  fmt.Sprintf("news-%d", i),
			News: &items[i],
		})
	}

	return entries, nil
}

// SavedFeed resolves the viewer's save edges to posts, newest first.
// A viewer with no saves gets an empty feed, not an error.
func (s *feedService) SavedFeed(ctx context.Context, viewerID string) ([]*domain.PostResponse, error) {
	ids, err := s.engageRepo.ListSavedPostIDs(viewerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*domain.PostResponse{}, nil
	}
	return s.postRepo.FindByIDs(ids)
}
