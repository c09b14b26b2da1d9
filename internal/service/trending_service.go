package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/openvoice/openvoice-backend/pkg/cache"
)

var hashtagPattern = regexp.MustCompile(`#(\w+)`)

// TrendingService maintains the trending topic counters behind the
// trending sidebar and topics page.
type TrendingService interface {
	RecordPostTopics(ctx context.Context, content string) error
	TopTopics(ctx context.Context, limit int) ([]cache.TopicCount, error)
}

type trendingService struct {
	cache cache.Service
}

// NewTrendingService creates a new TrendingService
func NewTrendingService(cacheSvc cache.Service) TrendingService {
	return &trendingService{cache: cacheSvc}
}

// RecordPostTopics bumps the counter of every hashtag in a new post
func (s *trendingService) RecordPostTopics(ctx context.Context, content string) error {
	if s.cache == nil || !s.cache.IsAvailable() {
		return nil
	}
	for _, match := range hashtagPattern.FindAllStringSubmatch(content, -1) {
		topic := strings.ToLower(match[1])
		if err := s.cache.IncrTopic(ctx, topic); err != nil {
			return err
		}
	}
	return nil
}

// TopTopics returns the most mentioned topics, best first
func (s *trendingService) TopTopics(ctx context.Context, limit int) ([]cache.TopicCount, error) {
	if s.cache == nil || !s.cache.IsAvailable() {
		return []cache.TopicCount{}, nil
	}
	return s.cache.TopTopics(ctx, limit)
}
