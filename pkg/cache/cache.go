package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLProfile  = 5 * time.Minute  // profile reads (low mutation rate)
	TTLDefault  = 5 * time.Minute  // fallback
	TTLTrending = 10 * time.Minute // trending topic snapshot
)

// Cache key prefixes
const (
	PrefixProfile  = "profile:"
	PrefixTrending = "trending:"
)

// TrendingTopicsKey is the sorted set holding hashtag counters
const TrendingTopicsKey = PrefixTrending + "topics"

// Service is the redis cache boundary. All operations degrade to a no-op
// (or a miss) when redis is unavailable so the API stays up without it.
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Profile cache
	GetProfile(ctx context.Context, profileID string) ([]byte, error)
	SetProfile(ctx context.Context, profileID string, data interface{}) error
	InvalidateProfile(ctx context.Context, profileID string) error

	// Trending topic counters
	IncrTopic(ctx context.Context, topic string) error
	TopTopics(ctx context.Context, limit int) ([]TopicCount, error)

	IsAvailable() bool
	Ping(ctx context.Context) error
}

// TopicCount is one entry of the trending board
type TopicCount struct {
	Topic string  `json:"topic"`
	Count float64 `json:"count"`
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a new cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable reports whether a redis client is wired
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping tests the redis connection
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get reads a JSON value from cache
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Set stores a JSON value in cache
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // no redis, skip silently
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes cache entries
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Exists checks whether a key is cached
func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	if c.client == nil {
		return false, nil
	}
	n, err := c.client.Exists(ctx, key).Result()
	return n > 0, err
}

func (c *redisCache) profileKey(profileID string) string {
	return PrefixProfile + profileID
}

func (c *redisCache) GetProfile(ctx context.Context, profileID string) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis not available")
	}
	return c.client.Get(ctx, c.profileKey(profileID)).Bytes()
}

func (c *redisCache) SetProfile(ctx context.Context, profileID string, data interface{}) error {
	if c.client == nil {
		return nil
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.profileKey(profileID), jsonData, TTLProfile).Err()
}

func (c *redisCache) InvalidateProfile(ctx context.Context, profileID string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.profileKey(profileID)).Err()
}

// IncrTopic bumps the counter of one trending topic
func (c *redisCache) IncrTopic(ctx context.Context, topic string) error {
	if c.client == nil {
		return nil
	}
	return c.client.ZIncrBy(ctx, TrendingTopicsKey, 1, topic).Err()
}

// TopTopics returns the highest-scored topics, best first
func (c *redisCache) TopTopics(ctx context.Context, limit int) ([]TopicCount, error) {
	if c.client == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}
	members, err := c.client.ZRevRangeWithScores(ctx, TrendingTopicsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	topics := make([]TopicCount, 0, len(members))
	for _, m := range members {
		name, ok := m.Member.(string)
		if !ok {
			continue
		}
		topics = append(topics, TopicCount{Topic: name, Count: m.Score})
	}
	return topics, nil
}
