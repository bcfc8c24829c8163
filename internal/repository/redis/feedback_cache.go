package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"myFitAdvisor/domain"

	"github.com/redis/go-redis/v9"
)

const feedbackCacheTTL = 5 * time.Minute

// FeedbackCache keeps a short-lived copy of a user's recent fit feedback so
// prediction bursts do not hammer postgres. Entries are invalidated when new
// feedback arrives and otherwise expire on TTL.
type FeedbackCache struct {
	client *redis.Client
}

func NewFeedbackCache(client *redis.Client) *FeedbackCache {
	return &FeedbackCache{
		client: client,
	}
}

func feedbackKey(userID uint, category string) string {
	return fmt.Sprintf("fit:feedback:%d:%s", userID, category)
}

func (c *FeedbackCache) GetRecent(ctx context.Context, userID uint, category string, limit int) ([]domain.FitFeedback, bool, error) {
	val, err := c.client.Get(ctx, feedbackKey(userID, category)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get feedback from redis: %w", err)
	}

	var records []domain.FitFeedback
	if err := json.Unmarshal([]byte(val), &records); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached feedback: %w", err)
	}

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, true, nil
}

func (c *FeedbackCache) SetRecent(ctx context.Context, userID uint, category string, feedback []domain.FitFeedback) error {
	raw, err := json.Marshal(feedback)
	if err != nil {
		return fmt.Errorf("failed to marshal feedback: %w", err)
	}

	if err := c.client.Set(ctx, feedbackKey(userID, category), raw, feedbackCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to store feedback in redis: %w", err)
	}

	return nil
}

func (c *FeedbackCache) Invalidate(ctx context.Context, userID uint, category string) error {
	if err := c.client.Del(ctx, feedbackKey(userID, category)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate feedback cache: %w", err)
	}

	return nil
}
