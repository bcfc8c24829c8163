package history

import (
	"context"
	"errors"
	"fmt"

	"myFitAdvisor/domain"
	"myFitAdvisor/pkg/logger"
)

// FeedbackStore is the durable feedback record store.
type FeedbackStore interface {
	Create(ctx context.Context, feedback *domain.FitFeedback) error
	FindRecent(ctx context.Context, userID uint, category string, limit int) ([]domain.FitFeedback, error)
}

// FeedbackCache is an optional read-through cache in front of the store.
type FeedbackCache interface {
	GetRecent(ctx context.Context, userID uint, category string, limit int) ([]domain.FitFeedback, bool, error)
	SetRecent(ctx context.Context, userID uint, category string, feedback []domain.FitFeedback) error
	Invalidate(ctx context.Context, userID uint, category string) error
}

type HistoryService struct {
	store FeedbackStore
	cache FeedbackCache
}

func NewHistoryService(store FeedbackStore, cache FeedbackCache) *HistoryService {
	return &HistoryService{
		store: store,
		cache: cache,
	}
}

var validOutcomes = map[domain.FitOutcome]struct{}{
	domain.OutcomeTooSmall:      {},
	domain.OutcomeSlightlySmall: {},
	domain.OutcomePerfect:       {},
	domain.OutcomeSlightlyLarge: {},
	domain.OutcomeTooLarge:      {},
}

// RecordFeedback appends one fit outcome record for a user. Written records
// are never mutated; the engine reads them newest first.
func (s *HistoryService) RecordFeedback(ctx context.Context, feedback *domain.FitFeedback) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if feedback.UserID == 0 {
		return errors.New("user id is required")
	}
	if feedback.Category == "" {
		return errors.New("category is required")
	}
	if feedback.SizeGiven == "" {
		return errors.New("size_given is required")
	}
	if _, ok := validOutcomes[feedback.Outcome]; !ok {
		return fmt.Errorf("unknown outcome: %s", feedback.Outcome)
	}

	if err := s.store.Create(ctx, feedback); err != nil {
		logger.Error("failed to save fit feedback", err)
		return fmt.Errorf("failed to save fit feedback: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, feedback.UserID, feedback.Category); err != nil {
			// stale cache entries expire on their own TTL
			logger.Error("failed to invalidate feedback cache", err)
		}
	}

	logger.Info("fit feedback recorded",
		"user_id", feedback.UserID,
		"category", feedback.Category,
		"outcome", string(feedback.Outcome),
	)

	return nil
}

// FindRecent returns the user's most recent feedback for a category, newest
// first, serving from cache when possible.
func (s *HistoryService) FindRecent(ctx context.Context, userID uint, category string, limit int) ([]domain.FitFeedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = 3
	}

	if s.cache != nil {
		if cached, ok, err := s.cache.GetRecent(ctx, userID, category, limit); err == nil && ok {
			return cached, nil
		}
	}

	records, err := s.store.FindRecent(ctx, userID, category, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load fit feedback: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetRecent(ctx, userID, category, records); err != nil {
			logger.Error("failed to cache feedback history", err)
		}
	}

	return records, nil
}
