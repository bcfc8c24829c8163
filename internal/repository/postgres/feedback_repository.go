package postgres

import (
	"context"
	"fmt"

	"myFitAdvisor/domain"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *domain.FitFeedback) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(feedback).Error; err != nil {
		return fmt.Errorf("failed to create fit feedback: %w", err)
	}

	return nil
}

// FindRecent returns the newest feedback records for a user and category,
// most recent first.
func (r *FeedbackRepository) FindRecent(ctx context.Context, userID uint, category string, limit int) ([]domain.FitFeedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = 3
	}

	var records []domain.FitFeedback
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query fit_feedback: %w", err)
	}

	return records, nil
}
