package postgres

import (
	"context"
	"fmt"

	"myFitAdvisor/domain"

	"gorm.io/gorm"
)

type PredictionLogRepository struct {
	DB *gorm.DB
}

func NewPredictionLogRepository(db *gorm.DB) *PredictionLogRepository {
	return &PredictionLogRepository{DB: db}
}

func (r *PredictionLogRepository) SavePrediction(ctx context.Context, log domain.PredictionLog) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&log).Error; err != nil {
		return fmt.Errorf("failed to save prediction log: %w", err)
	}

	return nil
}

// FindByUser returns a user's persisted recommendations, newest first.
func (r *PredictionLogRepository) FindByUser(ctx context.Context, userID uint, limit int) ([]domain.PredictionLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}

	var logs []domain.PredictionLog
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query prediction_logs: %w", err)
	}

	return logs, nil
}
