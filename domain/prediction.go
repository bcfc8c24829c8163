package domain

import (
	"time"

	"gorm.io/datatypes"
)

// PredictionLog is the audit record a host persists after serving a
// recommendation. It is write-only from the engine's point of view.
type PredictionLog struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	PredictionID string            `gorm:"column:prediction_id;not null;uniqueIndex" json:"prediction_id"`
	UserID       uint              `gorm:"column:user_id;not null" json:"user_id"`
	Category     string            `gorm:"column:category;not null" json:"category"`
	Size         string            `gorm:"column:size;not null" json:"size"`
	Confidence   int               `gorm:"column:confidence;not null" json:"confidence"`
	UsedDefaults bool              `gorm:"column:used_defaults;default:false" json:"used_defaults"`
	Context      datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PredictionLog) TableName() string {
	return "prediction_logs"
}
