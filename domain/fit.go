package domain

import (
	"time"
)

// FitPreference is the shopper's declared cut preference.
type FitPreference string

const (
	PreferenceSlim    FitPreference = "slim"
	PreferenceRegular FitPreference = "regular"
	PreferenceLoose   FitPreference = "loose"
)

// BodyTypeHint is an optional secondary nudge, never the primary signal.
type BodyTypeHint string

const (
	BodyTypeAthletic BodyTypeHint = "athletic"
)

// FitOutcome is the real-world result of a prior prediction.
type FitOutcome string

const (
	OutcomeTooSmall      FitOutcome = "too_small"
	OutcomeSlightlySmall FitOutcome = "slightly_small"
	OutcomePerfect       FitOutcome = "perfect"
	OutcomeSlightlyLarge FitOutcome = "slightly_large"
	OutcomeTooLarge      FitOutcome = "too_large"
)

// FitFeedback records how a previously recommended size worked out.
// Appended by the order/return workflow; the engine only ever reads it.
type FitFeedback struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"column:user_id;not null;index:idx_fit_feedback_user_category" json:"user_id"`
	Category  string     `gorm:"column:category;not null;index:idx_fit_feedback_user_category" json:"category"`
	SizeGiven string     `gorm:"column:size_given;not null" json:"size_given"`
	Outcome   FitOutcome `gorm:"column:outcome;not null" json:"outcome"`
	Returned  bool       `gorm:"column:returned;default:false" json:"returned"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FitFeedback) TableName() string {
	return "fit_feedback"
}

// Alternative is one ranked runner-up size in a Recommendation.
type Alternative struct {
	Size       string `json:"size"`
	Confidence int    `json:"confidence"`
	Note       string `json:"note,omitempty"`
}

// Recommendation is the engine output. Produced fresh on every call and
// never mutated afterwards.
type Recommendation struct {
	Size         string        `json:"size"`
	Confidence   int           `json:"confidence"`
	Alternatives []Alternative `json:"alternatives"`
	UsedDefaults bool          `json:"used_defaults"`
}
