package fit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"myFitAdvisor/domain"
	"myFitAdvisor/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ---- Repository interfaces ----

// ChartRepository serves immutable size chart snapshots per category.
type ChartRepository interface {
	GetChart(ctx context.Context, category string) (domain.SizeChart, bool, error)
	Categories(ctx context.Context) ([]string, error)
}

// FeedbackRepository reads a user's prior fit outcomes, newest first.
// The engine never writes feedback; the order/return workflow owns that.
type FeedbackRepository interface {
	FindRecent(ctx context.Context, userID uint, category string, limit int) ([]domain.FitFeedback, error)
}

// PredictionLogRepository persists served recommendations as audit records.
type PredictionLogRepository interface {
	SavePrediction(ctx context.Context, log domain.PredictionLog) error
}

// ---- Usecase / Service ----

type FitService struct {
	chartRepo    ChartRepository
	feedbackRepo FeedbackRepository
	auditRepo    PredictionLogRepository
	cfg          Config
}

func NewFitService(
	chartRepo ChartRepository,
	feedbackRepo FeedbackRepository,
	auditRepo PredictionLogRepository,
	cfg Config,
) *FitService {
	return &FitService{
		chartRepo:    chartRepo,
		feedbackRepo: feedbackRepo,
		auditRepo:    auditRepo,
		cfg:          cfg,
	}
}

// Predict computes a size recommendation from per-request inputs only.
// It is referentially transparent: same inputs and chart snapshot, same output.
func (s *FitService) Predict(
	ctx context.Context,
	measurements domain.MeasurementSet,
	category string,
	preference domain.FitPreference,
	bodyType domain.BodyTypeHint,
	history []domain.FitFeedback,
) (domain.Recommendation, error) {

	if err := ctx.Err(); err != nil {
		return domain.Recommendation{}, fmt.Errorf("context error: %w", err)
	}

	chart, err := s.resolveChart(ctx, category)
	if err != nil {
		return domain.Recommendation{}, err
	}

	rec, err := computeRecommendation(chart, category, measurements, preference, bodyType, history, s.cfg)
	if err != nil {
		return domain.Recommendation{}, err
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("fit_predict",
		"trace_id", tid,
		"category", category,
		"size", rec.Size,
		"confidence", rec.Confidence,
		"used_defaults", rec.UsedDefaults,
		"alternatives", len(rec.Alternatives),
	)

	FitPredictionsTotal.
		WithLabelValues(category, strconv.FormatBool(rec.UsedDefaults)).
		Inc()

	return rec, nil
}

// PredictForUser pulls the user's recent feedback history, predicts, and
// persists an audit record. Audit failures are logged, never surfaced: the
// recommendation itself is already computed and valid.
func (s *FitService) PredictForUser(
	ctx context.Context,
	userID uint,
	measurements domain.MeasurementSet,
	category string,
	preference domain.FitPreference,
	bodyType domain.BodyTypeHint,
) (domain.Recommendation, error) {

	if err := ctx.Err(); err != nil {
		return domain.Recommendation{}, fmt.Errorf("context error: %w", err)
	}

	var history []domain.FitFeedback
	if s.feedbackRepo != nil {
		var err error
		history, err = s.feedbackRepo.FindRecent(ctx, userID, category, s.cfg.FeedbackWindow)
		if err != nil {
			// degraded prediction beats no prediction; feedback is optional
			logger.Error("failed to load fit feedback history", err)
			history = nil
		}
	}

	rec, err := s.Predict(ctx, measurements, category, preference, bodyType, history)
	if err != nil {
		return domain.Recommendation{}, err
	}

	if s.auditRepo != nil {
		audit := domain.PredictionLog{
			PredictionID: uuid.NewString(),
			UserID:       userID,
			Category:     category,
			Size:         rec.Size,
			Confidence:   rec.Confidence,
			UsedDefaults: rec.UsedDefaults,
			Context: datatypes.JSONMap{
				"preference":        string(preference),
				"body_type":         string(bodyType),
				"measurement_count": len(measurements),
				"feedback_count":    len(history),
				"served_at":         time.Now().Format(time.RFC3339),
			},
		}
		if err := s.auditRepo.SavePrediction(ctx, audit); err != nil {
			logger.Error("failed to save prediction audit log", err)
		}
	}

	return rec, nil
}

// GetSizeChart is the read accessor for callers displaying raw ranges.
func (s *FitService) GetSizeChart(ctx context.Context, category string) (domain.SizeChart, error) {
	if err := ctx.Err(); err != nil {
		return domain.SizeChart{}, fmt.Errorf("context error: %w", err)
	}

	chart, ok, err := s.chartRepo.GetChart(ctx, category)
	if err != nil {
		return domain.SizeChart{}, fmt.Errorf("failed to load size chart: %w", err)
	}
	if !ok {
		return domain.SizeChart{}, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	return chart, nil
}

// Categories lists the categories with a configured chart.
func (s *FitService) Categories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.chartRepo.Categories(ctx)
}

// resolveChart finds the category's chart, falling back to the configured
// generic chart for unknown categories. The fallback is counted and logged;
// it must never be silent.
func (s *FitService) resolveChart(ctx context.Context, category string) (domain.SizeChart, error) {
	chart, ok, err := s.chartRepo.GetChart(ctx, category)
	if err != nil {
		return domain.SizeChart{}, fmt.Errorf("failed to load size chart: %w", err)
	}
	if ok {
		return chart, nil
	}

	if s.cfg.FallbackCategory == "" || s.cfg.FallbackCategory == category {
		return domain.SizeChart{}, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	fallback, ok, err := s.chartRepo.GetChart(ctx, s.cfg.FallbackCategory)
	if err != nil {
		return domain.SizeChart{}, fmt.Errorf("failed to load fallback size chart: %w", err)
	}
	if !ok {
		return domain.SizeChart{}, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	logger.Warn("unknown category, using fallback size chart",
		"category", category,
		"fallback", s.cfg.FallbackCategory,
	)
	FitChartFallbackTotal.WithLabelValues(category).Inc()

	return fallback, nil
}

// ---- Core computation ----

// computeRecommendation runs the full pipeline on local data:
// score -> rank -> preference alternatives -> feedback bias -> confidence.
func computeRecommendation(
	chart domain.SizeChart,
	category string,
	measurements domain.MeasurementSet,
	preference domain.FitPreference,
	bodyType domain.BodyTypeHint,
	history []domain.FitFeedback,
	cfg Config,
) (domain.Recommendation, error) {

	if len(chart.Bands) == 0 {
		return domain.Recommendation{}, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	m := measurements.Sanitized()
	usedDefaults := false

	// fall back to population-average defaults only when the shopper gave
	// us nothing the chart can use; partial sets score on what they share
	if len(m) == 0 || !overlapsChart(m, chart) {
		if len(cfg.Defaults) == 0 {
			return domain.Recommendation{}, ErrInsufficientData
		}
		m = fillDefaults(m, cfg.Defaults, chart)
		usedDefaults = true
	}

	scores := scoreChart(m, chart, cfg.SoftTolerance)
	if len(scores) == 0 {
		// defaults did not cover any chart field either
		return domain.Recommendation{}, ErrInsufficientData
	}

	best, rankedAlts := rank(scores, chart.MiddleIndex(), cfg.AlternativeFloor, cfg.MaxAlternatives)

	prefAlts := adjustForPreference(chart, category, best.index, best.score, preference, bodyType, cfg)

	finalIndex, _ := biasFromFeedback(best.index, history, category, len(chart.Bands))

	totalFields := len(chart.FieldNames())
	confidence := computeConfidence(best.score, best.fieldsChecked, totalFields, usedDefaults, cfg)

	primary := chart.Bands[finalIndex].Label

	alternatives := assembleAlternatives(chart, primary, prefAlts, rankedAlts, cfg.MaxAlternatives)

	return domain.Recommendation{
		Size:         primary,
		Confidence:   confidence,
		Alternatives: alternatives,
		UsedDefaults: usedDefaults,
	}, nil
}

// assembleAlternatives merges preference-driven and ranked alternatives.
// Preference alternatives surface first. The primary size never appears,
// no size appears twice, and a duplicate keeps the higher confidence.
func assembleAlternatives(
	chart domain.SizeChart,
	primary string,
	prefAlts []domain.Alternative,
	rankedAlts []bandScore,
	maxAlts int,
) []domain.Alternative {

	merged := make([]domain.Alternative, 0, len(prefAlts)+len(rankedAlts))
	position := make(map[string]int)

	add := func(alt domain.Alternative) {
		if alt.Size == primary {
			return
		}
		if i, ok := position[alt.Size]; ok {
			if alt.Confidence > merged[i].Confidence {
				merged[i].Confidence = alt.Confidence
				if alt.Note != "" {
					merged[i].Note = alt.Note
				}
			}
			return
		}
		position[alt.Size] = len(merged)
		merged = append(merged, alt)
	}

	for _, alt := range prefAlts {
		add(alt)
	}
	for _, bs := range rankedAlts {
		add(domain.Alternative{
			Size:       chart.Bands[bs.index].Label,
			Confidence: roundScore(bs.score),
		})
	}

	if len(merged) > maxAlts {
		merged = merged[:maxAlts]
	}

	return merged
}
