package fit

import (
	"context"
	"errors"
	"testing"

	"myFitAdvisor/domain"
)

type fakeChartRepo struct {
	charts map[string]domain.SizeChart
}

func (f *fakeChartRepo) GetChart(ctx context.Context, category string) (domain.SizeChart, bool, error) {
	chart, ok := f.charts[category]
	return chart, ok, nil
}

func (f *fakeChartRepo) Categories(ctx context.Context) ([]string, error) {
	out := make([]string, 0, len(f.charts))
	for category := range f.charts {
		out = append(out, category)
	}
	return out, nil
}

type fakeFeedbackRepo struct {
	records []domain.FitFeedback
}

func (f *fakeFeedbackRepo) FindRecent(ctx context.Context, userID uint, category string, limit int) ([]domain.FitFeedback, error) {
	return f.records, nil
}

type fakeAuditRepo struct {
	saved []domain.PredictionLog
}

func (f *fakeAuditRepo) SavePrediction(ctx context.Context, log domain.PredictionLog) error {
	f.saved = append(f.saved, log)
	return nil
}

func newTestService(charts map[string]domain.SizeChart, feedback []domain.FitFeedback) (*FitService, *fakeAuditRepo) {
	audit := &fakeAuditRepo{}
	svc := NewFitService(
		&fakeChartRepo{charts: charts},
		&fakeFeedbackRepo{records: feedback},
		audit,
		DefaultConfig(),
	)
	return svc, audit
}

func topsCharts() map[string]domain.SizeChart {
	return map[string]domain.SizeChart{"tops": testChart()}
}

func TestPredictSingleFieldInRange(t *testing.T) {
	svc, _ := newTestService(topsCharts(), nil)

	rec, err := svc.Predict(context.Background(), domain.MeasurementSet{"chest": 88}, "tops", domain.PreferenceRegular, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Size != "M" {
		t.Fatalf("size = %s, want M", rec.Size)
	}
	if rec.Confidence < 85 {
		t.Fatalf("confidence = %d, want >= 85", rec.Confidence)
	}
	if rec.UsedDefaults {
		t.Fatalf("usedDefaults must be false for a supplied in-range measurement")
	}
}

func TestPredictTieDeterministic(t *testing.T) {
	svc, _ := newTestService(topsCharts(), nil)

	// 86 sits on the S/M boundary: both bands score 100
	for i := 0; i < 100; i++ {
		rec, err := svc.Predict(context.Background(), domain.MeasurementSet{"chest": 86}, "tops", domain.PreferenceRegular, "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Size != "M" {
			t.Fatalf("run %d: tie must resolve to the middle band M, got %s", i, rec.Size)
		}
	}
}

func TestPredictSlimPreferenceAdvisoryOnly(t *testing.T) {
	svc, _ := newTestService(topsCharts(), nil)

	rec, err := svc.Predict(context.Background(), domain.MeasurementSet{"chest": 90}, "tops", domain.PreferenceSlim, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Size != "M" {
		t.Fatalf("slim must not move the primary size, got %s", rec.Size)
	}
	if len(rec.Alternatives) == 0 {
		t.Fatalf("slim must surface an advisory alternative")
	}
	first := rec.Alternatives[0]
	if first.Size != "S" || first.Note != "for slim fit" {
		t.Fatalf("first alternative = %+v, want S / for slim fit", first)
	}
	if first.Confidence != 90 {
		t.Fatalf("slim alternative confidence = %d, want 90", first.Confidence)
	}
}

func TestPredictFeedbackBiasShiftsDown(t *testing.T) {
	history := []domain.FitFeedback{{Category: "tops", SizeGiven: "L", Outcome: domain.OutcomeTooLarge}}
	svc, _ := newTestService(topsCharts(), history)

	rec, err := svc.Predict(context.Background(), domain.MeasurementSet{"chest": 93}, "tops", domain.PreferenceRegular, "", history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Size != "M" {
		t.Fatalf("too_large feedback on L must bias to M, got %s", rec.Size)
	}
}

func TestPredictAlternativesNeverContainPrimaryOrDuplicates(t *testing.T) {
	svc, _ := newTestService(topsCharts(), nil)

	rec, err := svc.Predict(context.Background(), domain.MeasurementSet{"chest": 86}, "tops", domain.PreferenceSlim, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]int)
	for _, alt := range rec.Alternatives {
		if alt.Size == rec.Size {
			t.Fatalf("alternatives contain the primary size %s", rec.Size)
		}
		seen[alt.Size]++
	}
	for size, n := range seen {
		if n > 1 {
			t.Fatalf("size %s appears %d times in alternatives", size, n)
		}
	}

	// S is both the slim advisory (conf 90) and a full-score ranked
	// alternative; the merge keeps the higher confidence and the note
	if len(rec.Alternatives) == 0 || rec.Alternatives[0].Size != "S" {
		t.Fatalf("expected merged S alternative first, got %+v", rec.Alternatives)
	}
	if rec.Alternatives[0].Confidence != 100 {
		t.Fatalf("merged confidence = %d, want 100", rec.Alternatives[0].Confidence)
	}
	if rec.Alternatives[0].Note != "for slim fit" {
		t.Fatalf("merged note = %q, want slim note kept", rec.Alternatives[0].Note)
	}
}

func TestPredictNoOverlapFallsBackToDefaults(t *testing.T) {
	svc, _ := newTestService(topsCharts(), nil)

	rec, err := svc.Predict(context.Background(), domain.MeasurementSet{"inseam": 78}, "tops", domain.PreferenceRegular, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.UsedDefaults {
		t.Fatalf("defaulted prediction must set usedDefaults")
	}
	// default chest of 96 lands in L's hard range
	if rec.Size != "L" {
		t.Fatalf("size = %s, want L from default chest", rec.Size)
	}
	if rec.Confidence != 90 {
		t.Fatalf("confidence = %d, want 90 after defaults penalty", rec.Confidence)
	}
}

func TestPredictEmptyMeasurementsNoDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Defaults = nil
	svc := NewFitService(&fakeChartRepo{charts: topsCharts()}, nil, nil, cfg)

	_, err := svc.Predict(context.Background(), domain.MeasurementSet{}, "tops", domain.PreferenceRegular, "", nil)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestPredictUnknownCategoryUsesFallback(t *testing.T) {
	charts := topsCharts()
	charts["generic"] = domain.SizeChart{
		Category: "generic",
		Bands: []domain.SizeBand{
			{Label: "S", Ranges: map[string]domain.Range{"chest": {Min: 81, Max: 88}}},
			{Label: "M", Ranges: map[string]domain.Range{"chest": {Min: 88, Max: 95}}},
		},
	}
	svc, _ := newTestService(charts, nil)

	rec, err := svc.Predict(context.Background(), domain.MeasurementSet{"chest": 90}, "hats", domain.PreferenceRegular, "", nil)
	if err != nil {
		t.Fatalf("fallback chart must serve unknown categories, got %v", err)
	}
	if rec.Size != "M" {
		t.Fatalf("size = %s, want M from generic chart", rec.Size)
	}
}

func TestPredictUnknownCategoryNoFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FallbackCategory = ""
	svc := NewFitService(&fakeChartRepo{charts: topsCharts()}, nil, nil, cfg)

	_, err := svc.Predict(context.Background(), domain.MeasurementSet{"chest": 90}, "hats", domain.PreferenceRegular, "", nil)
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestPredictForUserSavesAuditRecord(t *testing.T) {
	svc, audit := newTestService(topsCharts(), nil)

	rec, err := svc.PredictForUser(context.Background(), 42, domain.MeasurementSet{"chest": 88}, "tops", domain.PreferenceRegular, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(audit.saved) != 1 {
		t.Fatalf("expected 1 audit record, got %d", len(audit.saved))
	}
	saved := audit.saved[0]
	if saved.UserID != 42 || saved.Category != "tops" || saved.Size != rec.Size {
		t.Fatalf("audit record mismatch: %+v", saved)
	}
	if saved.PredictionID == "" {
		t.Fatalf("audit record must carry a prediction id")
	}
}

func TestGetSizeChartUnknown(t *testing.T) {
	svc, _ := newTestService(topsCharts(), nil)

	_, err := svc.GetSizeChart(context.Background(), "hats")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}
