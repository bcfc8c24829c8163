//go:build !integration

package fit

import (
	"math/rand"
	"reflect"
	"testing"

	"myFitAdvisor/domain"
)

// Exercises the whole pipeline with randomized inputs and checks the output
// invariants hold on every run, and that reruns on identical input reproduce
// identical recommendations.
func TestRecommendationInvariantsUnderRandomInput(t *testing.T) {
	const iterations = 5000

	rng := rand.New(rand.NewSource(1))
	cfg := DefaultConfig()
	chart := testChart()

	preferences := []domain.FitPreference{
		domain.PreferenceSlim, domain.PreferenceRegular, domain.PreferenceLoose,
	}
	bodyTypes := []domain.BodyTypeHint{"", domain.BodyTypeAthletic}
	outcomes := []domain.FitOutcome{
		domain.OutcomeTooSmall, domain.OutcomeSlightlySmall, domain.OutcomePerfect,
		domain.OutcomeSlightlyLarge, domain.OutcomeTooLarge,
	}

	violations := 0
	for i := 0; i < iterations; i++ {
		m := domain.MeasurementSet{
			"chest": 60 + rng.Float64()*60,
		}
		if rng.Intn(2) == 0 {
			m["waist"] = 60 + rng.Float64()*40
		}

		var history []domain.FitFeedback
		if rng.Intn(3) == 0 {
			history = []domain.FitFeedback{{
				Category:  "tops",
				SizeGiven: chart.Bands[rng.Intn(len(chart.Bands))].Label,
				Outcome:   outcomes[rng.Intn(len(outcomes))],
			}}
		}

		pref := preferences[rng.Intn(len(preferences))]
		body := bodyTypes[rng.Intn(len(bodyTypes))]

		rec, err := computeRecommendation(chart, "tops", m, pref, body, history, cfg)
		if err != nil {
			t.Fatalf("iteration %d: unexpected error: %v", i, err)
		}

		again, err := computeRecommendation(chart, "tops", m, pref, body, history, cfg)
		if err != nil {
			t.Fatalf("iteration %d: rerun errored: %v", i, err)
		}
		if !reflect.DeepEqual(rec, again) {
			t.Fatalf("iteration %d: rerun diverged:\n  first  %+v\n  second %+v", i, rec, again)
		}

		if rec.Size == "" {
			violations++
			t.Errorf("iteration %d: empty size", i)
		}
		if rec.Confidence < 0 || rec.Confidence > 100 {
			violations++
			t.Errorf("iteration %d: confidence %d out of bounds", i, rec.Confidence)
		}
		if len(rec.Alternatives) > cfg.MaxAlternatives {
			violations++
			t.Errorf("iteration %d: %d alternatives over cap", i, len(rec.Alternatives))
		}
		seen := make(map[string]struct{}, len(rec.Alternatives))
		for _, alt := range rec.Alternatives {
			if alt.Size == rec.Size {
				violations++
				t.Errorf("iteration %d: primary %s repeated in alternatives", i, rec.Size)
			}
			if _, dup := seen[alt.Size]; dup {
				violations++
				t.Errorf("iteration %d: duplicate alternative %s", i, alt.Size)
			}
			seen[alt.Size] = struct{}{}
		}

		if violations > 10 {
			t.Fatalf("too many invariant violations, stopping early")
		}
	}

	t.Logf("ran %d randomized predictions, %d invariant violations", iterations, violations)
}
