package fit

import "myFitAdvisor/domain"

// Config tunes the fit engine heuristics. All knobs are deterministic;
// there is no trained model behind any of them.
type Config struct {
	// soft-tolerance margin outside a band's hard range (cm)
	SoftTolerance float64

	// alternatives must score strictly above this to be surfaced
	AlternativeFloor float64
	MaxAlternatives  int

	// confidence adjustments
	FewFieldsPenalty  float64
	DefaultsPenalty   float64
	PreferencePenalty float64
	BodyTypePenalty   float64

	// how many recent feedback records are fetched per (user, category);
	// only the most recent matching record actually biases the result
	FeedbackWindow int

	// category used when the requested one has no chart; empty disables
	// the fallback and unknown categories become an error
	FallbackCategory string

	// population-average fill-ins used only when the supplied measurements
	// share no field with the chart; empty disables defaulting
	Defaults domain.MeasurementSet
}

const (
	defaultSoftTolerance     = 5.0
	defaultAlternativeFloor  = 50.0
	defaultMaxAlternatives   = 3
	defaultFewFieldsPenalty  = 15.0
	defaultDefaultsPenalty   = 10.0
	defaultPreferencePenalty = 10.0
	defaultBodyTypePenalty   = 5.0
	defaultFeedbackWindow    = 3
	defaultFallbackCategory  = "generic"
)

func DefaultConfig() Config {
	return Config{
		SoftTolerance:    defaultSoftTolerance,
		AlternativeFloor: defaultAlternativeFloor,
		MaxAlternatives:  defaultMaxAlternatives,

		FewFieldsPenalty:  defaultFewFieldsPenalty,
		DefaultsPenalty:   defaultDefaultsPenalty,
		PreferencePenalty: defaultPreferencePenalty,
		BodyTypePenalty:   defaultBodyTypePenalty,

		FeedbackWindow:   defaultFeedbackWindow,
		FallbackCategory: defaultFallbackCategory,

		Defaults: DefaultMeasurements(),
	}
}
