package fit

import "math"

// computeConfidence derives the 0..100 confidence for a recommendation.
//
// Base is the raw match score. Supplying fewer than half the fields the chart
// uses and falling back to defaulted measurements each cost a fixed penalty.
// Feedback bias never changes confidence: it reflects a different garment and
// carries its own uncertainty.
func computeConfidence(rawScore float64, fieldsChecked, totalPossibleFields int, usedDefaults bool, cfg Config) int {
	c := rawScore

	if totalPossibleFields > 0 && float64(fieldsChecked) < float64(totalPossibleFields)/2 {
		c -= cfg.FewFieldsPenalty
	}
	if usedDefaults {
		c -= cfg.DefaultsPenalty
	}

	if c < 0 {
		c = 0
	}
	if c > 100 {
		c = 100
	}
	return roundScore(c)
}

func roundScore(v float64) int {
	return int(math.Round(v))
}
