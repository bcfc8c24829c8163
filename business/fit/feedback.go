package fit

import "myFitAdvisor/domain"

// biasFromFeedback shifts the candidate index by at most one band based on
// the single most recent outcome for the same category. History is expected
// newest-first; older records and other categories are ignored. The latest
// purchase outcome wins, there is no averaging.
//
// Returns the (possibly clamped) index and whether any bias was applied.
// No matching feedback is a no-op, not an error.
func biasFromFeedback(candidateIndex int, history []domain.FitFeedback, category string, chartLen int) (int, bool) {
	if chartLen == 0 {
		return candidateIndex, false
	}

	for _, fb := range history {
		if fb.Category != category {
			continue
		}

		shift := 0
		switch fb.Outcome {
		case domain.OutcomeTooSmall, domain.OutcomeSlightlySmall:
			shift = 1
		case domain.OutcomeTooLarge, domain.OutcomeSlightlyLarge:
			shift = -1
		case domain.OutcomePerfect:
			shift = 0
		default:
			// unknown outcome value, skip rather than guess
			continue
		}

		biased := candidateIndex + shift
		if biased < 0 {
			biased = 0
		}
		if biased > chartLen-1 {
			biased = chartLen - 1
		}
		return biased, shift != 0
	}

	return candidateIndex, false
}
