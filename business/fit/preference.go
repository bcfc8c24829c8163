package fit

import "myFitAdvisor/domain"

const (
	noteSlimFit         = "for slim fit"
	noteRelaxedFit      = "for relaxed fit"
	noteBroaderShoulder = "better for broader shoulders"
)

// adjustForPreference turns the declared preference and body-type hint into
// advisory alternatives around the best-matching band.
//
// The primary recommendation is always the regular-preference best match;
// slim and loose only surface a neighbouring size as the first alternative.
// The athletic hint stacks on top of either preference for tops, proposing
// one size up, and never moves the primary either.
func adjustForPreference(
	chart domain.SizeChart,
	category string,
	bestIndex int,
	bestScore float64,
	preference domain.FitPreference,
	bodyType domain.BodyTypeHint,
	cfg Config,
) []domain.Alternative {

	if len(chart.Bands) == 0 {
		return nil
	}

	alts := make([]domain.Alternative, 0, 2)
	adjusted := bestIndex

	switch preference {
	case domain.PreferenceSlim:
		adjusted = bestIndex - 1
		if adjusted < 0 {
			adjusted = 0
		}
		if adjusted != bestIndex {
			alts = append(alts, domain.Alternative{
				Size:       chart.Bands[adjusted].Label,
				Confidence: confidenceFloor(bestScore - cfg.PreferencePenalty),
				Note:       noteSlimFit,
			})
		}
	case domain.PreferenceLoose:
		adjusted = bestIndex + 1
		if adjusted > len(chart.Bands)-1 {
			adjusted = len(chart.Bands) - 1
		}
		if adjusted != bestIndex {
			alts = append(alts, domain.Alternative{
				Size:       chart.Bands[adjusted].Label,
				Confidence: confidenceFloor(bestScore - cfg.PreferencePenalty),
				Note:       noteRelaxedFit,
			})
		}
	}

	// body type is secondary and advisory only
	if bodyType == domain.BodyTypeAthletic && category == "tops" && adjusted < len(chart.Bands)-1 {
		alts = append(alts, domain.Alternative{
			Size:       chart.Bands[adjusted+1].Label,
			Confidence: confidenceFloor(bestScore - cfg.BodyTypePenalty),
			Note:       noteBroaderShoulder,
		})
	}

	return alts
}

func confidenceFloor(v float64) int {
	if v < 0 {
		return 0
	}
	return roundScore(v)
}
