package fit

import (
	"math"
	"sort"
)

// rank orders scored bands and picks the best match plus runner-ups.
//
// Best match: highest score; ties go to the band closest to the chart's
// middle index, then to the smaller index (conservative sizing). Alternatives
// are the non-best bands scoring above floor, at most maxAlts of them, score
// descending with ties broken by ascending index. The two-level tie-break is
// deliberate: reruns on identical input must reproduce the same ordering.
func rank(scores []bandScore, middleIndex int, floor float64, maxAlts int) (best bandScore, alternatives []bandScore) {
	if len(scores) == 0 {
		return bandScore{index: -1}, nil
	}

	ordered := make([]bandScore, len(scores))
	copy(ordered, scores)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].score != ordered[j].score {
			return ordered[i].score > ordered[j].score
		}
		di := math.Abs(float64(ordered[i].index - middleIndex))
		dj := math.Abs(float64(ordered[j].index - middleIndex))
		if di != dj {
			return di < dj
		}
		return ordered[i].index < ordered[j].index
	})

	best = ordered[0]

	alternatives = make([]bandScore, 0, maxAlts)
	for _, bs := range ordered[1:] {
		if bs.score <= floor {
			continue
		}
		alternatives = append(alternatives, bs)
	}

	// alternatives keep score order but resolve ties by chart order
	sort.SliceStable(alternatives, func(i, j int) bool {
		if alternatives[i].score != alternatives[j].score {
			return alternatives[i].score > alternatives[j].score
		}
		return alternatives[i].index < alternatives[j].index
	})

	if len(alternatives) > maxAlts {
		alternatives = alternatives[:maxAlts]
	}

	return best, alternatives
}
