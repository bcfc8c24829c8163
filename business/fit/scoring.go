package fit

import "myFitAdvisor/domain"

// scoreBand computes the 0..100 match score of one size band against the
// supplied measurements. Only fields present in both the input and the band's
// range set count: 1.0 point inside [min, max], 0.5 inside the soft-tolerance
// window [min-tol, max+tol], 0 otherwise.
//
// fieldsChecked == 0 means the band shares no field with the input; callers
// must exclude such bands from ranking instead of treating them as a true
// zero-confidence match.
func scoreBand(m domain.MeasurementSet, band domain.SizeBand, tol float64) (score float64, fieldsChecked int) {
	points := 0.0
	for name, r := range band.Ranges {
		v, ok := m[name]
		if !ok {
			continue
		}
		fieldsChecked++
		switch {
		case r.Contains(v):
			points += 1.0
		case r.ContainsWithTolerance(v, tol):
			points += 0.5
		}
	}
	if fieldsChecked == 0 {
		return 0, 0
	}
	return points / float64(fieldsChecked) * 100, fieldsChecked
}

// bandScore pairs a chart index with its match score.
type bandScore struct {
	index         int
	score         float64
	fieldsChecked int
}

// scoreChart scores every band, dropping bands with no overlapping fields.
func scoreChart(m domain.MeasurementSet, chart domain.SizeChart, tol float64) []bandScore {
	scores := make([]bandScore, 0, len(chart.Bands))
	for i, band := range chart.Bands {
		s, fields := scoreBand(m, band, tol)
		if fields == 0 {
			continue
		}
		scores = append(scores, bandScore{index: i, score: s, fieldsChecked: fields})
	}
	return scores
}
