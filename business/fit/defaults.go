package fit

import "myFitAdvisor/domain"

// DefaultMeasurements are population-average values (cm, kg for weight) used
// only when a shopper supplies none of the fields a chart cares about.
func DefaultMeasurements() domain.MeasurementSet {
	return domain.MeasurementSet{
		domain.MeasurementHeight:    170,
		domain.MeasurementWeight:    70,
		domain.MeasurementChest:     96,
		domain.MeasurementWaist:     84,
		domain.MeasurementHips:      100,
		domain.MeasurementInseam:    78,
		domain.MeasurementShoulders: 46,
		domain.MeasurementArmLength: 60,
	}
}

// fillDefaults returns measurements completed with default values for every
// chart field the shopper did not supply. The shopper's own values win.
func fillDefaults(m domain.MeasurementSet, defaults domain.MeasurementSet, chart domain.SizeChart) domain.MeasurementSet {
	out := make(domain.MeasurementSet, len(m)+len(defaults))
	for _, name := range chart.FieldNames() {
		if v, ok := defaults[name]; ok {
			out[name] = v
		}
	}
	for name, v := range m {
		out[name] = v
	}
	return out
}

// overlapsChart reports whether any supplied measurement is used by the chart.
func overlapsChart(m domain.MeasurementSet, chart domain.SizeChart) bool {
	for _, band := range chart.Bands {
		for name := range band.Ranges {
			if _, ok := m[name]; ok {
				return true
			}
		}
	}
	return false
}
