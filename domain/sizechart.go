package domain

// Range is an inclusive [Min, Max] window for one measurement.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v falls inside the hard range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// ContainsWithTolerance reports whether v falls inside the range widened by tol
// on both sides (the soft-tolerance window).
func (r Range) ContainsWithTolerance(v, tol float64) bool {
	return v >= r.Min-tol && v <= r.Max+tol
}

// SizeBand is one named size and its per-measurement acceptable ranges.
type SizeBand struct {
	Label  string           `json:"label"`
	Ranges map[string]Range `json:"ranges"`
}

// SizeChart holds the ordered size bands for one garment category.
// Bands are ordered smallest to largest; the order is significant for
// tie-breaking and preference shifting.
type SizeChart struct {
	Category string     `json:"category"`
	Bands    []SizeBand `json:"bands"`
}

// MiddleIndex is the index of the "M"-equivalent band used for tie-breaking.
func (c SizeChart) MiddleIndex() int {
	if len(c.Bands) == 0 {
		return 0
	}
	return (len(c.Bands) - 1) / 2
}

// FieldNames returns the distinct measurement names referenced by any band.
func (c SizeChart) FieldNames() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, band := range c.Bands {
		for name := range band.Ranges {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}
