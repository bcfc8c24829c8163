package domain

// Canonical measurement names. Values are centimeters except weight (kilograms).
const (
	MeasurementHeight    = "height"
	MeasurementWeight    = "weight"
	MeasurementChest     = "chest"
	MeasurementWaist     = "waist"
	MeasurementHips      = "hips"
	MeasurementInseam    = "inseam"
	MeasurementShoulders = "shoulders"
	MeasurementArmLength = "arm_length"
)

// MeasurementSet maps measurement name to a positive value.
// Partial sets are valid; a missing field means "unknown", never zero.
type MeasurementSet map[string]float64

// Sanitized returns a copy with non-positive entries dropped.
func (m MeasurementSet) Sanitized() MeasurementSet {
	out := make(MeasurementSet, len(m))
	for name, v := range m {
		if v > 0 {
			out[name] = v
		}
	}
	return out
}
