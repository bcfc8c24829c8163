package fit

import "testing"

func TestComputeConfidence(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		name         string
		rawScore     float64
		fields       int
		total        int
		usedDefaults bool
		want         int
	}{
		{"full score no penalties", 100, 2, 2, false, 100},
		{"few fields penalty", 100, 1, 3, false, 85},
		{"defaults penalty", 100, 2, 2, true, 90},
		{"both penalties", 100, 1, 3, true, 75},
		{"half the fields is enough", 80, 1, 2, false, 80},
		{"clamped at zero", 10, 1, 3, true, 0},
		{"rounds to nearest", 66.6, 2, 2, false, 67},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := computeConfidence(tc.rawScore, tc.fields, tc.total, tc.usedDefaults, cfg)
			if got != tc.want {
				t.Fatalf("confidence = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestComputeConfidenceBounds(t *testing.T) {
	cfg := DefaultConfig()

	for raw := -50.0; raw <= 150; raw += 12.5 {
		for fields := 0; fields <= 4; fields++ {
			for _, defaults := range []bool{true, false} {
				got := computeConfidence(raw, fields, 4, defaults, cfg)
				if got < 0 || got > 100 {
					t.Fatalf("confidence %d out of [0,100] for raw=%v fields=%d defaults=%v", got, raw, fields, defaults)
				}
			}
		}
	}
}
