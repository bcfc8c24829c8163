package sizechart

import (
	"encoding/json"
	"fmt"
	"os"

	"myFitAdvisor/domain"
)

type chartFile struct {
	Charts []chartEntry `json:"charts"`
}

type chartEntry struct {
	Category string      `json:"category"`
	Bands    []bandEntry `json:"bands"`
}

type bandEntry struct {
	Label  string                `json:"label"`
	Ranges map[string][2]float64 `json:"ranges"`
}

// LoadCharts reads and validates category-keyed size charts from a JSON file.
// Bands keep file order, which must run smallest to largest.
func LoadCharts(path string) (map[string]domain.SizeChart, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read size chart file: %w", err)
	}

	var file chartFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse size chart file: %w", err)
	}
	if len(file.Charts) == 0 {
		return nil, fmt.Errorf("size chart file %s contains no charts", path)
	}

	charts := make(map[string]domain.SizeChart, len(file.Charts))
	for _, entry := range file.Charts {
		chart, err := buildChart(entry)
		if err != nil {
			return nil, err
		}
		if _, exists := charts[chart.Category]; exists {
			return nil, fmt.Errorf("duplicate size chart for category %q", chart.Category)
		}
		charts[chart.Category] = chart
	}

	return charts, nil
}

func buildChart(entry chartEntry) (domain.SizeChart, error) {
	if entry.Category == "" {
		return domain.SizeChart{}, fmt.Errorf("size chart with empty category")
	}
	if len(entry.Bands) == 0 {
		return domain.SizeChart{}, fmt.Errorf("size chart %q has no bands", entry.Category)
	}

	seen := make(map[string]struct{}, len(entry.Bands))
	bands := make([]domain.SizeBand, 0, len(entry.Bands))

	for _, be := range entry.Bands {
		if be.Label == "" {
			return domain.SizeChart{}, fmt.Errorf("size chart %q has a band with empty label", entry.Category)
		}
		if _, dup := seen[be.Label]; dup {
			return domain.SizeChart{}, fmt.Errorf("size chart %q has duplicate band %q", entry.Category, be.Label)
		}
		seen[be.Label] = struct{}{}

		if len(be.Ranges) == 0 {
			return domain.SizeChart{}, fmt.Errorf("band %q in chart %q has no measurement ranges", be.Label, entry.Category)
		}

		ranges := make(map[string]domain.Range, len(be.Ranges))
		for name, mm := range be.Ranges {
			if name == "" {
				return domain.SizeChart{}, fmt.Errorf("band %q in chart %q has an unnamed measurement", be.Label, entry.Category)
			}
			if mm[0] > mm[1] {
				return domain.SizeChart{}, fmt.Errorf("band %q in chart %q has inverted range for %s", be.Label, entry.Category, name)
			}
			ranges[name] = domain.Range{Min: mm[0], Max: mm[1]}
		}

		bands = append(bands, domain.SizeBand{Label: be.Label, Ranges: ranges})
	}

	return domain.SizeChart{Category: entry.Category, Bands: bands}, nil
}
