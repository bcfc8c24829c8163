package sizechart

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"myFitAdvisor/domain"
	"myFitAdvisor/pkg/logger"
)

// snapshot is the immutable view served to in-flight predictions. Reloads
// build a fresh snapshot and swap the pointer atomically, so a prediction
// never observes a half-updated chart.
type snapshot struct {
	charts     map[string]domain.SizeChart
	categories []string
}

type Service struct {
	path    string
	current atomic.Pointer[snapshot]
}

func NewService(path string) *Service {
	return &Service{path: path}
}

// Load reads charts from the configured file and installs them as the
// current snapshot. Safe to call concurrently with readers.
func (s *Service) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	charts, err := LoadCharts(s.path)
	if err != nil {
		return err
	}

	categories := make([]string, 0, len(charts))
	for category := range charts {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	s.current.Store(&snapshot{charts: charts, categories: categories})

	logger.Info("size charts loaded", "path", s.path, "categories", len(categories))

	return nil
}

// Reload re-reads the chart file. The previous snapshot stays live until the
// new one is fully built.
func (s *Service) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// GetChart returns the chart for a category from the current snapshot.
func (s *Service) GetChart(ctx context.Context, category string) (domain.SizeChart, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.SizeChart{}, false, fmt.Errorf("context error: %w", err)
	}

	snap := s.current.Load()
	if snap == nil {
		return domain.SizeChart{}, false, fmt.Errorf("size charts not loaded")
	}

	chart, ok := snap.charts[category]
	return chart, ok, nil
}

// Categories lists the configured categories in sorted order.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	snap := s.current.Load()
	if snap == nil {
		return nil, fmt.Errorf("size charts not loaded")
	}

	out := make([]string, len(snap.categories))
	copy(out, snap.categories)
	return out, nil
}
