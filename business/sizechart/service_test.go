package sizechart

import (
	"context"
	"os"
	"testing"
)

const singleChart = `{
  "charts": [
    {
      "category": "tops",
      "bands": [
        {"label": "S", "ranges": {"chest": [81, 86]}},
        {"label": "M", "ranges": {"chest": [86, 91]}}
      ]
    }
  ]
}`

func TestServiceNotLoaded(t *testing.T) {
	svc := NewService("unused.json")

	if _, _, err := svc.GetChart(context.Background(), "tops"); err == nil {
		t.Fatalf("GetChart before Load must fail")
	}
	if _, err := svc.Categories(context.Background()); err == nil {
		t.Fatalf("Categories before Load must fail")
	}
}

func TestServiceLoadAndGet(t *testing.T) {
	path := writeChartFile(t, singleChart)
	svc := NewService(path)

	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	chart, ok, err := svc.GetChart(context.Background(), "tops")
	if err != nil || !ok {
		t.Fatalf("GetChart = ok %v err %v", ok, err)
	}
	if chart.Category != "tops" || len(chart.Bands) != 2 {
		t.Fatalf("unexpected chart: %+v", chart)
	}

	if _, ok, _ := svc.GetChart(context.Background(), "hats"); ok {
		t.Fatalf("unknown category must report ok=false")
	}

	cats, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(cats) != 1 || cats[0] != "tops" {
		t.Fatalf("categories = %v, want [tops]", cats)
	}
}

func TestServiceReloadSwapsSnapshot(t *testing.T) {
	path := writeChartFile(t, singleChart)
	svc := NewService(path)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if err := os.WriteFile(path, []byte(validCharts), 0o644); err != nil {
		t.Fatalf("failed to rewrite fixture: %v", err)
	}
	if err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	cats, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(cats) != 2 || cats[0] != "bottoms" || cats[1] != "tops" {
		t.Fatalf("categories after reload = %v, want [bottoms tops]", cats)
	}
}

func TestServiceReloadKeepsOldSnapshotOnError(t *testing.T) {
	path := writeChartFile(t, singleChart)
	svc := NewService(path)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if err := os.WriteFile(path, []byte(`{"charts": [`), 0o644); err != nil {
		t.Fatalf("failed to corrupt fixture: %v", err)
	}
	if err := svc.Reload(context.Background()); err == nil {
		t.Fatalf("reload of a corrupt file must fail")
	}

	// the previous snapshot must still serve
	if _, ok, err := svc.GetChart(context.Background(), "tops"); err != nil || !ok {
		t.Fatalf("old snapshot lost after failed reload: ok %v err %v", ok, err)
	}
}
