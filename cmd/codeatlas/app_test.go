// # cmd/codeatlas/app_test.go
package main

import (
	"path/filepath"
	"testing"
	"time"

	"codeatlas/internal/config"
	"codeatlas/internal/history"
)

func TestAppTrends(t *testing.T) {
	cfg := config.Default()
	cfg.History.Path = filepath.Join(t.TempDir(), "runs.db")

	app, err := NewApp(cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer app.Close()

	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	for i, decls := range []int{100, 110, 121} {
		run := history.Run{
			Timestamp:        base.Add(time.Duration(i) * time.Hour),
			FileCount:        10 + i,
			DeclarationCount: decls,
		}
		if _, err := app.Store.SaveRun(run); err != nil {
			t.Fatalf("save run %d: %v", i, err)
		}
	}

	report, err := app.Trends(2, trendWindow)
	if err != nil {
		t.Fatalf("trends: %v", err)
	}
	if report.RunCount != 2 {
		t.Fatalf("expected report over the 2 newest runs, got %d", report.RunCount)
	}
	if !report.Since.Equal(base.Add(1 * time.Hour)) {
		t.Fatalf("expected oldest run to be the second save, got %v", report.Since)
	}
	last := report.Points[len(report.Points)-1]
	if last.DeltaDeclarations != 11 || last.DeltaFiles != 1 {
		t.Fatalf("unexpected deltas in last point: %+v", last)
	}
	if last.DeclGrowthPct != 10 {
		t.Fatalf("expected 10%% declaration growth, got %v", last.DeclGrowthPct)
	}
}

func TestAppTrendsWithoutHistory(t *testing.T) {
	app, err := NewApp(config.Default())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer app.Close()

	if _, err := app.Trends(5, trendWindow); err == nil {
		t.Fatal("expected error when history is not configured")
	}
}
