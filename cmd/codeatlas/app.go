// # cmd/codeatlas/app.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"codeatlas/internal/config"
	"codeatlas/internal/history"
	"codeatlas/internal/pipeline"
)

type App struct {
	Config   *config.Config
	Pipeline *pipeline.Pipeline
	Store    *history.Store
}

func NewApp(cfg *config.Config) (*App, error) {
	p, err := pipeline.New(cfg)
	if err != nil {
		return nil, err
	}

	var store *history.Store
	if cfg.History.Path != "" {
		store, err = history.Open(cfg.History.Path)
		if err != nil {
			return nil, err
		}
	}

	return &App{
		Config:   cfg,
		Pipeline: p,
		Store:    store,
	}, nil
}

func (a *App) Close() error {
	return a.Store.Close()
}

// RunOnce scans the configured paths, prints a summary and records the run.
func (a *App) RunOnce(ctx context.Context) error {
	results, sum, err := a.Pipeline.Run(ctx, nil)
	if err != nil {
		return err
	}
	printSummary(results, sum)
	a.record(sum)
	return nil
}

// Watch rescans changed files until the context is cancelled.
func (a *App) Watch(ctx context.Context) error {
	w, err := pipeline.NewWatcher(a.Pipeline, func(paths []string) {
		results, sum := a.Pipeline.ParsePaths(ctx, paths)
		slog.Info("rescan complete", "files", sum.Files, "declarations", sum.Declarations, "errors", sum.Errors)
		for _, r := range results {
			slog.Debug("rescanned", "path", r.Path, "language", r.Language, "declarations", r.Result.CountDeclarations())
		}
		a.record(sum)
	})
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Start(nil); err != nil {
		return err
	}
	slog.Info("watching for changes", "paths", a.Config.ScanPaths)

	<-ctx.Done()
	return nil
}

// Trends reports deltas and moving averages over the most recent n runs.
func (a *App) Trends(n int, window time.Duration) (history.TrendReport, error) {
	if a.Store == nil {
		return history.TrendReport{}, fmt.Errorf("run history is not configured, set history.path")
	}
	runs, err := a.Store.Recent(n)
	if err != nil {
		return history.TrendReport{}, err
	}
	return history.BuildTrendReport(runs, window)
}

func (a *App) record(sum pipeline.Summary) {
	if a.Store == nil {
		return
	}
	run := history.Run{
		FileCount:        sum.Files,
		DeclarationCount: sum.Declarations,
		ImportCount:      sum.Imports,
		ErrorCount:       sum.Errors,
		ByLanguage:       sum.ByLanguage,
	}
	if _, err := a.Store.SaveRun(run); err != nil {
		slog.Warn("failed to record run", "error", err)
	}
}

func printTrends(report history.TrendReport) {
	fmt.Printf("trend over %d runs (%s .. %s, window %s)\n",
		report.RunCount,
		report.Since.Format(time.RFC3339),
		report.Until.Format(time.RFC3339),
		report.Window)
	fmt.Println("Timestamp\tFiles\tDecls\tImports\tErrors\tDeltaFiles\tDeltaDecls\tGrowthPct\tAvgDecls\tAvgErrors")
	for _, point := range report.Points {
		fmt.Printf("%s\t%d\t%d\t%d\t%d\t%d\t%d\t%.2f\t%.2f\t%.2f\n",
			point.Timestamp.Format(time.RFC3339),
			point.FileCount,
			point.DeclarationCount,
			point.ImportCount,
			point.ErrorCount,
			point.DeltaFiles,
			point.DeltaDeclarations,
			point.DeclGrowthPct,
			point.AvgDeclarations,
			point.AvgErrors)
	}
}

func printSummary(results []pipeline.FileResult, sum pipeline.Summary) {
	fmt.Printf("scanned %d files in %s: %d declarations, %d imports, %d errors\n",
		sum.Files, sum.Elapsed.Round(time.Millisecond), sum.Declarations, sum.Imports, sum.Errors)

	languages := make([]string, 0, len(sum.ByLanguage))
	for lang := range sum.ByLanguage {
		languages = append(languages, lang)
	}
	sort.Strings(languages)
	for _, lang := range languages {
		fmt.Printf("  %-12s %d files\n", lang, sum.ByLanguage[lang])
	}

	for _, r := range results {
		if r.Result.Err != nil {
			fmt.Printf("  error: %s: %v\n", r.Path, r.Result.Err)
		}
	}
}
