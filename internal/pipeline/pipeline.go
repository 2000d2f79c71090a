// # internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/gobwas/glob"
	"go.opentelemetry.io/otel/attribute"

	"codeatlas/internal/config"
	"codeatlas/internal/grammar"
	"codeatlas/internal/heuristic"
	"codeatlas/internal/shared/observability"
	"codeatlas/internal/shared/util"
)

// FileResult pairs one parsed file with the profile that handled it.
type FileResult struct {
	Path     string
	Language string
	Result   heuristic.ParseResult
}

// Summary aggregates one run. ByLanguage counts files per profile name.
type Summary struct {
	Files        int
	Declarations int
	Imports      int
	Errors       int
	ByLanguage   map[string]int
	Elapsed      time.Duration
}

// Pipeline walks source trees and fans whole files out to a bounded worker
// pool. Files are never split across workers; the parser core is stateless
// per call, so no further synchronization is needed.
type Pipeline struct {
	cfg       *config.Config
	dirGlobs  []glob.Glob
	fileGlobs []glob.Glob
	limiter   *util.Limiter
}

func New(cfg *config.Config) (*Pipeline, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	p := &Pipeline{cfg: cfg}

	for _, pattern := range cfg.Exclude.Dirs {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude dir pattern %q: %w", pattern, err)
		}
		p.dirGlobs = append(p.dirGlobs, g)
	}
	for _, pattern := range cfg.Exclude.Files {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude file pattern %q: %w", pattern, err)
		}
		p.fileGlobs = append(p.fileGlobs, g)
	}

	if cfg.Throttle.FilesPerSecond > 0 {
		p.limiter = util.NewLimiter(cfg.Throttle.FilesPerSecond, cfg.Throttle.Burst)
	}

	return p, nil
}

// Run discovers source files under roots (the configured scan paths when
// roots is empty) and parses them all.
func (p *Pipeline) Run(ctx context.Context, roots []string) ([]FileResult, Summary, error) {
	ctx, span := observability.Tracer.Start(ctx, "pipeline.Run")
	defer span.End()

	if len(roots) == 0 {
		roots = p.cfg.ScanPaths
	}

	files, err := p.discover(roots)
	if err != nil {
		return nil, Summary{}, err
	}

	results, sum := p.ParsePaths(ctx, files)
	span.SetAttributes(
		attribute.Int("files", sum.Files),
		attribute.Int("declarations", sum.Declarations),
		attribute.Int("errors", sum.Errors),
	)
	return results, sum, nil
}

// ParsePaths parses the given files on the worker pool and returns results
// sorted by path. Used by Run and by watch-mode incremental re-parses.
func (p *Pipeline) ParsePaths(ctx context.Context, paths []string) ([]FileResult, Summary) {
	started := time.Now()

	workers := p.cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan string)
	results := make([]FileResult, 0, len(paths))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if err := p.limiter.Wait(ctx); err != nil {
					return
				}
				fr, ok := p.parseFile(path)
				if !ok {
					continue
				}
				mu.Lock()
				results = append(results, fr)
				mu.Unlock()
			}
		}()
	}

feed:
	for _, path := range paths {
		select {
		case jobs <- path:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	sum := Summarize(results)
	sum.Elapsed = time.Since(started)
	observability.RunDuration.Observe(sum.Elapsed.Seconds())
	return results, sum
}

// parseFile handles one file end to end. Files without a registered grammar
// are skipped; read and parse failures are recorded, not fatal.
func (p *Pipeline) parseFile(path string) (FileResult, bool) {
	prof, ok := grammar.DetectPath(path)
	if !ok {
		return FileResult{}, false
	}
	if p.cfg.MaxDepth > 0 {
		// Shallow copy so the shared registry profile stays untouched.
		override := *prof
		override.Limits.MaxNestingDepth = p.cfg.MaxDepth
		prof = &override
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("failed to read file", "path", path, "error", err)
		observability.ParseErrorsTotal.Inc()
		return FileResult{
			Path:     path,
			Language: prof.Name,
			Result:   heuristic.ParseResult{Err: err, EngineUsed: heuristic.EngineHeuristic},
		}, true
	}

	parseStart := time.Now()
	res := heuristic.Parse(string(data), path, prof)
	observability.ParsingDuration.WithLabelValues(prof.Name).Observe(time.Since(parseStart).Seconds())
	observability.FilesProcessedTotal.WithLabelValues(prof.Name).Inc()

	if res.Err != nil {
		observability.ParseErrorsTotal.Inc()
		slog.Warn("parse failed", "path", path, "error", res.Err)
	} else {
		observability.DeclarationsTotal.Add(float64(res.CountDeclarations()))
		observability.ImportsTotal.Add(float64(len(res.Imports)))
	}

	return FileResult{Path: path, Language: prof.Name, Result: res}, true
}

// discover walks roots collecting every file with a registered grammar,
// honoring the exclude globs. Roots are deduplicated after cleaning.
func (p *Pipeline) discover(roots []string) ([]string, error) {
	seen := make(map[string]bool, len(roots))
	var files []string

	for _, root := range roots {
		root = filepath.Clean(root)
		if seen[root] {
			continue
		}
		seen[root] = true

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			base := filepath.Base(path)
			if d.IsDir() {
				if path != root && p.excludedDir(base) {
					return filepath.SkipDir
				}
				return nil
			}
			if p.excludedFile(base) {
				return nil
			}
			if _, ok := grammar.DetectPath(path); ok {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %q: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

func (p *Pipeline) excludedDir(base string) bool {
	for _, g := range p.dirGlobs {
		if g.Match(base) {
			return true
		}
	}
	return false
}

func (p *Pipeline) excludedFile(base string) bool {
	for _, g := range p.fileGlobs {
		if g.Match(base) {
			return true
		}
	}
	return false
}

// Summarize derives run totals from results by traversal.
func Summarize(results []FileResult) Summary {
	sum := Summary{ByLanguage: make(map[string]int)}
	for i := range results {
		r := &results[i]
		sum.Files++
		sum.ByLanguage[r.Language]++
		if r.Result.Err != nil {
			sum.Errors++
			continue
		}
		sum.Declarations += r.Result.CountDeclarations()
		sum.Imports += len(r.Result.Imports)
	}
	return sum
}
