// # cmd/codeatlas/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeatlas/internal/config"
	"codeatlas/internal/diag"
	"codeatlas/internal/shared/observability"
)

var (
	configPath = flag.String("config", "./codeatlas.toml", "Path to config file")
	once       = flag.Bool("once", false, "Run single scan and exit")
	watch      = flag.Bool("watch", false, "Rescan on file changes until interrupted")
	doctor     = flag.Bool("doctor", false, "Check language profiles and exit")
	trends     = flag.Int("trends", 0, "Print a trend report over the last N recorded runs and exit")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	version    = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

// trendWindow spans the moving averages in -trends output.
const trendWindow = 24 * time.Hour

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("codeatlas v%s\n", VERSION)
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if *doctor {
		if err := runDoctor(os.Stdout); err != nil {
			slog.Error("doctor failed", "error", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Load config; a missing file at the default location means defaults.
	cfg, err := config.Load(*configPath)
	if err != nil {
		if *configPath == "./codeatlas.toml" && errors.Is(err, fs.ErrNotExist) {
			cfg = config.Default()
		} else {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
	}

	if flag.NArg() > 0 {
		cfg.ScanPaths = flag.Args()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitTracing(ctx, cfg.Tracing.Endpoint)
	if err != nil {
		slog.Error("failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Warn("tracing shutdown failed", "error", err)
		}
	}()

	var obs *observability.Server
	if cfg.Metrics.Addr != "" {
		obs = observability.NewServer(cfg.Metrics.Addr)
		if err := obs.Start(); err != nil {
			slog.Error("failed to start observability server", "error", err)
			os.Exit(1)
		}
		defer obs.Stop(context.Background())
	}

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	if *trends > 0 {
		report, err := app.Trends(*trends, trendWindow)
		if err != nil {
			slog.Error("failed to build trend report", "error", err)
			os.Exit(1)
		}
		printTrends(report)
		return
	}

	if err := app.RunOnce(ctx); err != nil {
		slog.Error("scan failed", "error", err)
		os.Exit(1)
	}

	if *watch && !*once {
		if err := app.Watch(ctx); err != nil {
			slog.Error("watch failed", "error", err)
			os.Exit(1)
		}
	}
}

func runDoctor(out *os.File) error {
	caps, err := diag.CheckAll()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%-12s %-9s %-6s %-8s %s\n", "LANGUAGE", "FUNCTIONS", "TYPES", "IMPORTS", "DOCSTRINGS")
	for _, c := range caps {
		fmt.Fprintf(out, "%-12s %-9s %-6s %-8s %s\n",
			c.Language, mark(c.Functions), mark(c.Types), mark(c.Imports), mark(c.Docstrings))
	}
	return nil
}

func mark(ok bool) string {
	if ok {
		return "ok"
	}
	return "MISSING"
}
