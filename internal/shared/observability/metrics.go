package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ParsingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "codeatlas_parsing_seconds",
		Help:    "Time spent parsing a source file.",
		Buckets: prometheus.DefBuckets,
	}, []string{"language"})

	FilesProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codeatlas_files_processed_total",
		Help: "Total number of source files parsed, by language.",
	}, []string{"language"})

	DeclarationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codeatlas_declarations_total",
		Help: "Total number of declarations extracted.",
	})

	ImportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codeatlas_imports_total",
		Help: "Total number of imported modules recorded.",
	})

	ParseErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codeatlas_parse_errors_total",
		Help: "Total number of files whose parse returned an error.",
	})

	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "codeatlas_run_seconds",
		Help:    "Wall-clock time of a full extraction run.",
		Buckets: prometheus.DefBuckets,
	})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codeatlas_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})
)
