// main.go is the entry point for the videohash-indexer server. It wires
// together the coordinator (registry + MIH index), the recent-activity
// feed, and the HTTP transport adapter, then blocks in serve() until a
// shutdown signal arrives.
//
// Startup Sequence
// ================
//
// Configuration is read once from the environment (internal/config), a
// fresh in-memory Coordinator is constructed with the configured Hamming
// threshold and duplicate-similarity threshold, and the HTTP listener is
// bound before the process reports itself ready. The index is volatile:
// there is no on-disk state to load, so there is no warm-up phase.
//
// Graceful Shutdown
// =================
//
// On SIGINT/SIGTERM, serve() stops accepting new connections and waits for
// in-flight requests to finish, bounded by a shutdown timeout, built on top
// of net/http's built-in Shutdown.
package main

import (
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/dolr-ai/videohash-indexer/internal/activity"
	"github.com/dolr-ai/videohash-indexer/internal/config"
	"github.com/dolr-ai/videohash-indexer/internal/coordinator"
)

type application struct {
	cfg       config.Config
	logger    *slog.Logger
	coord     *coordinator.Coordinator
	activity  *activity.Feed
	metrics   *Metrics
	router    *Router
	listener  net.Listener
	readyCh   chan struct{}
	startedAt time.Time
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	app := &application{
		cfg:    cfg,
		logger: logger,
		coord: coordinator.New(
			coordinator.WithMaxHammingDistance(cfg.HammingThreshold),
			coordinator.WithDuplicateSimilarity(cfg.DuplicateSimilarity),
		),
		activity:  activity.New(activity.DefaultCapacity),
		metrics:   NewMetrics(),
		startedAt: time.Now(),
	}
	app.router = app.routes()

	logger.Info("starting videohash-indexer",
		"bind_address", cfg.BindAddress,
		"hamming_threshold", cfg.HammingThreshold,
		"duplicate_similarity", cfg.DuplicateSimilarity,
	)

	if err := app.serve(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
