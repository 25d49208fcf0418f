// Command hotspots runs the fixed choropleth pipeline end to end: fetch the
// community-area boundaries, load homicides from sqlite, aggregate incidents
// per region, and write the density-shaded map document.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/citygrid/crimemaps/internal/adapter/boundaries"
	"github.com/citygrid/crimemaps/internal/adapter/sqlite"
	"github.com/citygrid/crimemaps/internal/config"
	"github.com/citygrid/crimemaps/internal/observability"
	"github.com/citygrid/crimemaps/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	store, err := sqlite.Open(cfg.DBPath, logger)
	if err != nil {
		logger.Error("open database failed", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	client := boundaries.NewClient(cfg.BoundariesURL, cfg.BoundariesTimeout, logger)
	var source pipeline.BoundarySource = client
	if cfg.BoundariesCacheDir != "" {
		source = boundaries.NewCachedClient(client, cfg.BoundariesCacheDir, logger)
		logger.Info("boundary disk cache enabled", "dir", cfg.BoundariesCacheDir)
	}

	p := pipeline.NewHotspots(store, source, nil, cfg.HotspotsOut, logger, metrics)
	runErr := p.Run(context.Background())

	if cfg.PushgatewayURL != "" {
		if err := metrics.Push(cfg.PushgatewayURL, "crimemaps_hotspots"); err != nil {
			logger.Warn("metrics push failed", "error", err)
		}
	}

	if runErr != nil {
		logger.Error("hotspots pipeline failed", "error", runErr)
		os.Exit(1)
	}
}
