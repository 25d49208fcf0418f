// Command dashboard runs the fixed incident-dashboard pipeline end to end:
// load homicides from sqlite, render the per-year cluster/heatmap map and
// analytics charts, and write one self-contained HTML document.
package main

import (
	"context"
	"log/slog"
	"os"

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

	p := pipeline.NewDashboard(store, cfg.DashboardOut, cfg.YearStart, cfg.YearEnd, logger, metrics)
	runErr := p.Run(context.Background())

	if cfg.PushgatewayURL != "" {
		if err := metrics.Push(cfg.PushgatewayURL, "crimemaps_dashboard"); err != nil {
			logger.Warn("metrics push failed", "error", err)
		}
	}

	if runErr != nil {
		logger.Error("dashboard pipeline failed", "error", runErr)
		os.Exit(1)
	}
}
