package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/citygrid/crimemaps/internal/observability"
	"github.com/citygrid/crimemaps/internal/render"
	"github.com/citygrid/crimemaps/internal/spatial"
)

// Hotspots produces the choropleth map of incident density per region.
type Hotspots struct {
	incidents  IncidentSource
	boundaries BoundarySource
	predicate  spatial.ContainmentPredicate
	outPath    string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewHotspots creates the choropleth pipeline. A nil predicate selects the
// brute-force planar containment test.
func NewHotspots(incidents IncidentSource, boundaries BoundarySource, pred spatial.ContainmentPredicate, outPath string, logger *slog.Logger, metrics *observability.Metrics) *Hotspots {
	return &Hotspots{
		incidents:  incidents,
		boundaries: boundaries,
		predicate:  pred,
		outPath:    outPath,
		logger:     logger,
		metrics:    metrics,
	}
}

// Run executes one load-aggregate-render-write cycle.
func (h *Hotspots) Run(ctx context.Context) error {
	start := time.Now()

	h.logger.Info("loading neighborhood boundaries")
	boundaries, err := h.boundaries.FetchBoundaries(ctx)
	if err != nil {
		h.logger.Error("load boundaries failed", "error", err)
		h.metrics.BoundaryFetches.WithLabelValues("error").Inc()
		h.metrics.RunOutcome.WithLabelValues("hotspots", "error").Inc()
		return fmt.Errorf("load boundaries: %w", err)
	}
	h.metrics.BoundaryFetches.WithLabelValues("success").Inc()

	h.logger.Info("loading incidents")
	incidents, err := h.incidents.LoadIncidents(ctx)
	if err != nil {
		h.logger.Error("load incidents failed", "error", err)
		h.metrics.RunOutcome.WithLabelValues("hotspots", "error").Inc()
		return fmt.Errorf("load incidents: %w", err)
	}
	h.metrics.IncidentsLoaded.Add(float64(len(incidents)))

	h.logger.Info("analyzing crime patterns", "regions", len(boundaries), "incidents", len(incidents))
	stats := spatial.Aggregate(boundaries, incidents, h.predicate)
	h.metrics.RegionsAggregated.Add(float64(len(stats)))

	h.logger.Info("creating choropleth map")
	mapHTML, err := render.BuildChoroplethMap(stats, incidents)
	if err != nil {
		h.logger.Error("render choropleth failed", "error", err)
		h.metrics.RunOutcome.WithLabelValues("hotspots", "error").Inc()
		return err
	}

	h.logger.Info("saving map", "path", h.outPath)
	if err := render.WriteHotspots(h.outPath, mapHTML); err != nil {
		h.logger.Error("write hotspots failed", "error", err)
		h.metrics.RunOutcome.WithLabelValues("hotspots", "error").Inc()
		return err
	}

	h.logSummary(stats)

	h.metrics.RenderDuration.Observe(time.Since(start).Seconds())
	h.metrics.RunOutcome.WithLabelValues("hotspots", "success").Inc()
	h.logger.Info("hotspots written",
		"path", h.outPath,
		"regions", len(stats),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

// logSummary reports the ten regions with the most incidents.
func (h *Hotspots) logSummary(stats []spatial.RegionStat) {
	for i, s := range spatial.TopByCount(stats, 10) {
		h.logger.Info("top region",
			"rank", i+1,
			"community", s.Boundary.Name,
			"count", s.Count,
			"density", fmt.Sprintf("%.2f", s.Density),
		)
	}
}
