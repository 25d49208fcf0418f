package pipeline

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/citygrid/crimemaps/internal/analytics"
	"github.com/citygrid/crimemaps/internal/domain"
	"github.com/citygrid/crimemaps/internal/observability"
	"github.com/citygrid/crimemaps/internal/render"
)

// Dashboard produces the clustered/heatmap incident map with the analytics
// grid below it.
type Dashboard struct {
	source    IncidentSource
	outPath   string
	yearStart int
	yearEnd   int
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewDashboard creates the dashboard pipeline.
func NewDashboard(source IncidentSource, outPath string, yearStart, yearEnd int, logger *slog.Logger, metrics *observability.Metrics) *Dashboard {
	return &Dashboard{
		source:    source,
		outPath:   outPath,
		yearStart: yearStart,
		yearEnd:   yearEnd,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run executes one load-render-assemble-write cycle.
func (d *Dashboard) Run(ctx context.Context) error {
	start := time.Now()

	d.logger.Info("loading incidents")
	incidents, err := d.source.LoadIncidents(ctx)
	if err != nil {
		d.logger.Error("load incidents failed", "error", err)
		d.metrics.RunOutcome.WithLabelValues("dashboard", "error").Inc()
		return fmt.Errorf("load incidents: %w", err)
	}
	d.metrics.IncidentsLoaded.Add(float64(len(incidents)))

	d.logger.Info("creating map", "years", fmt.Sprintf("%d-%d", d.yearStart, d.yearEnd))
	mapHTML, err := render.BuildDashboardMap(incidents, d.yearStart, d.yearEnd)
	if err != nil {
		d.logger.Error("render map failed", "error", err)
		d.metrics.RunOutcome.WithLabelValues("dashboard", "error").Inc()
		return err
	}

	d.logger.Info("creating analytics")
	charts, err := d.renderCharts(incidents)
	if err != nil {
		d.logger.Error("render analytics failed", "error", err)
		d.metrics.RunOutcome.WithLabelValues("dashboard", "error").Inc()
		return err
	}

	d.logger.Info("saving dashboard", "path", d.outPath)
	if err := render.WriteDashboard(d.outPath, mapHTML, charts); err != nil {
		d.logger.Error("write dashboard failed", "error", err)
		d.metrics.RunOutcome.WithLabelValues("dashboard", "error").Inc()
		return err
	}

	d.metrics.RenderDuration.Observe(time.Since(start).Seconds())
	d.metrics.RunOutcome.WithLabelValues("dashboard", "success").Inc()
	d.logger.Info("dashboard written",
		"path", d.outPath,
		"incidents", len(incidents),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

// renderCharts builds the four analytics fragments in their fixed grid order.
func (d *Dashboard) renderCharts(incidents []domain.Incident) ([]template.HTML, error) {
	weekday, err := render.WeekdayChart(analytics.ByWeekday(incidents))
	if err != nil {
		return nil, err
	}
	locations, err := render.LocationChart(analytics.TopLocations(incidents, 10))
	if err != nil {
		return nil, err
	}
	hours, err := render.HourChart(analytics.ByHour(incidents))
	if err != nil {
		return nil, err
	}
	seasons, err := render.SeasonChart(analytics.BySeason(incidents))
	if err != nil {
		return nil, err
	}
	return []template.HTML{weekday, locations, hours, seasons}, nil
}
