// Package pipeline wires the batch stages (load, aggregate, render, write)
// into the two one-shot runs. Control flow is strictly
// sequential; a failed stage logs, returns its error, and leaves no output
// file behind.
package pipeline

import (
	"context"

	"github.com/citygrid/crimemaps/internal/domain"
)

// IncidentSource loads the derived incident collection.
type IncidentSource interface {
	LoadIncidents(ctx context.Context) ([]domain.Incident, error)
}

// BoundarySource fetches the region polygons for the choropleth run.
type BoundarySource interface {
	FetchBoundaries(ctx context.Context) ([]domain.Boundary, error)
}
