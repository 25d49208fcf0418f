package domain

import "github.com/paulmach/orb"

// Boundary is a named geographic region loaded from the boundary feed.
// Geometry is a Polygon or MultiPolygon in WGS-84 lon/lat order and is never
// modified after load; spatial aggregation annotates counts alongside it
// rather than mutating it.
type Boundary struct {
	Name     string
	Geometry orb.Geometry
}
