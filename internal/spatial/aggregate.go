// Package spatial counts incidents per boundary polygon and derives a
// normalized density for choropleth shading.
package spatial

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/citygrid/crimemaps/internal/domain"
)

// DensityScale converts raw count-per-square-degree into the display range
// used by the choropleth color ramp.
const DensityScale = 1e7

// ContainmentPredicate reports whether a point lies inside a boundary's
// geometry. Injected so a spatial index can replace the brute-force test
// without changing the aggregator's contract.
type ContainmentPredicate interface {
	Contains(b domain.Boundary, p orb.Point) bool
}

// PlanarContainment tests containment with planar ring arithmetic. A point
// exactly on a shared edge between two boundaries may be attributed to zero
// or one of them depending on ring orientation; callers accept that
// ambiguity.
type PlanarContainment struct{}

func (PlanarContainment) Contains(b domain.Boundary, p orb.Point) bool {
	switch g := b.Geometry.(type) {
	case orb.Polygon:
		return planar.PolygonContains(g, p)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(g, p)
	default:
		return false
	}
}

// RegionStat is one boundary annotated with its aggregation results.
type RegionStat struct {
	Boundary domain.Boundary
	Count    int
	Density  float64
}

// Aggregate counts, for each boundary, the incidents whose point the
// predicate places inside it, and derives Density = Count / area x
// DensityScale. Brute force, O(boundaries x incidents); fine at
// tens-of-regions, thousands-of-incidents scale. A zero-area geometry
// reports density 0 so the color scale stays finite.
func Aggregate(boundaries []domain.Boundary, incidents []domain.Incident, pred ContainmentPredicate) []RegionStat {
	if pred == nil {
		pred = PlanarContainment{}
	}

	stats := make([]RegionStat, len(boundaries))
	for i, b := range boundaries {
		count := 0
		for _, inc := range incidents {
			if pred.Contains(b, orb.Point{inc.Longitude, inc.Latitude}) {
				count++
			}
		}

		density := 0.0
		if area := planar.Area(b.Geometry); area > 0 {
			density = float64(count) / area * DensityScale
		}

		stats[i] = RegionStat{Boundary: b, Count: count, Density: density}
	}
	return stats
}

// DensityRange returns the min and max observed density. Zeros for empty input.
func DensityRange(stats []RegionStat) (min, max float64) {
	if len(stats) == 0 {
		return 0, 0
	}
	min, max = stats[0].Density, stats[0].Density
	for _, s := range stats[1:] {
		if s.Density < min {
			min = s.Density
		}
		if s.Density > max {
			max = s.Density
		}
	}
	return min, max
}

// TopByCount returns the n regions with the highest counts, descending,
// ties broken by name.
func TopByCount(stats []RegionStat, n int) []RegionStat {
	sorted := make([]RegionStat, len(stats))
	copy(sorted, stats)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Boundary.Name < sorted[j].Boundary.Name
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
