package spatial

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citygrid/crimemaps/internal/domain"
)

// square builds a unit-ish square polygon boundary from (x0,y0) to (x1,y1).
func square(name string, x0, y0, x1, y1 float64) domain.Boundary {
	return domain.Boundary{
		Name: name,
		Geometry: orb.Polygon{orb.Ring{
			{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0},
		}},
	}
}

func incidentAt(lat, lon float64) domain.Incident {
	return domain.Incident{Latitude: lat, Longitude: lon}
}

func TestAggregate(t *testing.T) {
	boundaries := []domain.Boundary{
		square("WEST", -2, 0, -1, 1), // area 1
		square("EAST", 0, 0, 2, 1),   // area 2
	}
	incidents := []domain.Incident{
		incidentAt(0.5, -1.5), // WEST
		incidentAt(0.5, 0.5),  // EAST
		incidentAt(0.2, 1.5),  // EAST
		incidentAt(5.0, 5.0),  // outside both
	}

	stats := Aggregate(boundaries, incidents, nil)
	require.Len(t, stats, 2)

	assert.Equal(t, 1, stats[0].Count)
	assert.Equal(t, 2, stats[1].Count)
	assert.InDelta(t, 1.0/1.0*DensityScale, stats[0].Density, 1e-6)
	assert.InDelta(t, 2.0/2.0*DensityScale, stats[1].Density, 1e-6)

	// Unmatched points leave the per-region sum below the total.
	total := stats[0].Count + stats[1].Count
	assert.LessOrEqual(t, total, len(incidents))
	assert.Equal(t, 3, total)
}

func TestAggregate_MultiPolygon(t *testing.T) {
	mp := domain.Boundary{
		Name: "ISLANDS",
		Geometry: orb.MultiPolygon{
			{orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}},
			{orb.Ring{{3, 0}, {4, 0}, {4, 1}, {3, 1}, {3, 0}}},
		},
	}
	incidents := []domain.Incident{
		incidentAt(0.5, 0.5),
		incidentAt(0.5, 3.5),
		incidentAt(0.5, 2.0), // between the islands
	}

	stats := Aggregate([]domain.Boundary{mp}, incidents, nil)
	require.Len(t, stats, 1)
	assert.Equal(t, 2, stats[0].Count)
}

func TestAggregate_ZeroArea(t *testing.T) {
	degenerate := domain.Boundary{
		Name:     "LINE",
		Geometry: orb.Polygon{orb.Ring{{0, 0}, {1, 0}, {0, 0}}},
	}

	stats := Aggregate([]domain.Boundary{degenerate}, []domain.Incident{incidentAt(0, 0.5)}, nil)
	require.Len(t, stats, 1)
	assert.Equal(t, 0.0, stats[0].Density)
}

func TestAggregate_EmptyInputs(t *testing.T) {
	assert.Empty(t, Aggregate(nil, []domain.Incident{incidentAt(1, 1)}, nil))

	stats := Aggregate([]domain.Boundary{square("A", 0, 0, 1, 1)}, nil, nil)
	require.Len(t, stats, 1)
	assert.Equal(t, 0, stats[0].Count)
	assert.Equal(t, 0.0, stats[0].Density)
}

// stubPredicate forces attribution regardless of geometry, proving the
// aggregator only depends on the injected predicate.
type stubPredicate struct{ answer bool }

func (s stubPredicate) Contains(domain.Boundary, orb.Point) bool { return s.answer }

func TestAggregate_InjectedPredicate(t *testing.T) {
	boundaries := []domain.Boundary{square("A", 0, 0, 1, 1)}
	incidents := []domain.Incident{incidentAt(50, 50), incidentAt(60, 60)}

	stats := Aggregate(boundaries, incidents, stubPredicate{answer: true})
	assert.Equal(t, 2, stats[0].Count)

	stats = Aggregate(boundaries, incidents, stubPredicate{answer: false})
	assert.Equal(t, 0, stats[0].Count)
}

func TestDensityRange(t *testing.T) {
	stats := []RegionStat{{Density: 3}, {Density: 1}, {Density: 7}}
	min, max := DensityRange(stats)
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 7.0, max)

	min, max = DensityRange(nil)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 0.0, max)
}

func TestTopByCount(t *testing.T) {
	stats := []RegionStat{
		{Boundary: domain.Boundary{Name: "B"}, Count: 5},
		{Boundary: domain.Boundary{Name: "A"}, Count: 5},
		{Boundary: domain.Boundary{Name: "C"}, Count: 9},
	}

	top := TopByCount(stats, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "C", top[0].Boundary.Name)
	assert.Equal(t, "A", top[1].Boundary.Name) // tie broken by name

	assert.Len(t, TopByCount(stats, 10), 3)
}
