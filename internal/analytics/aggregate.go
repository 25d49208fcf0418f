// Package analytics computes the categorical and temporal distributions
// behind the dashboard charts. Every view is a pure group-and-count with a
// fixed presentation order and returns zero-valued structures for empty
// input.
package analytics

import (
	"sort"

	"github.com/citygrid/crimemaps/internal/domain"
)

// CategoryCount is one labeled bucket of an aggregate view.
type CategoryCount struct {
	Label string
	Count int
}

// SeasonShare is a seasonal bucket with its proportion of the total.
type SeasonShare struct {
	Season string
	Count  int
	Share  float64
}

// ByWeekday counts incidents per day name, Monday-first, zero-filled.
func ByWeekday(incidents []domain.Incident) []CategoryCount {
	counts := map[string]int{}
	for _, inc := range incidents {
		counts[inc.DayName]++
	}

	out := make([]CategoryCount, len(domain.WeekdayOrder))
	for i, day := range domain.WeekdayOrder {
		out[i] = CategoryCount{Label: day, Count: counts[day]}
	}
	return out
}

// TopLocations counts incidents per location description and returns the n
// largest, descending, ties broken alphabetically. Blank descriptions are
// skipped.
func TopLocations(incidents []domain.Incident, n int) []CategoryCount {
	counts := map[string]int{}
	for _, inc := range incidents {
		if inc.LocationDescription == "" {
			continue
		}
		counts[inc.LocationDescription]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, CategoryCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})

	if n < len(out) {
		out = out[:n]
	}
	return out
}

// ByHour counts incidents per hour of day, 0-23, zero-filled, with 12-hour
// clock labels.
func ByHour(incidents []domain.Incident) []CategoryCount {
	var counts [24]int
	for _, inc := range incidents {
		if inc.Hour >= 0 && inc.Hour < 24 {
			counts[inc.Hour]++
		}
	}

	out := make([]CategoryCount, 24)
	for h := 0; h < 24; h++ {
		out[h] = CategoryCount{Label: domain.HourLabel(h), Count: counts[h]}
	}
	return out
}

// BySeason counts incidents per season in fixed Winter/Spring/Summer/Fall
// order and attaches each bucket's share of the total. Shares are 0 when the
// collection is empty.
func BySeason(incidents []domain.Incident) []SeasonShare {
	counts := map[string]int{}
	for _, inc := range incidents {
		counts[inc.Season]++
	}

	out := make([]SeasonShare, len(domain.SeasonOrder))
	for i, season := range domain.SeasonOrder {
		share := 0.0
		if len(incidents) > 0 {
			share = float64(counts[season]) / float64(len(incidents))
		}
		out[i] = SeasonShare{Season: season, Count: counts[season], Share: share}
	}
	return out
}
