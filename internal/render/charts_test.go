package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citygrid/crimemaps/internal/analytics"
)

func TestWeekdayChart(t *testing.T) {
	counts := analytics.ByWeekday(nil)

	html, err := WeekdayChart(counts)
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, "Homicides by Day of Week")
	assert.Contains(t, s, "Monday")
	// Fragment carries the container element and its init script.
	assert.Contains(t, s, "<div")
	assert.Contains(t, s, "<script")
	// Snippet rendering must not emit a standalone page.
	assert.NotContains(t, s, "<!DOCTYPE html>")
}

func TestLocationChart(t *testing.T) {
	counts := []analytics.CategoryCount{
		{Label: "STREET", Count: 12},
		{Label: "APARTMENT", Count: 7},
	}

	html, err := LocationChart(counts)
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, "Top 10 Location Types")
	assert.Contains(t, s, "STREET")
	assert.NotContains(t, s, "<!DOCTYPE html>")
}

func TestHourChart(t *testing.T) {
	counts := analytics.ByHour(nil)

	html, err := HourChart(counts)
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, "Homicides by Time of Day")
	assert.Contains(t, s, "12 AM")
	assert.Contains(t, s, "11 PM")
	assert.Contains(t, s, "<div")
	assert.Contains(t, s, "<script")
}

func TestSeasonChart(t *testing.T) {
	shares := []analytics.SeasonShare{
		{Season: "Winter", Count: 3, Share: 0.3},
		{Season: "Spring", Count: 2, Share: 0.2},
		{Season: "Summer", Count: 4, Share: 0.4},
		{Season: "Fall", Count: 1, Share: 0.1},
	}

	html, err := SeasonChart(shares)
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, "Homicides by Season")
	assert.Contains(t, s, "Winter")
	assert.Contains(t, s, seasonColors[0])
}

func TestSeasonChart_ZeroValues(t *testing.T) {
	html, err := SeasonChart(analytics.BySeason(nil))
	require.NoError(t, err)
	assert.Contains(t, string(html), "Fall")
}
