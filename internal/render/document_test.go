package render

import (
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citygrid/crimemaps/internal/domain"
)

func TestWriteDashboard(t *testing.T) {
	domain.SetClock(clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))
	defer domain.SetClock(nil)

	path := filepath.Join(t.TempDir(), "dashboard.html")
	mapHTML := template.HTML(`<div id="map"></div>`)
	charts := []template.HTML{"<div>chart-one</div>", "<div>chart-two</div>"}

	require.NoError(t, WriteDashboard(path, mapHTML, charts))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(data)

	assert.Contains(t, s, "<!DOCTYPE html>")
	assert.Contains(t, s, "Chicago Homicides Dashboard")
	assert.Contains(t, s, `id="map"`)
	assert.Contains(t, s, "chart-one")
	assert.Contains(t, s, "chart-two")
	// Map sits above the analytics grid.
	assert.Less(t, strings.Index(s, `id="map-container"`), strings.Index(s, `id="analytics-container"`))
	assert.Contains(t, s, "Wed, 01 May 2024")
}

func TestWriteDashboard_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.html")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, WriteDashboard(path, "<div></div>", nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestWriteHotspots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotspots.html")

	require.NoError(t, WriteHotspots(path, template.HTML(`<div id="map"></div>`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, "Chicago Crime Hotspots")
	assert.Contains(t, s, `id="map"`)
}

func TestWriteDashboard_BadPath(t *testing.T) {
	err := WriteDashboard(filepath.Join(t.TempDir(), "missing", "dashboard.html"), "<div></div>", nil)
	require.Error(t, err)
}
