package boundaries

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeed = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {"community": "LOOP", "area_numbe": "32"},
			"geometry": {"type": "Polygon", "coordinates": [[[-87.64,41.87],[-87.62,41.87],[-87.62,41.89],[-87.64,41.89],[-87.64,41.87]]]}
		},
		{
			"type": "Feature",
			"properties": {"community": "NEAR NORTH SIDE"},
			"geometry": {"type": "MultiPolygon", "coordinates": [[[[-87.65,41.89],[-87.62,41.89],[-87.62,41.92],[-87.65,41.92],[-87.65,41.89]]]]}
		},
		{
			"type": "Feature",
			"properties": {"name": "stray point"},
			"geometry": {"type": "Point", "coordinates": [-87.63, 41.88]}
		}
	]
}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFetchBoundaries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testFeed))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, testLogger())
	bounds, err := client.FetchBoundaries(context.Background())
	require.NoError(t, err)

	// Point features are skipped, polygonal ones kept.
	require.Len(t, bounds, 2)
	assert.Equal(t, "LOOP", bounds[0].Name)
	assert.IsType(t, orb.Polygon{}, bounds[0].Geometry)
	assert.Equal(t, "NEAR NORTH SIDE", bounds[1].Name)
	assert.IsType(t, orb.MultiPolygon{}, bounds[1].Geometry)
}

func TestFetchBoundaries_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, testLogger())
	_, err := client.FetchBoundaries(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestFetchBoundaries_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	client := NewClient(srv.URL, time.Second, testLogger())
	_, err := client.FetchBoundaries(context.Background())
	require.Error(t, err)
}

func TestFetchBoundaries_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "geojson"`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, testLogger())
	_, err := client.FetchBoundaries(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode boundaries")
}

func TestFetchBoundaries_NoPolygons(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type":"FeatureCollection","features":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, testLogger())
	_, err := client.FetchBoundaries(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no polygon features")
}
