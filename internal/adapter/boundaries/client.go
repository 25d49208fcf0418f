// Package boundaries fetches community-area polygons from the city's
// GeoJSON export endpoint.
package boundaries

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/citygrid/crimemaps/internal/domain"
)

// Client fetches and decodes the boundary feed. A single blocking GET per
// run; failures are returned to the caller, never retried.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a boundary feed client with the given request timeout.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchBoundaries downloads the feed and decodes it into named boundaries.
func (c *Client) FetchBoundaries(ctx context.Context) ([]domain.Boundary, error) {
	data, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return decodeBoundaries(data)
}

func (c *Client) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch boundaries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("boundary feed error: status %d: %s", resp.StatusCode, body)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read boundary feed: %w", err)
	}
	return data, nil
}

// decodeBoundaries parses a GeoJSON FeatureCollection, keeping polygonal
// features and naming each from the "community" property.
func decodeBoundaries(data []byte) ([]domain.Boundary, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode boundaries: %w", err)
	}

	var out []domain.Boundary
	for _, f := range fc.Features {
		switch f.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
		default:
			continue
		}
		out = append(out, domain.Boundary{
			Name:     f.Properties.MustString("community", ""),
			Geometry: f.Geometry,
		})
	}

	if len(out) == 0 {
		return nil, errors.New("boundary feed contained no polygon features")
	}
	return out, nil
}
