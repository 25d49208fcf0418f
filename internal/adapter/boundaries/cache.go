package boundaries

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/citygrid/crimemaps/internal/domain"
)

// CachedClient wraps a Client with a disk cache keyed by the feed URL.
// Boundary geometry changes rarely, so later runs reuse the stored payload
// when the feed is unreachable; a successful fetch always refreshes it.
type CachedClient struct {
	inner  *Client
	dir    string
	logger *slog.Logger
}

// NewCachedClient creates a cache decorator around a boundary client.
// The cache directory is created on first write.
func NewCachedClient(inner *Client, dir string, logger *slog.Logger) *CachedClient {
	return &CachedClient{inner: inner, dir: dir, logger: logger}
}

// FetchBoundaries fetches from the feed, falling back to the cached payload
// when the fetch fails and a cached copy exists.
func (c *CachedClient) FetchBoundaries(ctx context.Context) ([]domain.Boundary, error) {
	data, err := c.inner.fetch(ctx)
	if err != nil {
		stale, readErr := os.ReadFile(c.path())
		if readErr != nil {
			return nil, err
		}
		c.logger.Warn("boundary fetch failed, serving cached payload",
			"error", err,
			"cache", c.path(),
		)
		return decodeBoundaries(stale)
	}

	bounds, err := decodeBoundaries(data)
	if err != nil {
		return nil, err
	}

	// Only payloads that decode are cached, so a bad response cannot
	// poison later runs.
	if err := c.store(data); err != nil {
		c.logger.Warn("caching boundary payload failed", "error", err)
	}
	return bounds, nil
}

func (c *CachedClient) store(data []byte) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.path(), data, 0o644)
}

// path derives the cache file name from the feed URL.
func (c *CachedClient) path() string {
	sum := sha256.Sum256([]byte(c.inner.url))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:8])+".geojson")
}
