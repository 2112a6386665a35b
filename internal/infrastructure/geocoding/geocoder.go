// Package geocoding implements the external address-resolution collaborator
// against a Nominatim-compatible HTTP API.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/api/metrics"
	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Client resolves addresses to coordinates over HTTP. Any failure — network,
// non-200 status, unparseable body, zero results — is reported as
// domain.ErrGeocodingFailed so callers can map it to a single upstream error
// without touching storage.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a geocoding client. A non-positive timeout falls back to
// ten seconds.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve looks up address and returns its coordinates.
func (c *Client) Resolve(ctx context.Context, address string) (domain.Coordinates, error) {
	start := time.Now()
	coords, err := c.resolve(ctx, address)
	metrics.GeocodeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GeocodeRequestsTotal.WithLabelValues("error").Inc()
		c.log.Warn().Err(err).Str("address", address).Msg("geocoding failed")
		return domain.Coordinates{}, domain.ErrGeocodingFailed
	}
	metrics.GeocodeRequestsTotal.WithLabelValues("ok").Inc()
	return coords, nil
}

func (c *Client) resolve(ctx context.Context, address string) (domain.Coordinates, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.baseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinates{}, fmt.Errorf("geocode status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode response: %w", err)
	}
	if len(results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("no results for address")
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse lat: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse lon: %w", err)
	}

	return domain.Coordinates{Lat: lat, Lng: lng}, nil
}
