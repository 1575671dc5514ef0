// Package geocoding implements forward geocoding against the Google Geocoding JSON API.
package geocoding

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"addressable/config"
	"addressable/internal/domain/entity"
	"addressable/internal/domain/service"

	"github.com/pkg/errors"
)

// maxResponseBytes caps how much of a provider response is decoded.
const maxResponseBytes = 1 << 20

type googleResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// googleGeocoder performs one GET per lookup and never retries.
type googleGeocoder struct {
	enabled    bool
	apiKey     string
	endpoint   string
	httpClient *http.Client
	countries  entity.CountryNamer
}

// NewGoogleGeocoder creates a geocoder for the configured endpoint.
func NewGoogleGeocoder(cfg *config.GeocodingConfig, countries entity.CountryNamer) service.Geocoder {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = config.DefaultGeocodingEndpoint
	}

	return &googleGeocoder{
		enabled:  cfg.Enabled,
		apiKey:   strings.TrimSpace(cfg.APIKey),
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		countries: countries,
	}
}

func (g *googleGeocoder) Geocode(ctx context.Context, addr *entity.Address) service.GeocodeResult {
	query := addr.QueryString(g.countries)
	if !g.enabled || g.apiKey == "" || query == "" {
		return service.GeocodeResult{Outcome: service.GeocodeSkipped}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.requestURL(query), nil)
	if err != nil {
		return failed(errors.WithStack(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return failed(errors.WithStack(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return failed(errors.Errorf("geocoding provider returned status %d", resp.StatusCode))
	}

	var payload googleResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return failed(errors.Wrap(err, "failed to decode geocoding response"))
	}

	if len(payload.Results) == 0 {
		return service.GeocodeResult{Outcome: service.GeocodeNoMatch}
	}

	location := payload.Results[0].Geometry.Location

	return service.GeocodeResult{
		Outcome:   service.GeocodeMatched,
		Latitude:  location.Lat,
		Longitude: location.Lng,
	}
}

// requestURL appends the parameters by hand since query is already escaped.
func (g *googleGeocoder) requestURL(query string) string {
	sep := "?"
	if strings.Contains(g.endpoint, "?") {
		sep = "&"
	}

	return g.endpoint + sep + "address=" + query + "&sensor=false&key=" + url.QueryEscape(g.apiKey)
}

func failed(err error) service.GeocodeResult {
	return service.GeocodeResult{Outcome: service.GeocodeFailed, Err: err}
}
