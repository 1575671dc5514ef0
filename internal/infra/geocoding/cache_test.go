package geocoding

import (
	"context"
	"errors"
	"testing"
	"time"

	"addressable/internal/domain/entity"
	"addressable/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	entries map[string]Coordinates
	getErr  error
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]Coordinates{}}
}

func (c *memoryCache) Get(_ context.Context, query string) (Coordinates, bool, error) {
	if c.getErr != nil {
		return Coordinates{}, false, c.getErr
	}
	coords, ok := c.entries[query]

	return coords, ok, nil
}

func (c *memoryCache) Set(_ context.Context, query string, coords Coordinates, _ time.Duration) error {
	c.sets++
	c.entries[query] = coords

	return nil
}

type scriptedGeocoder struct {
	results []service.GeocodeResult
	calls   int
}

func (g *scriptedGeocoder) Geocode(context.Context, *entity.Address) service.GeocodeResult {
	result := g.results[g.calls]
	g.calls++

	return result
}

func TestCachedGeocoder_HitSkipsProvider(t *testing.T) {
	provider := &scriptedGeocoder{results: []service.GeocodeResult{
		{Outcome: service.GeocodeMatched, Latitude: 1.5, Longitude: 2.5},
	}}
	cache := newMemoryCache()
	geocoder := NewCachedGeocoder(provider, cache, time.Hour, testCountries)

	first := geocoder.Geocode(context.Background(), springfield())
	second := geocoder.Geocode(context.Background(), springfield())

	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, 1, cache.sets)
	require.True(t, second.Matched())
	assert.Equal(t, first.Latitude, second.Latitude)
	assert.Equal(t, first.Longitude, second.Longitude)
}

func TestCachedGeocoder_NoMatchNotCached(t *testing.T) {
	provider := &scriptedGeocoder{results: []service.GeocodeResult{
		{Outcome: service.GeocodeNoMatch},
		{Outcome: service.GeocodeFailed, Err: errors.New("boom")},
		{Outcome: service.GeocodeNoMatch},
	}}
	cache := newMemoryCache()
	geocoder := NewCachedGeocoder(provider, cache, time.Hour, testCountries)

	for range 3 {
		assert.False(t, geocoder.Geocode(context.Background(), springfield()).Matched())
	}

	assert.Equal(t, 3, provider.calls)
	assert.Zero(t, cache.sets)
}

func TestCachedGeocoder_CacheErrorFallsThrough(t *testing.T) {
	provider := &scriptedGeocoder{results: []service.GeocodeResult{
		{Outcome: service.GeocodeMatched, Latitude: 3, Longitude: 4},
	}}
	cache := newMemoryCache()
	cache.getErr = errors.New("connection refused")
	geocoder := NewCachedGeocoder(provider, cache, time.Hour, testCountries)

	result := geocoder.Geocode(context.Background(), springfield())

	assert.True(t, result.Matched())
	assert.Equal(t, 1, provider.calls)
}
