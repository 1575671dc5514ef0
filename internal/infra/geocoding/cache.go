package geocoding

import (
	"context"
	"encoding/json"
	"time"

	"addressable/config"
	"addressable/internal/domain/entity"
	"addressable/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "addressable:geocode:"

// Coordinates is the cached form of a matched lookup.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// CoordinateCache stores matched lookups by query string.
type CoordinateCache interface {
	// Get returns found=false on a miss.
	Get(ctx context.Context, query string) (Coordinates, bool, error)
	Set(ctx context.Context, query string, coords Coordinates, ttl time.Duration) error
}

type redisCoordinateCache struct {
	client *redis.Client
}

// NewRedisClient creates the client used by the coordinate cache.
func NewRedisClient(cfg config.GeocodeCacheConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

// NewRedisCoordinateCache wraps a redis client.
func NewRedisCoordinateCache(client *redis.Client) CoordinateCache {
	return &redisCoordinateCache{client: client}
}

func (c *redisCoordinateCache) Get(ctx context.Context, query string) (Coordinates, bool, error) {
	raw, err := c.client.Get(ctx, cacheKeyPrefix+query).Bytes()
	if errors.Is(err, redis.Nil) {
		return Coordinates{}, false, nil
	}
	if err != nil {
		return Coordinates{}, false, errors.Wrap(err, "failed to read geocode cache")
	}

	var coords Coordinates
	if err := json.Unmarshal(raw, &coords); err != nil {
		return Coordinates{}, false, errors.Wrap(err, "failed to decode cached coordinates")
	}

	return coords, true, nil
}

func (c *redisCoordinateCache) Set(ctx context.Context, query string, coords Coordinates, ttl time.Duration) error {
	raw, err := json.Marshal(coords)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := c.client.Set(ctx, cacheKeyPrefix+query, raw, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write geocode cache")
	}

	return nil
}

// cachedGeocoder serves matched lookups from the cache. Cache errors fall through
// to the provider and only matched results are stored.
type cachedGeocoder struct {
	next      service.Geocoder
	cache     CoordinateCache
	ttl       time.Duration
	countries entity.CountryNamer
}

// NewCachedGeocoder decorates next with a coordinate cache.
func NewCachedGeocoder(next service.Geocoder, cache CoordinateCache, ttl time.Duration, countries entity.CountryNamer) service.Geocoder {
	return &cachedGeocoder{
		next:      next,
		cache:     cache,
		ttl:       ttl,
		countries: countries,
	}
}

func (g *cachedGeocoder) Geocode(ctx context.Context, addr *entity.Address) service.GeocodeResult {
	query := addr.QueryString(g.countries)
	if query != "" {
		if coords, found, err := g.cache.Get(ctx, query); err == nil && found {
			return service.GeocodeResult{
				Outcome:   service.GeocodeMatched,
				Latitude:  coords.Latitude,
				Longitude: coords.Longitude,
			}
		}
	}

	result := g.next.Geocode(ctx, addr)
	if result.Matched() && query != "" {
		// cache writes are best effort
		_ = g.cache.Set(ctx, query, Coordinates{Latitude: result.Latitude, Longitude: result.Longitude}, g.ttl)
	}

	return result
}
