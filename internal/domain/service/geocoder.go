// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"

	"addressable/internal/domain/entity"
)

// GeocodeOutcome classifies a geocoding attempt.
type GeocodeOutcome string

const (
	// GeocodeSkipped means no request was made: disabled, no API key or nothing to look up.
	GeocodeSkipped GeocodeOutcome = "skipped"
	// GeocodeMatched means the provider returned at least one result.
	GeocodeMatched GeocodeOutcome = "matched"
	// GeocodeNoMatch means the provider answered with no results.
	GeocodeNoMatch GeocodeOutcome = "no_match"
	// GeocodeFailed covers transport errors, bad status codes and malformed payloads.
	GeocodeFailed GeocodeOutcome = "failed"
)

// GeocodeResult is the outcome of one geocoding attempt.
// Latitude and Longitude are only meaningful when Outcome is GeocodeMatched.
type GeocodeResult struct {
	Outcome   GeocodeOutcome
	Latitude  float64
	Longitude float64
	Err       error
}

// Matched reports whether the result carries coordinates.
func (r GeocodeResult) Matched() bool {
	return r.Outcome == GeocodeMatched
}

// Geocoder resolves an address to coordinates. It never fails a save:
// problems are reported through the result.
type Geocoder interface {
	// Geocode looks up the address. It does not modify addr.
	Geocode(ctx context.Context, addr *entity.Address) GeocodeResult
}

// ApplyGeocode copies matched coordinates onto the address and leaves it untouched otherwise.
func ApplyGeocode(addr *entity.Address, result GeocodeResult) {
	if result.Matched() {
		addr.SetCoordinates(result.Latitude, result.Longitude)
	}
}
