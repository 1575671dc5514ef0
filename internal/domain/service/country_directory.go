package service

import "addressable/internal/domain/entity"

// CountryDirectory resolves ISO 3166-1 alpha-2 codes.
type CountryDirectory interface {
	entity.CountryNamer

	// IsValid reports whether code is exactly two letters naming a known country.
	IsValid(code string) bool
}
