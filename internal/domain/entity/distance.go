package entity

import "strings"

// DistanceUnit is the unit a proximity radius is expressed in.
type DistanceUnit string

const (
	UnitMiles         DistanceUnit = "miles"
	UnitKilometers    DistanceUnit = "kilometers"
	UnitMeters        DistanceUnit = "meters"
	UnitNauticalMiles DistanceUnit = "nautical_miles"
	UnitFeet          DistanceUnit = "feet"
)

var metersPerUnit = map[DistanceUnit]float64{
	UnitMiles:         1609.344,
	UnitKilometers:    1000,
	UnitMeters:        1,
	UnitNauticalMiles: 1852,
	UnitFeet:          0.3048,
}

// ParseDistanceUnit accepts the unit names plus the usual abbreviations.
func ParseDistanceUnit(raw string) (DistanceUnit, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "miles", "mile", "mi":
		return UnitMiles, true
	case "kilometers", "kilometres", "kilometer", "km":
		return UnitKilometers, true
	case "meters", "metres", "meter", "m":
		return UnitMeters, true
	case "nautical_miles", "nautical_mile", "nm":
		return UnitNauticalMiles, true
	case "feet", "foot", "ft":
		return UnitFeet, true
	default:
		return "", false
	}
}

// ToMeters converts a distance in this unit to meters.
func (u DistanceUnit) ToMeters(distance float64) float64 {
	return distance * metersPerUnit[u]
}

func (u DistanceUnit) IsValid() bool {
	_, ok := metersPerUnit[u]

	return ok
}
