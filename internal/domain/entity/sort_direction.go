package entity

import "strings"

// SortDirection orders flagged address lookups.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection defaults to desc for an empty value.
func ParseSortDirection(raw string) (SortDirection, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return SortDesc, true
	case "asc":
		return SortAsc, true
	case "desc":
		return SortDesc, true
	default:
		return "", false
	}
}

// Desc reports whether the direction is descending.
func (d SortDirection) Desc() bool {
	return d != SortAsc
}
