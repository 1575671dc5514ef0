package entity

import (
	"maps"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Attribute keys of an address. They match the storage columns.
const (
	AttrLabel        = "label"
	AttrGivenName    = "given_name"
	AttrFamilyName   = "family_name"
	AttrOrganization = "organization"
	AttrLine1        = "line_1"
	AttrLine2        = "line_2"
	AttrCity         = "city"
	AttrProvince     = "province"
	AttrPostalCode   = "postal_code"
	AttrCountryCode  = "country_code"
	AttrLatitude     = "latitude"
	AttrLongitude    = "longitude"
	AttrExtra        = "extra"
)

// textAttributes are the plain string attributes, in display order.
var textAttributes = []string{
	AttrLabel, AttrGivenName, AttrFamilyName, AttrOrganization,
	AttrLine1, AttrLine2, AttrCity, AttrProvince, AttrPostalCode, AttrCountryCode,
}

// Address is one postal address attached to an owner.
type Address struct {
	ID    uuid.UUID
	Owner OwnerRef

	Label        string
	GivenName    string
	FamilyName   string
	Organization string
	Line1        string
	Line2        string
	City         string
	Province     string
	PostalCode   string
	CountryCode  string // ISO 3166-1 alpha-2, upper case

	// Latitude and Longitude are either both nil or both set.
	Latitude  *float64
	Longitude *float64

	Extra map[string]any

	IsPrimary  bool
	IsBilling  bool
	IsShipping bool

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// FullName joins the given and family names.
func (a *Address) FullName() string {
	return strings.TrimSpace(a.GivenName + " " + a.FamilyName)
}

func (a *Address) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}

// SetCoordinates always sets both halves.
func (a *Address) SetCoordinates(lat, lng float64) {
	a.Latitude = &lat
	a.Longitude = &lng
}

func (a *Address) ClearCoordinates() {
	a.Latitude = nil
	a.Longitude = nil
}

// Point returns the coordinates in orb's lng/lat order. ok is false without coordinates.
func (a *Address) Point() (orb.Point, bool) {
	if !a.HasCoordinates() {
		return orb.Point{}, false
	}

	return orb.Point{*a.Longitude, *a.Latitude}, true
}

func (a *Address) IsDeleted() bool {
	return a.DeletedAt != nil
}

// HasFlag reports whether the role flag is set on the address.
func (a *Address) HasFlag(f Flag) bool {
	switch f {
	case FlagPrimary:
		return a.IsPrimary
	case FlagBilling:
		return a.IsBilling
	case FlagShipping:
		return a.IsShipping
	default:
		return false
	}
}

// SetFlag sets a role flag. Unsupported flags are ignored.
func (a *Address) SetFlag(f Flag, value bool) {
	switch f {
	case FlagPrimary:
		a.IsPrimary = value
	case FlagBilling:
		a.IsBilling = value
	case FlagShipping:
		a.IsShipping = value
	}
}

func (a *Address) textField(key string) *string {
	switch key {
	case AttrLabel:
		return &a.Label
	case AttrGivenName:
		return &a.GivenName
	case AttrFamilyName:
		return &a.FamilyName
	case AttrOrganization:
		return &a.Organization
	case AttrLine1:
		return &a.Line1
	case AttrLine2:
		return &a.Line2
	case AttrCity:
		return &a.City
	case AttrProvince:
		return &a.Province
	case AttrPostalCode:
		return &a.PostalCode
	case AttrCountryCode:
		return &a.CountryCode
	default:
		return nil
	}
}

// Apply merges an already validated attribute map into the address.
// Keys that are not address attributes or active flags are ignored.
func (a *Address) Apply(attrs map[string]any, flags FlagSet) {
	for key, value := range attrs {
		if field := a.textField(key); field != nil {
			s, _ := value.(string)
			if key == AttrCountryCode {
				s = strings.ToUpper(s)
			}
			*field = s

			continue
		}

		switch key {
		case AttrExtra:
			extra, _ := value.(map[string]any)
			a.Extra = maps.Clone(extra)
		case AttrLatitude:
			a.Latitude = coordinate(value)
		case AttrLongitude:
			a.Longitude = coordinate(value)
		}
	}

	for _, f := range flags.Flags() {
		if value, ok := attrs[f.Column()]; ok {
			b, _ := value.(bool)
			a.SetFlag(f, b)
		}
	}

	if !a.HasCoordinates() {
		a.ClearCoordinates()
	}
}

// Attributes is the inverse of Apply. Empty optional values are included so
// that the result can be validated as a whole.
func (a *Address) Attributes(flags FlagSet) map[string]any {
	attrs := make(map[string]any, len(textAttributes)+flags.Len()+3)
	for _, key := range textAttributes {
		attrs[key] = *a.textField(key)
	}

	if a.HasCoordinates() {
		attrs[AttrLatitude] = *a.Latitude
		attrs[AttrLongitude] = *a.Longitude
	}
	if a.Extra != nil {
		attrs[AttrExtra] = maps.Clone(a.Extra)
	}

	for _, f := range flags.Flags() {
		attrs[f.Column()] = a.HasFlag(f)
	}

	return attrs
}

// IsMatchableAttribute reports whether a submitted attribute takes part in
// the natural-key match of a new address.
func IsMatchableAttribute(key string, flags FlagSet) bool {
	switch key {
	case AttrLatitude, AttrLongitude:
		return true
	case AttrExtra:
		return false
	}

	for _, f := range flags.Flags() {
		if f.Column() == key {
			return true
		}
	}

	var a Address

	return a.textField(key) != nil
}

// coordinateScale matches the decimal(10,7) latitude and longitude columns.
const coordinateScale = 1e7

// coordinate reads a submitted coordinate rounded to the stored precision, so a
// resubmitted address compares equal to the row it produced.
func coordinate(value any) *float64 {
	f := floatPtr(value)
	if f == nil {
		return nil
	}
	rounded := math.Round(*f*coordinateScale) / coordinateScale

	return &rounded
}

func floatPtr(value any) *float64 {
	switch v := value.(type) {
	case float64:
		return &v
	case *float64:
		if v == nil {
			return nil
		}
		f := *v

		return &f
	case float32:
		f := float64(v)

		return &f
	case int:
		f := float64(v)

		return &f
	default:
		return nil
	}
}
