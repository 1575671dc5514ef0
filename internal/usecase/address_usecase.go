// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"addressable/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput carries submitted address attributes. Nil fields are "not submitted".
type AddressInput struct {
	Label        *string
	GivenName    *string
	FamilyName   *string
	Organization *string
	Line1        *string
	Line2        *string
	City         *string
	Province     *string
	PostalCode   *string
	CountryCode  *string
	Latitude     *float64
	Longitude    *float64
	Extra        map[string]any
	Flags        map[entity.Flag]bool
}

// ToAttributes returns the submitted fields keyed by attribute name.
func (in *AddressInput) ToAttributes() map[string]any {
	attrs := make(map[string]any)

	text := map[string]*string{
		entity.AttrLabel:        in.Label,
		entity.AttrGivenName:    in.GivenName,
		entity.AttrFamilyName:   in.FamilyName,
		entity.AttrOrganization: in.Organization,
		entity.AttrLine1:        in.Line1,
		entity.AttrLine2:        in.Line2,
		entity.AttrCity:         in.City,
		entity.AttrProvince:     in.Province,
		entity.AttrPostalCode:   in.PostalCode,
		entity.AttrCountryCode:  in.CountryCode,
	}
	for key, value := range text {
		if value != nil {
			attrs[key] = *value
		}
	}

	if in.Latitude != nil {
		attrs[entity.AttrLatitude] = *in.Latitude
	}
	if in.Longitude != nil {
		attrs[entity.AttrLongitude] = *in.Longitude
	}
	if in.Extra != nil {
		attrs[entity.AttrExtra] = in.Extra
	}

	for flag, value := range in.Flags {
		attrs[flag.Column()] = value
	}

	return attrs
}

// AddressFilter narrows an owner's address list.
type AddressFilter struct {
	Flag           entity.Flag
	CountryCode    string
	IncludeDeleted bool
}

// ProximityQuery selects owners with an address within Distance of a point.
type ProximityQuery struct {
	Distance  float64
	Unit      entity.DistanceUnit
	Latitude  float64
	Longitude float64
}

// FormattedAddress is the display form of an address.
type FormattedAddress struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"fullName"`
	CountryName string    `json:"countryName"`
	Parts       []string  `json:"parts"`
	Line        string    `json:"line"`
	Block       string    `json:"block"`
	QueryString string    `json:"queryString"`
}

// ResolvedOwner pairs an owner reference with the entity its resolver loaded.
type ResolvedOwner struct {
	Ref   entity.OwnerRef
	Owner any
}

// OwnerResolver loads owner entities of one type.
type OwnerResolver interface {
	ResolveOwner(ctx context.Context, id uuid.UUID) (any, error)
}

// OwnerResolverFunc adapts a function to OwnerResolver.
type OwnerResolverFunc func(ctx context.Context, id uuid.UUID) (any, error)

func (f OwnerResolverFunc) ResolveOwner(ctx context.Context, id uuid.UUID) (any, error) {
	return f(ctx, id)
}

// OwnerBinding registers a resolver for an owner type.
type OwnerBinding struct {
	Type     entity.OwnerType
	Resolver OwnerResolver
}

// AddressUsecase manages the addresses of one owner at a time.
// Every method rejects a zero owner reference and unregistered owner types.
type AddressUsecase interface {
	// Addresses lists the owner's addresses, oldest first.
	Addresses(ctx context.Context, owner entity.OwnerRef, filter AddressFilter) ([]*entity.Address, error)
	// Representative applies the selection policy for a role flag. Nil when the owner has none.
	Representative(ctx context.Context, owner entity.OwnerRef, flag entity.Flag) (*entity.Address, error)
	Address(ctx context.Context, owner entity.OwnerRef) (*entity.Address, error)
	BillingAddress(ctx context.Context, owner entity.OwnerRef) (*entity.Address, error)
	ShippingAddress(ctx context.Context, owner entity.OwnerRef) (*entity.Address, error)
	HasAddresses(ctx context.Context, owner entity.OwnerRef) (bool, error)

	// AddAddress validates, then returns an identical existing address or creates a new one.
	AddAddress(ctx context.Context, owner entity.OwnerRef, input *AddressInput) (*entity.Address, error)
	// UpdateAddress merges input into the address with the given id. Ownership is not checked.
	UpdateAddress(ctx context.Context, owner entity.OwnerRef, addressID uuid.UUID, input *AddressInput) (*entity.Address, error)
	// DeleteAddress soft-deletes one of the owner's addresses and reports rows affected.
	DeleteAddress(ctx context.Context, owner entity.OwnerRef, addressID uuid.UUID) (int64, error)
	// FlushAddresses soft-deletes all of the owner's addresses.
	FlushAddresses(ctx context.Context, owner entity.OwnerRef) (int64, error)
	RestoreAddress(ctx context.Context, owner entity.OwnerRef, addressID uuid.UUID) (int64, error)
	// PurgeOwner permanently removes every address of a deleted owner.
	PurgeOwner(ctx context.Context, owner entity.OwnerRef) (int64, error)

	// FlaggedAddress returns the first address with the flag, ordered by the flag column in direction.
	FlaggedAddress(ctx context.Context, owner entity.OwnerRef, flag entity.Flag, direction entity.SortDirection) (*entity.Address, error)
	Format(ctx context.Context, owner entity.OwnerRef, addressID uuid.UUID) (*FormattedAddress, error)

	// FindOwnersByDistance returns the distinct owners with a live address inside the radius.
	FindOwnersByDistance(ctx context.Context, query ProximityQuery) ([]entity.OwnerRef, error)
	ResolveOwners(ctx context.Context, refs []entity.OwnerRef) ([]ResolvedOwner, error)
}
